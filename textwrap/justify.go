package textwrap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadWidth is returned when the requested line width is not positive.
var ErrBadWidth = errors.New("textwrap: width must be at least 1")

// Justify wraps each input line independently to the given width and
// returns the resulting output lines. Interior lines are fully
// justified; the last line produced from each input line keeps single
// spaces.
func Justify(lines []string, width int) ([]string, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWidth, width)
	}

	var out []string
	for _, line := range lines {
		out = append(out, wrapWords(strings.Fields(line), width)...)
	}

	return out, nil
}

// wrapWords packs one input line's words greedily and emits its output
// lines. The running length counts every accepted word plus one
// separating space, so a word is accepted while lineLen+len(word)+1
// stays within the width.
func wrapWords(words []string, width int) []string {
	if len(words) == 0 {
		return []string{""}
	}

	var out []string
	start := 0
	lineLen := len(words[0])
	finalPrinted := false

	for i := 1; i < len(words); i++ {
		word := words[i]

		// The closing word joins the current line plainly when it fits.
		if i == len(words)-1 && lineLen+len(word)+1 <= width {
			out = append(out, strings.Join(words[start:i+1], " "))
			finalPrinted = true

			break
		}

		if lineLen+len(word)+1 > width {
			if i == start+1 {
				// A lone word, possibly wider than the line, stands alone.
				out = append(out, words[start])
				start = i
				lineLen = len(word)

				continue
			}
			out = append(out, justified(words[start:i], width, lineLen))
			start = i
			lineLen = len(word) + 1
		} else {
			lineLen += len(word) + 1
		}
	}

	if !finalPrinted {
		out = append(out, words[len(words)-1])
	}

	return out
}

// justified pays the leftover width out as extra spaces between the
// group's words, earlier gaps receiving the surplus first.
func justified(group []string, width, lineLen int) string {
	perGap := (width - lineLen + 1) / len(group)
	surplus := (width - lineLen + 1) % len(group)

	var sb strings.Builder
	for j := 0; j+1 < len(group); j++ {
		sb.WriteString(group[j])
		sb.WriteByte(' ')
		sb.WriteString(strings.Repeat(" ", perGap))
		if surplus > 0 {
			sb.WriteByte(' ')
			surplus--
		}
	}
	sb.WriteString(group[len(group)-1])

	return sb.String()
}
