// Package textwrap packs words onto lines of a fixed width and fully
// justifies every line except the last one of each input line.
//
// Words are taken greedily: a line accepts words while the running
// length (one separating space per word) stays within the width. When
// a line closes, the leftover width is paid out as extra spaces between
// its words, earlier gaps receiving the surplus first. The trailing
// line keeps single spaces, and a single word wider than the width
// stands on its own line.
//
// Each input line wraps independently, so paragraph boundaries survive.
//
// ⚙️ Usage:
//
//	import "github.com/gabriel-vanca/infoarena/textwrap"
//
//	out, err := textwrap.Justify([]string{"the quick brown fox"}, 10)
//	if err != nil {
//	  // handle ErrBadWidth
//	}
//	for _, line := range out {
//	  fmt.Println(line)
//	}
package textwrap
