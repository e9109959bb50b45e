// Package wordchain finds the longest chain of tokens in which every
// token begins with the letter the previous token ends in, using a
// single left-to-right pass over the input.
//
// 🚀 What is a word chain?
//
//	Given the tokens "abba atla alfa", each token starts with the letter
//	its predecessor ends in, so all three link into one chain of depth 3.
//	The builder keeps, for every terminal letter, only the deepest chain
//	seen so far, so the whole scan stays linear in the input size.
//
// ✨ Key features:
//   - one-pass construction: Process consumes each token exactly once
//   - per-letter registry of the deepest confirmed chain end
//   - duplicate continuations rejected early ("earlier token wins")
//   - superseded candidates unlinked immediately, never revisited
//   - deterministic tie-break: among equally deep leaves, the smallest
//     terminal letter wins
//
// ⚙️ Usage:
//
//	import "github.com/gabriel-vanca/infoarena/wordchain"
//
//	b := wordchain.NewBuilder()
//	for _, tok := range tokens {
//	  b.Process(tok)
//	}
//	res, err := b.Result()
//	if err != nil {
//	  // handle ErrNoChain
//	}
//	fmt.Println(res.Chain)
//
// Performance:
//
//   - Time:   O(n) over n tokens (registry and children lookups are
//     per-letter map operations)
//   - Memory: O(live nodes); rejected candidates are unlinked at once
//
// See examples in example_test.go.
package wordchain
