// Package textio supplies the token source and line sink used by the
// task runners: whitespace-delimited token reading, chain output in the
// three-value format (total, excluded, one token per line), and task
// file helpers with descriptive open/create errors.
//
// The algorithm packages never touch I/O themselves; they consume
// tokens and hand results back, and textio moves those across file
// boundaries.
package textio
