// Package scheme renders phonological positions as notation strings.
//
// A Scheme is a total, deterministic mapping from frozen positions to
// text. Schemes register under a unique name in a Registry; the package
// maintains a default registry with the built-in baxter and tupa
// schemes, and callers may register their own.
package scheme
