package lexer

import "golang.org/x/crypto/blake2b"

// Fingerprint returns a content hash of source, stable across runs and
// platforms. It identifies a source text for caching/logging purposes
// only — it is not a basis for incremental reparsing (out of scope,
// spec.md §1 Non-goals).
func Fingerprint(source string) [32]byte {
	return blake2b.Sum256([]byte(source))
}
