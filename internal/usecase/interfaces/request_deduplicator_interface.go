package interfaces

// IRequestDeduplicator guards create endpoints against rapid duplicate
// submissions (double-click, client retry).
//
// Reserve registers the fingerprint and returns true when it was not seen
// within the deduplication window. Implementations own their TTL and cleanup;
// the usecase only supplies a deterministic fingerprint.

type IRequestDeduplicator interface {
	Reserve(fingerprint string) bool
}
