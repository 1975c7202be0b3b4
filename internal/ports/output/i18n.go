package output

// MessageVerifier checks that normalized content still loads as a message
// file for the given locale.
type MessageVerifier interface {
	// Verify returns nil when data parses as a flat message file named path.
	Verify(path string, data []byte) error
}
