package localefmt

import (
	"bytes"

	"localenorm/internal/domain/entities"
)

// Format renders entries sorted by key, one `key = value` line each.
func Format(entries entities.Collection) []byte {
	var buf bytes.Buffer
	for _, e := range entries.Sorted() {
		buf.WriteString(e.Key)
		buf.WriteString(" = ")
		buf.WriteString(e.Value)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Normalize parses content and returns its canonical form together with the
// number of entries kept.
func Normalize(content []byte) ([]byte, int) {
	entries := Parse(string(content))
	return Format(entries), entries.Len()
}
