// Package storage defines the file access boundary for metadata documents.
package storage

// Provider is the interface for reading and writing metadata documents at
// operator-supplied paths.
type Provider interface {
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically replaces the file at path with content.
	Write(path string, content []byte) error
}
