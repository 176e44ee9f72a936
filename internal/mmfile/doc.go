// Package mmfile provides platform-specific helpers for memory-mapping input
// documents. On unix the file is mapped read-only; elsewhere it is read into
// memory.
package mmfile
