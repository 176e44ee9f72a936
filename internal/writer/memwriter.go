package writer

import "io"

// MemWriter captures document bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteDocument replaces the captured bytes with a copy of buf.
func (w *MemWriter) WriteDocument(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}

// StreamWriter forwards document bytes to an io.Writer such as stdout.
type StreamWriter struct {
	W io.Writer
}

// WriteDocument writes buf in full to the underlying writer.
func (w *StreamWriter) WriteDocument(buf []byte) error {
	_, err := w.W.Write(buf)
	return err
}
