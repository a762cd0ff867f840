package writer

// MemWriter captures document bytes in memory.
type MemWriter struct {
	Buf    []byte
	Writes int
}

// WriteDocument stores a copy of buf.
func (w *MemWriter) WriteDocument(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	w.Writes++
	return nil
}
