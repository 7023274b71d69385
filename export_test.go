package descent

// Len returns the number of remembered results.
func (m *Memo) Len() int {
	return m.cache.Len()
}
