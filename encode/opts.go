package encode

type EncodeOption func(*EncState)

// EncodeIndent selects the multi-line layout, indenting each level by
// n spaces. n <= 0 selects the compact single-line layout.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
