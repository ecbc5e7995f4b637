package encode

type EncodeOption func(*EncState)

// EncodeVersion sets the version written in the header. Readers only
// accept ir.CurrentVersion.
func EncodeVersion(v int) EncodeOption {
	return func(es *EncState) { es.version = v }
}

// EncodeHeader controls whether the "inkc" header line is written.
func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

// EncodeColors renders with terminal colors. Colored output is for
// display and does not decode.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
