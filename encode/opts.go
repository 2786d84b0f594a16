package encode

import "github.com/hexon-format/go-hexon/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{format: format.JSONFormat}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EscapeStrings switches string rendering from the default verbatim
// pass-through to strict JSON escaping.
func EscapeStrings(v bool) EncodeOption {
	return func(es *EncState) { es.escape = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
