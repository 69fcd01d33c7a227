package encode

import "github.com/signadot/ljson/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodePretty selects pretty printing. The format of s overrides any
// EncodeFormat given before it.
func EncodePretty(s PrettyPrintSettings) EncodeOption {
	return func(es *EncState) {
		es.pretty = true
		es.format = s.Format
		es.singleLineColumns = s.SingleLineColumns
		es.wrapNumeric = s.WrapNumericArrays
	}
}

// QuoteLongValues writes numbers beyond 2^53 as strings.
func QuoteLongValues(v bool) EncodeOption {
	return func(es *EncState) { es.quoteLong = v }
}
