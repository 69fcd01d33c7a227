package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	MinimalFormat Format = iota
	JSONFormat
	JavaScriptFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"m":          MinimalFormat,
		"min":        MinimalFormat,
		"minimal":    MinimalFormat,
		"j":          JSONFormat,
		"json":       JSONFormat,
		"js":         JavaScriptFormat,
		"javascript": JavaScriptFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case MinimalFormat:
		return []byte("minimal"), nil
	case JSONFormat:
		return []byte("json"), nil
	case JavaScriptFormat:
		return []byte("javascript"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool       { return f == JSONFormat }
func (f Format) IsMinimal() bool    { return f == MinimalFormat }
func (f Format) IsJavaScript() bool { return f == JavaScriptFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case MinimalFormat:
		return ".hjson"
	case JSONFormat:
		return ".json"
	case JavaScriptFormat:
		return ".json5"
	default:
		return ""
	}
}

// FromSuffix maps a file name to the dialect its extension implies.
// Unknown extensions map to MinimalFormat.
func FromSuffix(name string) Format {
	ext := strings.ToLower(filepath.Ext(name))
	for _, f := range AllFormats() {
		if f.Suffix() == ext {
			return f
		}
	}
	return MinimalFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{MinimalFormat, JSONFormat, JavaScriptFormat}
}
