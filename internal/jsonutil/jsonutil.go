package jsonutil

import (
	"bytes"
	"encoding/json"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// API decodes numbers as json.Number so 64-bit identifiers keep their exact
// digits, and encodes maps with sorted keys for stable output.
var API = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Unmarshal decodes data into v without ever routing numbers through float64.
func Unmarshal(data []byte, v any) error {
	return API.Unmarshal(data, v)
}

// Decode reads a single JSON document from r into v.
func Decode(r io.Reader, v any) error {
	return API.NewDecoder(r).Decode(v)
}

// Marshal encodes v compactly, or with the given indent when indent is non-empty.
// Indented output is produced by re-indenting the compact encoding, because
// json-iterator loses the nesting depth inside interface values.
func Marshal(v any, indent string) ([]byte, error) {
	compact, err := API.Marshal(v)
	if err != nil || indent == "" {
		return compact, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IsNumber reports whether v is a number decoded by this package.
func IsNumber(v any) bool {
	_, ok := v.(json.Number)
	return ok
}
