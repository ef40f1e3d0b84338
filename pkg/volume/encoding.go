package volume

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/jingkaihe/volform/internal/errx"
)

// Format names a descriptor encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat resolves a format name ("yml" is accepted for YAML).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", errx.With(ErrUnsupportedFormat, ": %q", s)
	}
}

// Encode writes v in the given format. The unbounded maximum is written as
// -1 in every format.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errx.Wrap(ErrEncode, err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errx.Wrap(ErrEncode, err)
		}
		if err := enc.Close(); err != nil {
			return errx.Wrap(ErrEncode, err)
		}
	case FormatCBOR:
		b, err := cbor.Marshal(v)
		if err != nil {
			return errx.Wrap(ErrEncode, err)
		}
		if _, err := w.Write(b); err != nil {
			return errx.Wrap(ErrEncode, err)
		}
	default:
		return errx.With(ErrUnsupportedFormat, ": %q", format)
	}
	return nil
}

// Decode reads a single value of the given format into v.
func Decode(r io.Reader, format Format, v any) error {
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(v)
	case FormatCBOR:
		err = cbor.NewDecoder(r).Decode(v)
	default:
		return errx.With(ErrUnsupportedFormat, ": %q", format)
	}
	if err != nil {
		return errx.Wrap(ErrDecode, err)
	}
	return nil
}

// File is the on-disk input of a form: either the volume being edited or
// the templates a new volume is picked from.
type File struct {
	Volume    *Descriptor  `json:"volume,omitempty" yaml:"volume,omitempty"`
	Templates []Descriptor `json:"templates,omitempty" yaml:"templates,omitempty"`
}

// ParseFile decodes YAML (or JSON, which YAML accepts) volume file content.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := Decode(bytes.NewReader(data), FormatYAML, &f); err != nil {
		return nil, err
	}
	if f.Volume != nil {
		if err := f.Volume.Validate(); err != nil {
			return nil, err
		}
	}
	if _, err := NewSet(f.Templates...); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile reads and parses the volume file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errx.Wrap(ErrReadFile, err)
	}
	return ParseFile(data)
}
