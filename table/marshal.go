package table

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// MarshalJSON implements json.Marshaler, preserving mapping key order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindScalar:
		return json.Marshal(v.Scalar)

	case KindList:
		var buf bytes.Buffer

		buf.WriteByte('[')

		for i, item := range v.List {
			if i > 0 {
				buf.WriteByte(',')
			}

			data, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}

			buf.Write(data)
		}

		buf.WriteByte(']')

		return buf.Bytes(), nil

	case KindMapping:
		var buf bytes.Buffer

		buf.WriteByte('{')

		for i, key := range v.Mapping.keys {
			if i > 0 {
				buf.WriteByte(',')
			}

			name, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}

			buf.Write(name)
			buf.WriteByte(':')

			data, err := v.Mapping.entries[key].MarshalJSON()
			if err != nil {
				return nil, err
			}

			buf.Write(data)
		}

		buf.WriteByte('}')

		return buf.Bytes(), nil

	default:
		return []byte("null"), nil
	}
}

// MarshalYAML implements goccy/go-yaml interface marshaling, preserving
// mapping key order via [yaml.MapSlice].
func (v Value) MarshalYAML() (any, error) {
	switch v.Kind {
	case KindScalar:
		return v.Scalar, nil

	case KindList:
		list := make([]any, len(v.List))

		for i, item := range v.List {
			node, err := item.MarshalYAML()
			if err != nil {
				return nil, err
			}

			list[i] = node
		}

		return list, nil

	case KindMapping:
		slice := make(yaml.MapSlice, 0, v.Mapping.Len())

		for _, key := range v.Mapping.keys {
			node, err := v.Mapping.entries[key].MarshalYAML()
			if err != nil {
				return nil, err
			}

			slice = append(slice, yaml.MapItem{Key: key, Value: node})
		}

		return slice, nil

	default:
		return nil, nil
	}
}

// EncodeJSON writes the value as JSON to w, indented by indent spaces when
// indent is positive, followed by a newline.
func EncodeJSON(w io.Writer, v Value, indent int) error {
	data, err := json.Marshal(v)
	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	if indent > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", strings.Repeat(" ", indent)); err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		data = buf.Bytes()
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	return nil
}

// EncodeYAML writes the value as YAML to w with the given indent width.
func EncodeYAML(w io.Writer, v Value, indent int) error {
	if indent <= 0 {
		indent = 2
	}

	enc := yaml.NewEncoder(w, yaml.Indent(indent))

	if err := enc.Encode(v); err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if err := enc.Close(); err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	return nil
}
