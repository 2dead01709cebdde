package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// MarshalJSON writes the report as nested objects. encoding/json sorts map
// keys alphabetically, so the objects are written by hand to keep roots in
// scale order and qualities in declaration order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, root := range r.roots {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, root.String()); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, q := range r.qualities {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, q.String()); err != nil {
				return nil, err
			}
			data, err := json.Marshal(r.entries[key{root, q}].Fingerings)
			if err != nil {
				return nil, errors.Wrapf(err, "encode %v %v", root, q)
			}
			buf.Write(data)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, name string) error {
	data, err := json.Marshal(name)
	if err != nil {
		return err
	}
	buf.Write(data)
	buf.WriteByte(':')
	return nil
}

// Write encodes the report followed by a newline. pretty indents with two
// spaces.
func (r *Report) Write(w io.Writer, pretty bool) error {
	data, err := r.MarshalJSON()
	if err != nil {
		return err
	}
	if pretty {
		var indented bytes.Buffer
		if err := json.Indent(&indented, data, "", "  "); err != nil {
			return errors.Wrap(err, "indent report")
		}
		data = indented.Bytes()
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}
