package invoicegen

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Encode implements json.Marshaler.
func (s *QueryOptions) Encode(e *jx.Encoder) {
	e.ObjStart()
	s.encodeFields(e)
	e.ObjEnd()
}

// encodeFields encodes fields. Values are written as given; invalid UTF-8 is
// not repaired, Validate reports it.
func (s *QueryOptions) encodeFields(e *jx.Encoder) {
	s.each(func(key, value string) {
		e.FieldStart(key)
		e.Str(value)
	})
}

// MarshalJSON implements stdjson.Marshaler.
func (s *QueryOptions) MarshalJSON() ([]byte, error) {
	e := jx.Encoder{}
	s.Encode(&e)
	return e.Bytes(), nil
}

// Decode decodes QueryOptions from json.
//
// Strings are stored verbatim and null leaves the field unset. Numbers,
// booleans, arrays and objects are stored as their raw JSON text so that no
// value sent by the peer is lost. Unknown keys are skipped.
func (s *QueryOptions) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode QueryOptions to nil")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		i, ok := queryOptionsIndex[string(k)]
		if !ok {
			return d.Skip()
		}
		f := queryOptionsFields[i]
		if err := decodeOptString(d, f.ptr(s)); err != nil {
			return errors.Wrapf(err, "decode field %q", f.key)
		}
		return nil
	}); err != nil {
		return errors.Wrap(err, "decode QueryOptions")
	}

	return nil
}

// UnmarshalJSON implements stdjson.Unmarshaler.
func (s *QueryOptions) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)
	if err := s.Decode(d); err != nil {
		return err
	}
	return decodeEOF(d)
}

// decodeEOF fails when anything but whitespace follows the decoded value.
func decodeEOF(d *jx.Decoder) error {
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}

func decodeOptString(d *jx.Decoder, o *OptString) error {
	switch d.Next() {
	case jx.Null:
		o.Reset()
		return d.Null()
	case jx.String:
		v, err := d.Str()
		if err != nil {
			return err
		}
		o.SetTo(v)
		return nil
	default:
		raw, err := d.Raw()
		if err != nil {
			return err
		}
		o.SetTo(strings.TrimSpace(raw.String()))
		return nil
	}
}
