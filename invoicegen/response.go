package invoicegen

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Response is the body returned by the invoice generator.
type Response struct {
	Status string
	// Error is empty on success. Structured error values are kept as raw JSON.
	Error string
	Data  ResponseData
}

// ResponseData describes the generated document.
type ResponseData struct {
	PdfName     string
	Expires     int64
	DownloadURL string
}

// ErrorResponse is the body returned with 4xx and 5xx statuses.
type ErrorResponse struct {
	Status string
	Error  string
}

// Failed reports whether the body itself signals an error, regardless of the
// HTTP status it came with.
func (s *Response) Failed() bool {
	return strings.EqualFold(s.Status, "error") || s.Error != ""
}

// ExpiresAt returns the moment the download link stops working, or the zero
// time if the service did not say.
func (s *Response) ExpiresAt() time.Time {
	if s.Data.Expires <= 0 {
		return time.Time{}
	}
	return time.Unix(s.Data.Expires, 0)
}

// Decode decodes Response from json.
func (s *Response) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode Response to nil")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "status":
			s.Status, err = decodeLooseStr(d)
		case "error":
			s.Error, err = decodeErrorStr(d)
		case "data":
			if d.Next() == jx.Null {
				return d.Null()
			}
			err = s.Data.Decode(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", string(k))
		}
		return nil
	}); err != nil {
		return errors.Wrap(err, "decode Response")
	}
	return nil
}

// UnmarshalJSON implements stdjson.Unmarshaler.
func (s *Response) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)
	if err := s.Decode(d); err != nil {
		return err
	}
	return decodeEOF(d)
}

// Decode decodes ResponseData from json.
func (s *ResponseData) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode ResponseData to nil")
	}

	return d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "pdfName":
			s.PdfName, err = decodeLooseStr(d)
		case "downloadURL":
			s.DownloadURL, err = decodeLooseStr(d)
		case "expires":
			if d.Next() == jx.Null {
				return d.Null()
			}
			s.Expires, err = d.Int64()
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", string(k))
		}
		return nil
	})
}

// Decode decodes ErrorResponse from json.
func (s *ErrorResponse) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode ErrorResponse to nil")
	}

	return d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "status":
			s.Status, err = decodeLooseStr(d)
		case "error", "message":
			var v string
			v, err = decodeLooseStr(d)
			if s.Error == "" {
				s.Error = v
			}
		default:
			return d.Skip()
		}
		return err
	})
}

// UnmarshalJSON implements stdjson.Unmarshaler.
func (s *ErrorResponse) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)
	if err := s.Decode(d); err != nil {
		return err
	}
	return decodeEOF(d)
}

// decodeErrorStr is decodeLooseStr for error fields: false, {} and [] mean
// there is no error.
func decodeErrorStr(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Bool {
		v, err := d.Bool()
		if err != nil || !v {
			return "", err
		}
		return "true", nil
	}

	v, err := decodeLooseStr(d)
	if err != nil {
		return "", err
	}
	switch strings.Join(strings.Fields(v), "") {
	case "{}", "[]":
		return "", nil
	}
	return v, nil
}

// decodeLooseStr reads a string, treating null as empty and keeping any
// other value as raw JSON.
func decodeLooseStr(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.Null:
		return "", d.Null()
	case jx.String:
		return d.Str()
	default:
		raw, err := d.Raw()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(raw.String()), nil
	}
}
