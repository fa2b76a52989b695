// Package png renders QR codes for generated invoices.
package png

import (
	"github.com/alapierre/go-invoicegen-client/invoicegen"
	"github.com/go-faster/errors"
	"github.com/skip2/go-qrcode"
)

const size = 300

// Qr encodes content as a 300x300 PNG QR code.
func Qr(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("empty QR content")
	}
	data, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, errors.Wrap(err, "encode QR code")
	}
	return data, nil
}

// DownloadQR encodes the download URL of resp, so the generated PDF can be
// fetched by scanning it.
func DownloadQR(resp *invoicegen.Response) ([]byte, error) {
	if resp == nil || resp.Data.DownloadURL == "" {
		return nil, invoicegen.ErrNoDownloadURL
	}
	return Qr(resp.Data.DownloadURL)
}
