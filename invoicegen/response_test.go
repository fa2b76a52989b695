package invoicegen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Decode(t *testing.T) {
	var r Response
	require.NoError(t, r.UnmarshalJSON([]byte(`{
		"status": "ok",
		"error": null,
		"data": {
			"pdfName": "1f0c.pdf",
			"expires": 1718000000,
			"downloadURL": "https://storage.example.com/1f0c.pdf",
			"extra": [1, 2]
		},
		"meta": {}
	}`)))

	assert.Equal(t, "ok", r.Status)
	assert.Empty(t, r.Error)
	assert.False(t, r.Failed())
	assert.Equal(t, "1f0c.pdf", r.Data.PdfName)
	assert.Equal(t, "https://storage.example.com/1f0c.pdf", r.Data.DownloadURL)
	assert.Equal(t, time.Unix(1718000000, 0), r.ExpiresAt())
}

func TestResponse_DecodeErrorBody(t *testing.T) {
	var r Response
	require.NoError(t, r.UnmarshalJSON([]byte(`{"status":"error","error":"Invalid items","data":null}`)))

	assert.True(t, r.Failed())
	assert.Equal(t, "Invalid items", r.Error)
	assert.True(t, r.ExpiresAt().IsZero())
}

func TestResponse_DecodeStructuredError(t *testing.T) {
	var r Response
	require.NoError(t, r.UnmarshalJSON([]byte(`{"status":"error","error":{"code":42}}`)))

	assert.True(t, r.Failed())
	assert.JSONEq(t, `{"code":42}`, r.Error)
}

func TestResponse_DecodeEmptyErrorValues(t *testing.T) {
	for _, v := range []string{`false`, `{}`, `[ ]`, `null`, `""`} {
		t.Run(v, func(t *testing.T) {
			var r Response
			require.NoError(t, r.UnmarshalJSON([]byte(`{"status":"ok","error":`+v+`}`)))

			assert.Empty(t, r.Error)
			assert.False(t, r.Failed())
		})
	}

	var r Response
	require.NoError(t, r.UnmarshalJSON([]byte(`{"status":"ok","error":true}`)))
	assert.True(t, r.Failed())
}

func TestResponse_DecodeMalformed(t *testing.T) {
	var r Response
	assert.Error(t, r.UnmarshalJSON([]byte(`{"data": {"expires": "soon"}}`)))
	assert.Error(t, r.UnmarshalJSON([]byte(`not json`)))
	assert.Error(t, r.UnmarshalJSON([]byte(`{"status":"ok"} {"status":"error"}`)))

	var e ErrorResponse
	assert.Error(t, e.UnmarshalJSON([]byte(`{"message":"x"} trailing`)))
}

func TestErrorResponse_Decode(t *testing.T) {
	var e ErrorResponse
	require.NoError(t, e.UnmarshalJSON([]byte(`{"status":"error","message":"Unauthorized"}`)))
	assert.Equal(t, "error", e.Status)
	assert.Equal(t, "Unauthorized", e.Error)
}
