package upload

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r := httptest.NewRequest(http.MethodPost, "/convert", &body)
	r.Header.Set("Content-Type", w.FormDataContentType())
	return r
}

func TestFile(t *testing.T) {
	t.Run("accepts a valid upload", func(t *testing.T) {
		r := multipartRequest(t, "file", "report.pdf", []byte("%PDF-1.4 content"))

		file, header, err := File(r, "file", []string{".pdf"})
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "report.pdf", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 content", string(data), "stream is rewound after measuring")
	})

	t.Run("extension match is case-insensitive", func(t *testing.T) {
		r := multipartRequest(t, "file", "REPORT.PDF", []byte("x"))

		file, _, err := File(r, "file", []string{".pdf"})
		require.NoError(t, err)
		file.Close()
	})

	t.Run("missing field", func(t *testing.T) {
		r := multipartRequest(t, "", "", nil)

		_, _, err := File(r, "file", []string{".pdf"})
		require.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, err.Error(), "no file provided")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		r := multipartRequest(t, "file", "report.txt", []byte("x"))

		_, _, err := File(r, "file", []string{".pdf"})
		require.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, err.Error(), ".pdf")
	})

	t.Run("accepts either word extension", func(t *testing.T) {
		for _, name := range []string{"a.docx", "b.doc"} {
			r := multipartRequest(t, "file", name, []byte("x"))
			file, _, err := File(r, "file", []string{".docx", ".doc"})
			require.NoError(t, err, name)
			file.Close()
		}
	})

	t.Run("oversized upload", func(t *testing.T) {
		r := multipartRequest(t, "file", "big.pdf", make([]byte, MaxUploadBytes+1))

		_, _, err := File(r, "file", []string{".pdf"})
		require.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, err.Error(), "file size")
	})

	t.Run("exactly at the ceiling passes", func(t *testing.T) {
		r := multipartRequest(t, "file", "edge.pdf", make([]byte, MaxUploadBytes))

		file, _, err := File(r, "file", []string{".pdf"})
		require.NoError(t, err)
		file.Close()
	})
}
