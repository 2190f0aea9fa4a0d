package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxUploadBytes caps every accepted document at 15 MiB.
const MaxUploadBytes = 15 << 20

// ValidationError marks a rejection the client can fix; handlers map it to
// HTTP 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// File pulls the named multipart field out of the request and checks it
// against the accepted extensions and the size ceiling. The caller owns the
// returned file and must close it.
func File(r *http.Request, field string, exts []string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, invalid("no file provided")
	}

	if header.Filename == "" {
		file.Close()
		return nil, nil, invalid("no file selected")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !contains(exts, ext) {
		file.Close()
		return nil, nil, invalid("file must be a %s", strings.Join(exts, " or "))
	}

	size, err := measure(file)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	if size > MaxUploadBytes {
		file.Close()
		return nil, nil, invalid("file size must be less than %s", humanize.IBytes(MaxUploadBytes))
	}

	return file, header, nil
}

// measure seeks to the end of the stream and back. The client-declared
// Content-Length is never trusted.
func measure(file multipart.File) (int64, error) {
	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("measuring upload: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("measuring upload: %w", err)
	}
	return size, nil
}

func contains(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
