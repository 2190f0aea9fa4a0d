package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/google/uuid"
)

// Staged is the pair of temp paths owned by a single request. The input file
// exists as soon as Stage returns; the output file appears only once a
// converter writes it. Cleanup removes whichever of the two made it to disk.
type Staged struct {
	InputPath  string
	OutputPath string

	log *logger.ZapLogger
}

// Stage copies the upload into a uniquely named temp file carrying the source
// extension and reserves a sibling output path with the target extension.
func Stage(src io.Reader, inputExt, outputExt string, log *logger.ZapLogger) (*Staged, error) {
	base := filepath.Join(os.TempDir(), "convertd-"+uuid.NewString())

	s := &Staged{
		InputPath:  base + inputExt,
		OutputPath: base + outputExt,
		log:        log,
	}

	f, err := os.Create(s.InputPath)
	if err != nil {
		return nil, fmt.Errorf("staging upload: %w", err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		s.Cleanup()
		return nil, fmt.Errorf("staging upload: %w", err)
	}
	if err := f.Close(); err != nil {
		s.Cleanup()
		return nil, fmt.Errorf("staging upload: %w", err)
	}

	return s, nil
}

// Cleanup deletes both staged paths. Safe to call more than once. A file that
// never appeared is not an error; anything else is logged and swallowed so it
// cannot displace the response already chosen for the client.
func (s *Staged) Cleanup() {
	s.remove(s.InputPath)
	s.remove(s.OutputPath)
}

func (s *Staged) remove(path string) {
	err := os.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return
	}
	s.log.Log(logger.LogEntry{
		Level:   "warn",
		Message: "could not remove " + path,
		Service: "staging",
		Error:   err,
	})
}
