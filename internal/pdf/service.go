package pdf

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
	lpdf "github.com/ledongthuc/pdf"
)

type Service struct {
	conv WordConverter
	log  *logger.ZapLogger
}

func NewService(conv WordConverter, log *logger.ZapLogger) *Service {
	return &Service{conv: conv, log: log}
}

// Convert runs the external PDF-to-Word converter against the staged paths.
func (s *Service) Convert(
	ctx context.Context,
	inputPath, outputPath string,
	opts ConvertOptions,
) error {

	// Page count is informational only; a document the probe cannot read may
	// still convert fine.
	if pages, err := pageCount(inputPath); err == nil {
		s.log.Log(logger.LogEntry{
			Level:   "info",
			Message: fmt.Sprintf("converting %d-page pdf", pages),
			Service: "pdf",
		})
	}

	return s.conv.ConvertToWord(ctx, inputPath, outputPath, opts)
}

func pageCount(path string) (n int, err error) {
	// The library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf probe: %v", r)
		}
	}()

	f, r, err := lpdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return r.NumPage(), nil
}
