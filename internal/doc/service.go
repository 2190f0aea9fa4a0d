package doc

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
)

type Service struct {
	renderer PdfRenderer
	log      *logger.ZapLogger
}

func NewService(renderer PdfRenderer, log *logger.ZapLogger) *Service {
	return &Service{renderer: renderer, log: log}
}

func (s *Service) Render(
	ctx context.Context,
	inputPath, outputPath string,
	opts RenderOptions,
) error {

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("rendering %s as %s %s pdf", opts.SourceName, opts.Size, opts.Orientation),
		Service: "doc",
	})

	return s.renderer.RenderPdf(ctx, inputPath, outputPath, opts)
}
