package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

type Pdf2DocxConverter struct {
	bin string
}

func NewPdf2DocxConverter() *Pdf2DocxConverter {
	bin := os.Getenv("PDF2DOCX_BIN")
	if bin == "" {
		bin = "pdf2docx"
	}
	return &Pdf2DocxConverter{bin: bin}
}

func (c *Pdf2DocxConverter) ConvertToWord(
	ctx context.Context,
	inputPath, outputPath string,
	opts ConvertOptions,
) error {

	args := []string{"convert", inputPath, outputPath}

	if len(opts.Pages) > 0 {
		nums := make([]string, len(opts.Pages))
		for i, p := range opts.Pages {
			nums[i] = strconv.Itoa(p)
		}
		args = append(args, "--pages="+strings.Join(nums, ","))
	}

	if !opts.RotatePage {
		args = append(args, "--rotate_page=false")
	}

	cmd := exec.CommandContext(ctx, c.bin, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pdf2docx: %v: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
