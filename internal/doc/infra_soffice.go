package doc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// SofficeRenderer shells out to LibreOffice in headless mode and delegates
// the whole rendition to it. It only works where the office suite is
// installed, so it is wired in with WORD_TO_PDF_RENDERER=soffice.
//
// Page size and orientation options are ignored on this path: LibreOffice
// renders the layout stored in the document itself.
type SofficeRenderer struct {
	bin string
}

func NewSofficeRenderer() *SofficeRenderer {
	bin := os.Getenv("SOFFICE_BIN")
	if bin == "" {
		bin = "soffice"
	}
	return &SofficeRenderer{bin: bin}
}

func (s *SofficeRenderer) RenderPdf(
	ctx context.Context,
	inputPath, outputPath string,
	opts RenderOptions,
) error {

	outDir := filepath.Dir(outputPath)

	// LibreOffice locks its profile directory; give every run its own and
	// drop it afterwards.
	profile, err := os.MkdirTemp(outDir, "soffice-profile-*")
	if err != nil {
		return fmt.Errorf("soffice profile: %w", err)
	}
	defer os.RemoveAll(profile)

	args := []string{
		"-env:UserInstallation=file://" + profile,
		"--headless",
		"--convert-to", "pdf",
		"--outdir", outDir,
		inputPath,
	}

	cmd := exec.CommandContext(ctx, s.bin, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("soffice: %v: %s", err, strings.TrimSpace(string(output)))
	}

	// soffice names the result after the input; move it where the caller
	// asked for it.
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	produced := filepath.Join(outDir, base+".pdf")
	if produced == outputPath {
		return nil
	}
	if err := os.Rename(produced, outputPath); err != nil {
		return fmt.Errorf("collecting soffice output: %w", err)
	}
	return nil
}
