package delivery

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
	"github.com/mlevch/convertd/internal/doc"
	"github.com/mlevch/convertd/internal/pdf"
	"github.com/mlevch/convertd/internal/staging"
	"github.com/mlevch/convertd/internal/upload"
)

const (
	serviceName    = "PDF to Word Converter"
	serviceVersion = "1.0"

	docxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	pdfMimeType  = "application/pdf"
)

type ConvertHandler struct {
	pdfService *pdf.Service
	docService *doc.Service
	log        *logger.ZapLogger
}

func NewConvertHandler(pdfService *pdf.Service, docService *doc.Service, log *logger.ZapLogger) *ConvertHandler {
	return &ConvertHandler{
		pdfService: pdfService,
		docService: docService,
		log:        log,
	}
}

// Home serves the service banner. The pdf2docx backend is AGPL, so the notice
// stays on the front door.
func (h *ConvertHandler) Home(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service":      serviceName,
		"version":      serviceVersion,
		"license":      "GNU AGPL v3.0",
		"source_code":  "https://github.com/mlevch/convertd",
		"legal_notice": "This service uses pdf2docx licensed under GNU AGPL v3.0",
	})
}

func (h *ConvertHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleConvert turns an uploaded PDF into a Word document.
func (h *ConvertHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	file, header, err := upload.File(r, "file", []string{".pdf"})
	if err != nil {
		h.logWarn("rejected upload", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer file.Close()

	pages, err := pdf.ParsePageRange(r.FormValue("page_range"))
	if err != nil {
		h.logWarn("bad page range", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := pdf.ConvertOptions{
		Pages:      pages,
		RotatePage: r.FormValue("image_quality") != "low",
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("converting %s (%s) to docx", header.Filename, humanize.IBytes(uint64(header.Size))),
		Service: "delivery",
	})

	staged, err := staging.Stage(file, ".pdf", ".docx", h.log)
	if err != nil {
		h.logError("staging failed", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	defer staged.Cleanup()

	// Conversion runs to completion even if the client goes away.
	if err := h.pdfService.Convert(context.Background(), staged.InputPath, staged.OutputPath, opts); err != nil {
		h.logError("conversion failed", err)
		writeError(w, http.StatusInternalServerError, "conversion failed: "+err.Error())
		return
	}

	h.sendAttachment(w, staged.OutputPath, attachmentName(header.Filename, ".docx"), docxMimeType)
}

// HandleWordToPdf renders an uploaded Word document as a PDF.
func (h *ConvertHandler) HandleWordToPdf(w http.ResponseWriter, r *http.Request) {
	file, header, err := upload.File(r, "file", []string{".docx", ".doc"})
	if err != nil {
		h.logWarn("rejected upload", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer file.Close()

	opts := doc.RenderOptions{
		Size:        doc.ParsePageSize(r.FormValue("page_size")),
		Orientation: doc.ParseOrientation(r.FormValue("orientation")),
		SourceName:  header.Filename,
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("converting %s (%s) to pdf", header.Filename, humanize.IBytes(uint64(header.Size))),
		Service: "delivery",
	})

	inputExt := strings.ToLower(filepath.Ext(header.Filename))
	staged, err := staging.Stage(file, inputExt, ".pdf", h.log)
	if err != nil {
		h.logError("staging failed", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	defer staged.Cleanup()

	if err := h.docService.Render(context.Background(), staged.InputPath, staged.OutputPath, opts); err != nil {
		h.logError("conversion failed", err)
		writeError(w, http.StatusInternalServerError, "conversion failed: "+err.Error())
		return
	}

	h.sendAttachment(w, staged.OutputPath, attachmentName(header.Filename, ".pdf"), pdfMimeType)
}

func (h *ConvertHandler) sendAttachment(w http.ResponseWriter, path, name, mimeType string) {
	data, err := os.ReadFile(path)
	if err != nil {
		h.logError("reading converted output", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// attachmentName swaps the upload's extension, whatever its case, for the
// converted format's.
func attachmentName(filename, newExt string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + newExt
}

func (h *ConvertHandler) logWarn(msg string, err error) {
	h.log.Log(logger.LogEntry{Level: "warn", Message: msg, Service: "delivery", Error: err})
}

func (h *ConvertHandler) logError(msg string, err error) {
	h.log.Log(logger.LogEntry{Level: "error", Message: msg, Service: "delivery", Error: err})
}
