package processor

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Response headers carrying batch statistics for UI display.
const (
	HeaderRecognizedFiles   = "X-Recognized-Files"
	HeaderUnrecognizedFiles = "X-Unrecognized-Files"
)

// Handler exposes the processing pipeline over HTTP. Failure responses carry
// a plain-text body: the upload client renders a non-empty body verbatim as
// the error message.
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new Handler instance.
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers processing routes with the Echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.POST("/process", h.Process)
}

// Health handles GET /health for uptime monitoring.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Process handles POST /process. It accepts repeated multipart parts named
// "files" plus an optional "archive_label" scalar and responds with a ZIP of
// converted workbooks.
func (h *Handler) Process(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid multipart request.")
	}

	parts := form.File["files"]
	if len(parts) == 0 {
		return c.String(http.StatusBadRequest, ErrNoFiles.Error())
	}

	uploads := make([]UploadedItem, 0, len(parts))
	for _, part := range parts {
		src, err := part.Open()
		if err != nil {
			return c.String(http.StatusBadRequest, fmt.Sprintf("Failed to read uploaded file %s.", part.Filename))
		}
		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return c.String(http.StatusBadRequest, fmt.Sprintf("Failed to read uploaded file %s.", part.Filename))
		}
		name := part.Filename
		if name == "" {
			name = "uploaded.dtl"
		}
		uploads = append(uploads, UploadedItem{Filename: name, Content: content})
	}

	result, err := h.service.Process(uploads, c.FormValue("archive_label"))
	if err != nil {
		if errors.Is(err, ErrNoFiles) || errors.Is(err, ErrNoRecognizedFiles) {
			return c.String(http.StatusBadRequest, err.Error())
		}
		h.log.Error().Err(err).Msg("processing failed")
		return c.String(http.StatusInternalServerError, "Processing failed unexpectedly. Please try again.")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", result.ZipFilename))
	c.Response().Header().Set(HeaderRecognizedFiles, strconv.Itoa(result.Recognized))
	c.Response().Header().Set(HeaderUnrecognizedFiles, strconv.Itoa(result.Unrecognized))
	return c.Blob(http.StatusOK, "application/zip", result.ZipBytes)
}
