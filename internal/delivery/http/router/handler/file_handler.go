package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/service"
	"bazaar/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	FileStore service.FileStore
	Logger    *slog.Logger
}

// FileHandler holds dependencies for file upload handlers.
type FileHandler struct {
	fileStore service.FileStore
	logger    *slog.Logger
}

// NewFileHandler is the constructor for FileHandler.
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{
		fileStore: params.FileStore,
		logger:    params.Logger,
	}
}

// Upload handles a multipart image upload and returns the stored key.
func (h *FileHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file field")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	key, err := h.fileStore.Save(c.Request().Context(), fileHeader.Filename, src)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("File uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(fileHeader.Size)))

	return response.Success(c, http.StatusCreated, map[string]string{
		"file": key,
	}, "File uploaded")
}
