package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
)

// GetMediaFile serves a stored media file, such as a customer avatar. The
// route is public so image tags can reference files directly.
func (s *Server) GetMediaFile(ctx echo.Context) error {
	fileID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid file id")
	}

	query, err := queries.NewGetMediaFileQuery(fileID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	file, err := s.deps.GetMediaFile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if file.FileName != "" {
		ctx.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`inline; filename="%s"`, file.FileName))
	}

	return ctx.Blob(http.StatusOK, contentType, file.Data)
}
