package queries

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMediaFileQueryHandler retrieves a stored media file from the database.
type GetMediaFileQueryHandler struct {
	db *gorm.DB
}

// NewGetMediaFileQueryHandler creates a handler for media file queries.
// Requires a GORM database connection for query execution.
func NewGetMediaFileQueryHandler(db *gorm.DB) GetMediaFileQueryHandler {
	return GetMediaFileQueryHandler{db: db}
}

// Handle executes the query to retrieve one media file.
// Returns errs.ObjectNotFoundError when no file with the given ID exists.
func (h GetMediaFileQueryHandler) Handle(
	ctx context.Context,
	query GetMediaFileQuery,
) (GetMediaFileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMediaFileQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			file_name,
			content_type,
			data
		FROM media_files
		WHERE id = ?
	`, query.FileID().String()).Row()

	var response GetMediaFileQueryResponse

	err := row.Scan(&response.FileName, &response.ContentType, &response.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return GetMediaFileQueryResponse{}, errs.NewObjectNotFoundError("media file", query.FileID())
	}
	if err != nil {
		return GetMediaFileQueryResponse{}, err
	}

	return response, nil
}
