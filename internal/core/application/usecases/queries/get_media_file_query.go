package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetMediaFileQueryIsNotConstructed = errors.New(
	"GetMediaFileQuery must be created via NewGetMediaFileQuery constructor",
)

// GetMediaFileQuery retrieves one stored media file, such as a customer
// avatar, for serving over HTTP.
type GetMediaFileQuery struct {
	fileID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMediaFileQuery creates a query for a stored media file.
func NewGetMediaFileQuery(fileID kernel.UUID) (GetMediaFileQuery, error) {
	if err := fileID.Validate(); err != nil {
		return GetMediaFileQuery{}, err
	}

	return GetMediaFileQuery{
		fileID: fileID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMediaFileQuery) Validate() error {
	return q.guard.Validate(ErrGetMediaFileQueryIsNotConstructed)
}

// FileID returns the identifier of the file to fetch.
func (q GetMediaFileQuery) FileID() kernel.UUID {
	return q.fileID
}

// GetMediaFileQueryResponse carries the stored bytes with their MIME type
// and original upload name.
type GetMediaFileQueryResponse struct {
	FileName    string
	ContentType string
	Data        []byte
}
