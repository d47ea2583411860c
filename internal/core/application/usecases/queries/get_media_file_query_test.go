package queries_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMediaFileQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetMediaFileQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.FileID())
}

func TestNewGetMediaFileQuery_InvalidFileID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := queries.NewGetMediaFileQuery(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetMediaFileQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMediaFileQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMediaFileQueryIsNotConstructed)
}
