package media

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrFileIsNotConstructed is returned when a File was not created through its constructor.
var ErrFileIsNotConstructed = errors.New("File must be created via NewFile constructor")

const defaultContentType = "application/octet-stream"

// File is a stored binary object such as a customer avatar. Files are
// immutable: uploads create a new file and references move to it.
type File struct {
	id          kernel.UUID
	fileName    string
	contentType string
	data        []byte
	uploadedAt  time.Time

	guard guard.ConstructorGuard
}

// NewFile creates a file with the current UTC time as its upload timestamp.
// An empty content type falls back to application/octet-stream.
func NewFile(id kernel.UUID, fileName string, contentType string, data []byte) (*File, error) {
	file := &File{
		uploadedAt: time.Now().UTC(),
	}

	err := errors.Join(
		file.setID(id),
		file.setFileName(fileName),
		file.setData(data),
	)
	if err != nil {
		return nil, err
	}

	file.contentType = contentType
	if file.contentType == "" {
		file.contentType = defaultContentType
	}

	file.guard = guard.NewConstructorGuard()
	return file, nil
}

// RestoreFile reconstructs a file from persisted state.
func RestoreFile(id kernel.UUID, fileName string, contentType string,
	data []byte, uploadedAt time.Time) (*File, error) {
	file := &File{}

	err := errors.Join(
		file.setID(id),
		file.setFileName(fileName),
		file.setData(data),
		file.setUploadedAt(uploadedAt),
	)
	if err != nil {
		return nil, err
	}

	file.contentType = contentType
	if file.contentType == "" {
		file.contentType = defaultContentType
	}

	file.guard = guard.NewConstructorGuard()
	return file, nil
}

// Validate checks that the file was created through a constructor.
func (f *File) Validate() error {
	if f == nil {
		return ErrFileIsNotConstructed
	}
	return f.guard.Validate(ErrFileIsNotConstructed)
}

// ID returns the file identifier.
func (f *File) ID() kernel.UUID {
	return f.id
}

// FileName returns the original upload name.
func (f *File) FileName() string {
	return f.fileName
}

// ContentType returns the MIME type of the stored bytes.
func (f *File) ContentType() string {
	return f.contentType
}

// Data returns a copy of the stored bytes.
func (f *File) Data() []byte {
	return append([]byte(nil), f.data...)
}

// Size returns the stored byte count.
func (f *File) Size() int {
	return len(f.data)
}

// UploadedAt returns the upload timestamp.
func (f *File) UploadedAt() time.Time {
	return f.uploadedAt
}

func (f *File) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *File) setFileName(fileName string) error {
	if fileName == "" {
		return errs.NewValueIsRequiredError("fileName is required")
	}
	f.fileName = fileName
	return nil
}

func (f *File) setData(data []byte) error {
	if len(data) == 0 {
		return errs.NewValueIsRequiredError("file data is required")
	}
	f.data = append([]byte(nil), data...)
	return nil
}

func (f *File) setUploadedAt(uploadedAt time.Time) error {
	if uploadedAt.IsZero() {
		return errs.NewValueIsRequiredError("uploadedAt is required")
	}
	f.uploadedAt = uploadedAt
	return nil
}
