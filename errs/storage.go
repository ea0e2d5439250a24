package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Asset upload & storage errors
var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrTooManyFiles    = errors.New("too many files")
	ErrAssetNotFound   = errors.New("asset not found")
	ErrRateLimited     = errors.New("rate limit exceeded")
)

func NewInvalidFileTypeError(contentType string, allowed string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidFileType,
		Details:    fmt.Sprintf("Unsupported content type %s, expected %s", contentType, allowed),
		Field:      "file",
	}
}

func NewFileTooLargeError(size, limit int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrFileTooLarge,
		Details:    fmt.Sprintf("File size %d exceeds the %d byte limit", size, limit),
		Field:      "file",
	}
}

func NewTooManyFilesError(count, limit int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrTooManyFiles,
		Details:    fmt.Sprintf("%d files uploaded, at most %d allowed per request", count, limit),
		Field:      "images",
	}
}

func NewAssetNotFoundError(filename string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrAssetNotFound,
		Details:    fmt.Sprintf("Stored file %s is missing from storage", filename),
		Field:      "file",
	}
}

func NewRateLimitedError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusTooManyRequests,
		err:        ErrRateLimited,
		Details:    message,
	}
}

func IsInvalidFileType(err error) bool {
	return errors.Is(err, ErrInvalidFileType)
}

func IsFileTooLarge(err error) bool {
	return errors.Is(err, ErrFileTooLarge)
}

func IsAssetNotFound(err error) bool {
	return errors.Is(err, ErrAssetNotFound)
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
