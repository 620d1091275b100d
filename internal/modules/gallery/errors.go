package gallery

import "errors"

var (
	ErrStorageUnavailable  = errors.New("object storage is not configured")
	ErrNotifierUnavailable = errors.New("notifications are not configured")
	ErrAccessDenied        = errors.New("access code does not match")
	ErrNoRecipient         = errors.New("no email or phone given")
	ErrEmptyGallery        = errors.New("gallery has no photos")
	ErrInvalidFilename     = errors.New("filename must not contain a path")
	ErrNothingUploaded     = errors.New("no photo of the event could be uploaded")
)
