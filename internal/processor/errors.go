package processor

import "errors"

// Processing failures surface to callers verbatim: the upload client shows
// the response body as the error message, so these read as user-facing text.
var (
	ErrNoFiles           = errors.New("At least one file must be uploaded for processing.")
	ErrNoRecognizedFiles = errors.New("No recognised .dtl files were found in the uploaded data.")
)
