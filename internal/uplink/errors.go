package uplink

import "errors"

// ErrNetwork indicates the processing endpoint could not be reached at all.
// Such failures most often correlate with oversized folder uploads, hence
// the zip instruction in the user-facing message.
var ErrNetwork = errors.New("could not reach the processing service; zip any folders before retrying")

// ServerError carries a non-2xx response from the processing endpoint. The
// message is the response body when the server sent one, or a synthesized
// status-coded message otherwise.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }
