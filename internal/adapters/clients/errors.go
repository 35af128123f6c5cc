package clients

import "errors"

// ErrRequestFailed indicates the HTTP request could not be completed.
var ErrRequestFailed = errors.New("request failed")
