package infrastructure

import "fmt"

// UpstreamError is returned when the API answers with a non-2xx status
type UpstreamError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d %s for %s", e.StatusCode, e.Status, e.URL)
}

// MalformedResponseError is returned when a response cannot be turned into the expected shape
type MalformedResponseError struct {
	URL    string
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	msg := "malformed response"
	if e.URL != "" {
		msg += " from " + e.URL
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
