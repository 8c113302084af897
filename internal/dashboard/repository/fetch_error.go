package repository

import "fmt"

// Kind classifies why a request failed.
type Kind int

const (
	// KindNetwork covers transport failures, including cancellation.
	KindNetwork Kind = iota + 1
	// KindHTTPStatus means the backend answered with a non-2xx status.
	KindHTTPStatus
	// KindDecode means the body was not the expected JSON shape.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError is returned by every StockAPIRepository call that fails.
// Error() yields the fixed, user-facing message of the endpoint; the kind,
// status code and cause stay available for logging and errors.As.
type FetchError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Detail renders the error with its kind and cause, for logs.
func (e *FetchError) Detail() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("%s (%s %d)", e.Message, e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (%s: %v)", e.Message, e.Kind, e.Err)
}
