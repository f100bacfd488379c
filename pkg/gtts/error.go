package gtts

import (
	"errors"
	"fmt"
)

var (
	// ErrNoText is returned when the request text has nothing to speak.
	ErrNoText = errors.New("gtts: no text to speak")

	// ErrUnsupportedLanguage is returned when language checking is enabled
	// and the tag is not in the catalog.
	ErrUnsupportedLanguage = errors.New("gtts: unsupported language")
)

// Error represents a failed request to the translate endpoint.
type Error struct {
	// HTTPStatus is the HTTP status code, 0 if no response was received.
	HTTPStatus int

	// Reason is the HTTP status text.
	Reason string

	// Part is the index of the text part that failed.
	Part int

	// TLD is the top-level domain the request was sent to.
	TLD string

	// Lang is the requested language tag.
	Lang string

	// LangCheck reports whether the tag was checked against the catalog.
	LangCheck bool

	// Err is the transport error when no response was received.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("gtts: %s. Probable cause: %s", e.Premise(), e.Cause())
}

// Unwrap returns the transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Premise describes what went wrong.
func (e *Error) Premise() string {
	if e.HTTPStatus == 0 {
		return "Failed to connect"
	}
	return fmt.Sprintf("%d (%s) from TTS API", e.HTTPStatus, e.Reason)
}

// Cause returns the probable cause inferred from the status and request.
func (e *Error) Cause() string {
	switch {
	case e.HTTPStatus == 0 && e.TLD != DefaultTLD:
		return fmt.Sprintf("Host '%s' is not reachable", TranslateURL(e.TLD))
	case e.HTTPStatus == 0:
		return "Unknown"
	case e.HTTPStatus == 403:
		return "Bad token or upstream API changes"
	case e.HTTPStatus == 404 && e.TLD != DefaultTLD:
		return fmt.Sprintf("Unsupported tld '%s'", e.TLD)
	case e.HTTPStatus == 200 && !e.LangCheck:
		return fmt.Sprintf("No audio stream in response. Unsupported language '%s'", e.Lang)
	case e.HTTPStatus >= 500:
		return "Upstream API error. Try again later."
	default:
		return "Unknown"
	}
}

// IsServerError returns true if this is a server-side error.
func (e *Error) IsServerError() bool {
	return e.HTTPStatus >= 500
}

// AsError extracts *Error from an error.
//
// Example:
//
//	if e, ok := gtts.AsError(err); ok {
//	    if e.IsServerError() {
//	        // the endpoint is having trouble
//	    }
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
