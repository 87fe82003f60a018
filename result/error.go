package result

import "errors"

// Error is an engine-reported failure: the native result code together
// with the engine's error message for the owning connection at the time
// the failure was observed.
//
// All call sites translate native codes through NewError (or Code.ToError
// when no connection message is available) so the check/fetch/construct
// pattern lives in one place.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Message
}

// NewError constructs an Error for a failed native call. It returns nil
// for success codes so call sites can translate unconditionally.
func NewError(code Code, message string) error {
	if code.IsSuccess() {
		return nil
	}
	return &Error{Code: code, Message: message}
}

// ToError converts c into an error with no connection message attached.
// Success codes yield nil.
func (c Code) ToError() error {
	return NewError(c, "")
}

// ErrCode extracts the result code from an error produced by this module.
// Errors from elsewhere report SQLITE_ERROR.
func ErrCode(err error) Code {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return GenericError
}
