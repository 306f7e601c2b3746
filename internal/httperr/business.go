package httperr

import "errors"

// BusinessError is a rule violation the caller can act on. Code is stable and
// machine-readable, Message is the localized text shown to the user.
type BusinessError struct {
	Code    string
	Message string
	Fields  []string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func Business(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func MissingFields(message string, fields []string) error {
	return BusinessError{Code: "missing_fields", Message: message, Fields: fields}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
