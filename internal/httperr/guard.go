package httperr

import "errors"

// GuardError blocks a forward workflow transition. It names the field the
// caller still has to fill in; the draft itself is left untouched.
type GuardError struct {
	Missing string
}

func (e GuardError) Error() string {
	return "cannot_advance: missing " + e.Missing
}

func ErrGuard(missing string) error {
	return GuardError{Missing: missing}
}

func IsGuard(err error) (string, bool) {
	var ge GuardError
	if errors.As(err, &ge) {
		return ge.Missing, true
	}
	return "", false
}
