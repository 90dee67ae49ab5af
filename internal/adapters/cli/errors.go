package cli

import (
	"errors"

	"paradereg/pkg/datetime"
)

// localizedError shows a translated message while keeping the cause for errors.Is.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

// inputError translates flag parsing failures the user can correct.
func (a *App) inputError(err error) error {
	if errors.Is(err, datetime.ErrInvalidRegistration) {
		return &localizedError{msg: a.t("error.invalid_registration_time", nil), err: err}
	}
	return err
}
