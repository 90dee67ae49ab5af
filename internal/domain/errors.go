package domain

import "errors"

// Domain errors.
var (
	ErrDuplicateEmail      = errors.New("participant with this email already exists")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidParticipant  = errors.New("invalid participant")
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrDuplicateEmail, "duplicate_email"},
	{ErrParticipantNotFound, "participant_not_found"},
	{ErrInvalidParticipant, "invalid_participant"},
}

// Code returns the stable code of the domain error wrapped by err, or "" when
// err is not a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return ""
}
