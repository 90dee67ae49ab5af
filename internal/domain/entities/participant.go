package entities

import (
	"time"

	"paradereg/pkg/datetime"
)

// Participant is one person registered for the parade.
type Participant struct {
	ID           int
	FirstName    string `validate:"nonblank"`
	LastName     string `validate:"nonblank"`
	Email        string `validate:"nonblank"`
	Phone        string `validate:"nonblank"`
	Age          int    `validate:"gte=0"`
	Address      string `validate:"nonblank"`
	Type         ParticipantType
	Category     ParticipantCategory
	RegisteredAt time.Time // zero on a draft = stamped by the store
	Active       bool
}

func (p Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}

// FormattedRegistration renders RegisteredAt as dd/MM/yyyy HH:mm in loc.
func (p Participant) FormattedRegistration(loc *time.Location) string {
	return datetime.FormatRegistration(p.RegisteredAt, loc)
}
