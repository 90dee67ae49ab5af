package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"paradereg/internal/domain/entities"
	"paradereg/pkg/datetime"
)

// participantFlags are the register-form fields.
type participantFlags struct {
	firstName  string
	lastName   string
	email      string
	phone      string
	age        int
	address    string
	typeCode   string
	category   string
	registered string
}

func (f *participantFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.firstName, "first", "", "first name")
	fs.StringVar(&f.lastName, "last", "", "last name")
	fs.StringVar(&f.email, "email", "", "email (must be unique)")
	fs.StringVar(&f.phone, "phone", "", "phone number")
	fs.IntVar(&f.age, "age", 0, "age in years")
	fs.StringVar(&f.address, "address", "", "postal address")
	fs.StringVar(&f.typeCode, "type", entities.TypeStudent.Code(), "participant type ("+typeCodes()+")")
	fs.StringVar(&f.category, "category", entities.CategorySpectator.Code(), "participant category ("+categoryCodes()+")")
	fs.StringVar(&f.registered, "registered", "", "registration time DD/MM/YYYY HH:MM (default now)")
}

func (f *participantFlags) draft(loc *time.Location) (entities.Participant, error) {
	registeredAt, err := datetime.ParseRegistration(f.registered, loc)
	if err != nil {
		return entities.Participant{}, err
	}
	return entities.Participant{
		FirstName:    f.firstName,
		LastName:     f.lastName,
		Email:        f.email,
		Phone:        f.phone,
		Age:          f.age,
		Address:      f.address,
		Type:         entities.ParseParticipantType(f.typeCode),
		Category:     entities.ParseParticipantCategory(f.category),
		RegisteredAt: registeredAt,
	}, nil
}

// applyChanged overwrites the fields of p whose flags were set on cmd.
func (f *participantFlags) applyChanged(cmd *cobra.Command, p entities.Participant, loc *time.Location) (entities.Participant, error) {
	fs := cmd.Flags()
	if fs.Changed("first") {
		p.FirstName = f.firstName
	}
	if fs.Changed("last") {
		p.LastName = f.lastName
	}
	if fs.Changed("email") {
		p.Email = f.email
	}
	if fs.Changed("phone") {
		p.Phone = f.phone
	}
	if fs.Changed("age") {
		p.Age = f.age
	}
	if fs.Changed("address") {
		p.Address = f.address
	}
	if fs.Changed("type") {
		p.Type = entities.ParseParticipantType(f.typeCode)
	}
	if fs.Changed("category") {
		p.Category = entities.ParseParticipantCategory(f.category)
	}
	if fs.Changed("registered") {
		t, err := datetime.ParseRegistration(f.registered, loc)
		if err != nil {
			return p, err
		}
		if !t.IsZero() {
			p.RegisteredAt = t
		}
	}
	return p, nil
}

// listingFlags are the list-screen filter and sort controls.
type listingFlags struct {
	typeCode string
	category string
	search   string
	sort     string
}

func (f *listingFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.typeCode, "type", "", "only this participant type ("+typeCodes()+")")
	fs.StringVar(&f.category, "category", "", "only this category ("+categoryCodes()+")")
	fs.StringVar(&f.search, "search", "", "case-insensitive match on name, email or phone")
	fs.StringVar(&f.sort, "sort", "", "sort order ("+sortCodes()+")")
}

func (f *listingFlags) apply(a *App) error {
	if f.typeCode != "" {
		t := entities.ParseParticipantType(f.typeCode)
		a.view.SetTypeFilter(&t)
	}
	if f.category != "" {
		c := entities.ParseParticipantCategory(f.category)
		a.view.SetCategoryFilter(&c)
	}
	if f.search != "" {
		a.view.SetSearchQuery(f.search)
	}
	if f.sort != "" {
		opt, ok := entities.ParseSortOption(f.sort)
		if !ok {
			return fmt.Errorf("unknown sort %q (%s)", f.sort, sortCodes())
		}
		a.view.Sort(opt)
	}
	return nil
}

func typeCodes() string {
	codes := make([]string, len(entities.ParticipantTypes))
	for i, t := range entities.ParticipantTypes {
		codes[i] = t.Code()
	}
	return strings.Join(codes, ", ")
}

func categoryCodes() string {
	codes := make([]string, len(entities.ParticipantCategories))
	for i, c := range entities.ParticipantCategories {
		codes[i] = c.Code()
	}
	return strings.Join(codes, ", ")
}

func sortCodes() string {
	codes := make([]string, len(entities.SortOptions))
	for i, o := range entities.SortOptions {
		codes[i] = string(o)
	}
	return strings.Join(codes, ", ")
}
