package domain

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"paradereg/internal/domain/entities"
)

// FilterParticipants returns, in input order, the participants matching every
// set criterion of f. The input slice is not modified.
func FilterParticipants(participants []entities.Participant, f entities.Filter) []entities.Participant {
	blank := strings.TrimSpace(f.Query) == ""
	// A Caser is stateful and must not be shared between goroutines.
	fold := cases.Fold()
	folded := fold.String(f.Query)

	out := make([]entities.Participant, 0, len(participants))
	for _, p := range participants {
		if f.Type != nil && p.Type != *f.Type {
			continue
		}
		if f.Category != nil && p.Category != *f.Category {
			continue
		}
		if !blank && !matchesQuery(fold, p, folded) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(fold cases.Caser, p entities.Participant, folded string) bool {
	for _, field := range []string{p.FullName(), p.Email, p.Phone} {
		if strings.Contains(fold.String(field), folded) {
			return true
		}
	}
	return false
}

// SortParticipants returns a stably sorted copy of participants. SortNatural
// and unknown options return the input order.
func SortParticipants(participants []entities.Participant, opt entities.SortOption) []entities.Participant {
	out := slices.Clone(participants)
	if out == nil {
		out = []entities.Participant{}
	}

	var compare func(a, b entities.Participant) int
	switch opt {
	case entities.SortFirstNameAsc:
		compare = func(a, b entities.Participant) int { return strings.Compare(a.FirstName, b.FirstName) }
	case entities.SortFirstNameDesc:
		compare = func(a, b entities.Participant) int { return strings.Compare(b.FirstName, a.FirstName) }
	case entities.SortLastNameAsc:
		compare = func(a, b entities.Participant) int { return strings.Compare(a.LastName, b.LastName) }
	case entities.SortLastNameDesc:
		compare = func(a, b entities.Participant) int { return strings.Compare(b.LastName, a.LastName) }
	case entities.SortAgeAsc:
		compare = func(a, b entities.Participant) int { return cmp.Compare(a.Age, b.Age) }
	case entities.SortAgeDesc:
		compare = func(a, b entities.Participant) int { return cmp.Compare(b.Age, a.Age) }
	case entities.SortRegistrationDateAsc:
		compare = func(a, b entities.Participant) int { return a.RegisteredAt.Compare(b.RegisteredAt) }
	case entities.SortRegistrationDateDesc:
		compare = func(a, b entities.Participant) int { return b.RegisteredAt.Compare(a.RegisteredAt) }
	default:
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}
