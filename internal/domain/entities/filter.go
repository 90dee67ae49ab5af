package entities

// Filter holds the listing parameters set by the user. Nil pointers mean
// "any"; an empty or whitespace-only Query matches everyone.
type Filter struct {
	Type     *ParticipantType
	Category *ParticipantCategory
	Query    string
}

func (f Filter) IsZero() bool {
	return f.Type == nil && f.Category == nil && f.Query == ""
}
