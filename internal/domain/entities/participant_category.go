package entities

// ParticipantCategory is the role a participant plays in the parade.
type ParticipantCategory string

const (
	CategoryDancer    ParticipantCategory = "dancer"
	CategoryMusician  ParticipantCategory = "musician"
	CategoryOrganizer ParticipantCategory = "organizer"
	CategorySpectator ParticipantCategory = "spectator"
	CategoryVendor    ParticipantCategory = "vendor"
	CategorySecurity  ParticipantCategory = "security"
)

// ParticipantCategories lists every category in declaration order.
var ParticipantCategories = []ParticipantCategory{
	CategoryDancer,
	CategoryMusician,
	CategoryOrganizer,
	CategorySpectator,
	CategoryVendor,
	CategorySecurity,
}

type categoryDisplay struct {
	label string
	color string
}

var participantCategoryDisplay = map[ParticipantCategory]categoryDisplay{
	CategoryDancer:    {"Danzante", "#FF6B6B"},
	CategoryMusician:  {"Músico", "#4ECDC4"},
	CategoryOrganizer: {"Organizador", "#45B7D1"},
	CategorySpectator: {"Espectador", "#96CEB4"},
	CategoryVendor:    {"Vendedor", "#FFEAA7"},
	CategorySecurity:  {"Seguridad", "#DDA0DD"},
}

func (c ParticipantCategory) Code() string { return string(c) }

func (c ParticipantCategory) Label() string { return participantCategoryDisplay[c].label }

// Color is the hex display color (#RRGGBB).
func (c ParticipantCategory) Color() string { return participantCategoryDisplay[c].color }

func (c ParticipantCategory) Valid() bool {
	_, ok := participantCategoryDisplay[c]
	return ok
}

// ParseParticipantCategory maps a code to its category; unknown codes become
// CategorySpectator.
func ParseParticipantCategory(code string) ParticipantCategory {
	c := ParticipantCategory(code)
	if !c.Valid() {
		return CategorySpectator
	}
	return c
}
