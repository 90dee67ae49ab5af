package entities

// ParticipantType classifies who a participant is.
type ParticipantType string

const (
	TypeStudent         ParticipantType = "student"
	TypeProfessor       ParticipantType = "professor"
	TypeCommunityMember ParticipantType = "community"
	TypeVolunteer       ParticipantType = "volunteer"
)

// ParticipantTypes lists every type in declaration order.
var ParticipantTypes = []ParticipantType{
	TypeStudent,
	TypeProfessor,
	TypeCommunityMember,
	TypeVolunteer,
}

var participantTypeLabels = map[ParticipantType]string{
	TypeStudent:         "Estudiante",
	TypeProfessor:       "Profesor",
	TypeCommunityMember: "Miembro de la Comunidad",
	TypeVolunteer:       "Voluntario",
}

// Code is the stable string code of the type.
func (t ParticipantType) Code() string { return string(t) }

// Label is the default (Spanish) display label.
func (t ParticipantType) Label() string { return participantTypeLabels[t] }

func (t ParticipantType) Valid() bool {
	_, ok := participantTypeLabels[t]
	return ok
}

// ParseParticipantType maps a code to its type. Unknown codes fall back to
// TypeStudent instead of failing.
func ParseParticipantType(code string) ParticipantType {
	t := ParticipantType(code)
	if !t.Valid() {
		return TypeStudent
	}
	return t
}
