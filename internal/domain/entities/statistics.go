package entities

// AgeBracket is one of the fixed age ranges used by Statistics.
type AgeBracket string

const (
	Bracket0To17  AgeBracket = "0-17"
	Bracket18To25 AgeBracket = "18-25"
	Bracket26To35 AgeBracket = "26-35"
	Bracket36To50 AgeBracket = "36-50"
	BracketOver50 AgeBracket = "50+"
)

var ageBrackets = []struct {
	bracket  AgeBracket
	min, max int
}{
	{Bracket0To17, 0, 17},
	{Bracket18To25, 18, 25},
	{Bracket26To35, 26, 35},
	{Bracket36To50, 36, 50},
}

// BracketFor returns the first inclusive range containing age, else BracketOver50.
func BracketFor(age int) AgeBracket {
	for _, b := range ageBrackets {
		if age >= b.min && age <= b.max {
			return b.bracket
		}
	}
	return BracketOver50
}

type TypeCount struct {
	Type  ParticipantType
	Count int
}

type CategoryCount struct {
	Category ParticipantCategory
	Count    int
}

type BracketCount struct {
	Bracket AgeBracket
	Count   int
}

// Statistics is an aggregate over the whole participant collection. Group
// slices only hold groups that are present, in first-encountered order.
type Statistics struct {
	Total       int
	Active      int
	ByType      []TypeCount
	ByCategory  []CategoryCount
	AverageAge  float64
	AgeBrackets []BracketCount
	Recent      int
}

func (s Statistics) TypeCount(t ParticipantType) int {
	for _, tc := range s.ByType {
		if tc.Type == t {
			return tc.Count
		}
	}
	return 0
}

func (s Statistics) CategoryCount(c ParticipantCategory) int {
	for _, cc := range s.ByCategory {
		if cc.Category == c {
			return cc.Count
		}
	}
	return 0
}

func (s Statistics) BracketCount(b AgeBracket) int {
	for _, bc := range s.AgeBrackets {
		if bc.Bracket == b {
			return bc.Count
		}
	}
	return 0
}
