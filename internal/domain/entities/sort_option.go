package entities

// SortOption selects the ordering of a participant listing.
type SortOption string

const (
	SortNatural              SortOption = ""
	SortFirstNameAsc         SortOption = "name_asc"
	SortFirstNameDesc        SortOption = "name_desc"
	SortLastNameAsc          SortOption = "lastname_asc"
	SortLastNameDesc         SortOption = "lastname_desc"
	SortAgeAsc               SortOption = "age_asc"
	SortAgeDesc              SortOption = "age_desc"
	SortRegistrationDateAsc  SortOption = "registration_asc"
	SortRegistrationDateDesc SortOption = "registration_desc"
)

// SortOptions lists the eight user-selectable orderings.
var SortOptions = []SortOption{
	SortFirstNameAsc,
	SortFirstNameDesc,
	SortLastNameAsc,
	SortLastNameDesc,
	SortAgeAsc,
	SortAgeDesc,
	SortRegistrationDateAsc,
	SortRegistrationDateDesc,
}

var sortOptionLabels = map[SortOption]string{
	SortNatural:              "Orden de registro",
	SortFirstNameAsc:         "Nombre (A-Z)",
	SortFirstNameDesc:        "Nombre (Z-A)",
	SortLastNameAsc:          "Apellido (A-Z)",
	SortLastNameDesc:         "Apellido (Z-A)",
	SortAgeAsc:               "Edad (Menor a Mayor)",
	SortAgeDesc:              "Edad (Mayor a Menor)",
	SortRegistrationDateAsc:  "Fecha de Registro (Antigua)",
	SortRegistrationDateDesc: "Fecha de Registro (Reciente)",
}

func (o SortOption) Label() string { return sortOptionLabels[o] }

// ParseSortOption returns ok=false for codes that are not one of SortOptions.
func ParseSortOption(code string) (SortOption, bool) {
	o := SortOption(code)
	if o == SortNatural {
		return SortNatural, false
	}
	_, ok := sortOptionLabels[o]
	return o, ok
}
