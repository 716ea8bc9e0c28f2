package validation

import (
	"fmt"
	"time"
)

// Accepted birth date layouts, tried in order.
var birthDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

const (
	minimumAge = 18
	maximumAge = 120
)

// BirthDate validates a birth date string and the age policy derived from it.
func BirthDate(raw string) Result {
	var birth time.Time
	parsed := false
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			birth = t
			parsed = true
			break
		}
	}
	if !parsed {
		return invalid("Formato de data inválido. Use DD/MM/AAAA ou AAAA-MM-DD")
	}

	today := time.Now()
	if birth.After(today) {
		return invalid("Data de nascimento não pode ser futura")
	}

	age := ageInYears(birth, today)
	if age < minimumAge {
		return invalid(fmt.Sprintf("Idade mínima é 18 anos. Idade atual: %d anos", age))
	}
	if age > maximumAge {
		return invalid(fmt.Sprintf("Idade muito alta: %d anos", age))
	}

	return valid(fmt.Sprintf("Data válida. Idade: %d anos", age))
}

// ageInYears counts whole years, discounting one when the birthday has not
// yet occurred this year.
func ageInYears(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
