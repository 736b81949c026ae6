package generate

import (
	"math/rand"
	"strings"

	"github.com/fixturelab/seedgen/pkg/models"
)

// DuplicateStrategy selects which identifying field a duplicate shares with
// its base record.
type DuplicateStrategy int

const (
	// DuplicateSameName keeps the full name, varies contact info.
	DuplicateSameName DuplicateStrategy = iota
	// DuplicateSameEmail keeps the email, varies name and phone.
	DuplicateSameEmail
	// DuplicateSamePhone keeps the phone, varies name and email.
	DuplicateSamePhone
	// DuplicateSimilarName keeps a near-identical name, varies contact info.
	DuplicateSimilarName
)

var duplicateStrategies = []DuplicateStrategy{
	DuplicateSameName, DuplicateSameEmail, DuplicateSamePhone, DuplicateSimilarName,
}

// idOffset keeps duplicate ids disjoint from the base id space; each
// strategy gets its own band so a duplicate's id reveals how it was made.
func (s DuplicateStrategy) idOffset() int {
	switch s {
	case DuplicateSameName:
		return 10000
	case DuplicateSameEmail:
		return 20000
	case DuplicateSamePhone:
		return 30000
	case DuplicateSimilarName:
		return 40000
	}
	return 0
}

// duplicate synthesizes a near-copy of base under the given strategy. The
// duplicate gets a fresh offset id and inherits the base's timestamps.
func (g *CustomerGenerator) duplicate(base models.Customer, strategy DuplicateStrategy) models.Customer {
	dup := models.Customer{
		ID:        base.ID + strategy.idOffset(),
		Address:   g.fake.Address().StreetAddress(),
		ZipCode:   zipCode(g.rng),
		CreatedAt: base.CreatedAt,
		UpdatedAt: base.UpdatedAt,
	}

	switch strategy {
	case DuplicateSameName:
		dup.FirstName = base.FirstName
		dup.LastName = base.LastName
		dup.Email = ptr(validEmail(base.FirstName, base.LastName+"2", g.fake.Internet().FreeEmailDomain()))
		dup.Phone = ptr(validPhone(g.rng))
		dup.City = base.City
		dup.State = base.State

	case DuplicateSameEmail:
		dup.FirstName = g.fake.Person().FirstName()
		dup.LastName = g.fake.Person().LastName()
		dup.Email = copyString(base.Email)
		dup.Phone = ptr(validPhone(g.rng))
		dup.City = pick(g.rng, models.BrazilianCities)
		dup.State = pick(g.rng, models.BrazilianStates)

	case DuplicateSamePhone:
		dup.FirstName = g.fake.Person().FirstName()
		dup.LastName = g.fake.Person().LastName()
		dup.Email = ptr(validEmail(g.fake.Person().FirstName(), g.fake.Person().LastName(), g.fake.Internet().FreeEmailDomain()))
		dup.Phone = copyString(base.Phone)
		dup.City = pick(g.rng, models.BrazilianCities)
		dup.State = pick(g.rng, models.BrazilianStates)

	case DuplicateSimilarName:
		dup.FirstName = similarName(g.rng, base.FirstName)
		dup.LastName = similarName(g.rng, base.LastName)
		dup.Email = ptr(validEmail(g.fake.Person().FirstName(), g.fake.Person().LastName(), g.fake.Internet().FreeEmailDomain()))
		dup.Phone = ptr(validPhone(g.rng))
		dup.City = base.City
		dup.State = base.State
	}

	return dup
}

// similarName produces a typo-style variation of a name: unchanged,
// abbreviated, letter-substituted, one letter added, or one letter dropped.
func similarName(rng *rand.Rand, name string) string {
	runes := []rune(name)
	switch rng.Intn(5) {
	case 0:
		return name
	case 1:
		if len(runes) > 3 {
			return string(runes[:3]) + "."
		}
		return name
	case 2:
		replaced := strings.ReplaceAll(name, "a", "o")
		return strings.ReplaceAll(replaced, "e", "i")
	case 3:
		return name + "a"
	case 4:
		if len(runes) > 1 {
			return string(runes[:len(runes)-1])
		}
		return name
	}
	return name
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
