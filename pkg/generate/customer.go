package generate

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"go.uber.org/zap"

	"github.com/fixturelab/seedgen/pkg/config"
	"github.com/fixturelab/seedgen/pkg/models"
)

// CustomerGenerator produces base customer records plus intentional
// fuzzy duplicates.
type CustomerGenerator struct {
	cfg    *config.Config
	rng    *rand.Rand
	fake   faker.Faker
	logger *zap.Logger
}

// NewCustomerGenerator creates a customer generator with its own random
// source.
func NewCustomerGenerator(cfg *config.Config, seed int64, logger *zap.Logger) *CustomerGenerator {
	return &CustomerGenerator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		fake:   faker.NewWithSeed(rand.NewSource(seed + 1)),
		logger: logger,
	}
}

// Generate returns n base customers with ids 1..n, followed by zero or more
// duplicate records in the order their bases were generated. Duplicates get
// ids offset by their strategy and inherit their base's timestamps.
func (g *CustomerGenerator) Generate(n int) []models.Customer {
	bases := make([]models.Customer, 0, n)
	for i := 0; i < n; i++ {
		bases = append(bases, g.base(i+1))
	}

	customers := make([]models.Customer, len(bases))
	copy(customers, bases)

	duplicates := 0
	for _, base := range bases {
		if g.rng.Float64() >= g.cfg.Defects.Duplicate {
			continue
		}
		strategy := duplicateStrategies[g.rng.Intn(len(duplicateStrategies))]
		customers = append(customers, g.duplicate(base, strategy))
		duplicates++

		if g.rng.Float64() < g.cfg.Defects.SecondDuplicate {
			strategy = duplicateStrategies[g.rng.Intn(len(duplicateStrategies))]
			customers = append(customers, g.duplicate(base, strategy))
			duplicates++
		}
	}

	g.logger.Info("generated customers",
		zap.Int("base", n),
		zap.Int("duplicates", duplicates),
		zap.Int("total", len(customers)))
	return customers
}

func (g *CustomerGenerator) base(id int) models.Customer {
	createdAt := dateBetween(g.rng, g.cfg.Dates.Customers)
	updatedAt := dateAfter(g.rng, createdAt, g.cfg.Dates.Customers.End)

	first := g.fake.Person().FirstName()
	last := g.fake.Person().LastName()

	var email *string
	if g.rng.Float64() < g.cfg.Defects.InvalidEmail {
		defect := emailDefects[g.rng.Intn(len(emailDefects))]
		email = defect.apply(first, last)
	} else {
		email = ptr(validEmail(first, last, g.fake.Internet().FreeEmailDomain()))
	}

	var phone *string
	if g.rng.Float64() > g.cfg.Defects.NoPhone {
		if g.rng.Float64() < g.cfg.Defects.InvalidPhone {
			defect := phoneDefects[g.rng.Intn(len(phoneDefects))]
			phone = defect.apply(g.rng)
		} else {
			phone = ptr(validPhone(g.rng))
		}
	}

	return models.Customer{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     phone,
		Address:   g.fake.Address().StreetAddress(),
		City:      pick(g.rng, models.BrazilianCities),
		State:     pick(g.rng, models.BrazilianStates),
		ZipCode:   zipCode(g.rng),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
