package generate

import (
	"fmt"
	"math/rand"

	"github.com/jaswdr/faker"
	"go.uber.org/zap"

	"github.com/fixturelab/seedgen/pkg/config"
	"github.com/fixturelab/seedgen/pkg/models"
)

// ProductGenerator produces product records, a share of which carry an
// injected price defect.
type ProductGenerator struct {
	cfg    *config.Config
	rng    *rand.Rand
	fake   faker.Faker
	logger *zap.Logger
}

// NewProductGenerator creates a product generator with its own random source.
func NewProductGenerator(cfg *config.Config, seed int64, logger *zap.Logger) *ProductGenerator {
	return &ProductGenerator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		fake:   faker.NewWithSeed(rand.NewSource(seed + 1)),
		logger: logger,
	}
}

// Generate returns exactly n products with sequential ids starting at 1.
func (g *ProductGenerator) Generate(n int) []models.Product {
	products := make([]models.Product, 0, n)
	defective := 0

	for i := 0; i < n; i++ {
		category := pick(g.rng, models.ProductCategories)

		var name string
		if names, ok := models.ProductsByCategory[category]; ok && len(names) > 0 {
			name = pick(g.rng, names)
		} else {
			name = fmt.Sprintf("Generic %s Product %d", category, i+1)
		}

		var price *float64
		if g.rng.Float64() < g.cfg.Defects.Price {
			defect := priceDefects[g.rng.Intn(len(priceDefects))]
			price = defect.apply(g.rng, g.cfg.Values)
			defective++
		} else {
			price = ptr(round2(randFloat(g.rng, g.cfg.Values.NormalPriceMin, g.cfg.Values.NormalPriceMax)))
		}

		createdAt := dateBetween(g.rng, g.cfg.Dates.Products)
		updatedAt := dateAfter(g.rng, createdAt, g.cfg.Dates.Products.End)

		products = append(products, models.Product{
			ID:          i + 1,
			Name:        name,
			Category:    category,
			Price:       price,
			Description: g.fake.Lorem().Text(200),
			Brand:       g.fake.Company().Name(),
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
		})
	}

	g.logger.Info("generated products",
		zap.Int("total", len(products)),
		zap.Int("price_defects", defective))
	return products
}
