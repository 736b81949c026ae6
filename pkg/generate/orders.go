package generate

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"go.uber.org/zap"

	"github.com/fixturelab/seedgen/pkg/config"
	"github.com/fixturelab/seedgen/pkg/models"
)

// OrderItemGenerator produces orders and their line items together, because
// order totals are derived from item data.
type OrderItemGenerator struct {
	cfg    *config.Config
	rng    *rand.Rand
	fake   faker.Faker
	logger *zap.Logger
	now    func() time.Time
}

// NewOrderItemGenerator creates an order/item generator with its own random
// source.
func NewOrderItemGenerator(cfg *config.Config, seed int64, logger *zap.Logger) *OrderItemGenerator {
	return &OrderItemGenerator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		fake:   faker.NewWithSeed(rand.NewSource(seed + 1)),
		logger: logger,
		now:    time.Now,
	}
}

// Generate returns numOrders orders and their items. The first
// floor(numOrders * order defect rate) orders receive one injected defect
// each. Every order gets at least one item; items carry globally sequential
// ids starting at 1.
//
// An order whose total is still the zero placeholder after the defect pass,
// and whose date is present, gets 1-5 items whose rounded line totals
// accumulate into its total. Any other order gets exactly one item that does
// not touch the already-defective total.
func (g *OrderItemGenerator) Generate(numOrders int) ([]models.Order, []models.Item) {
	orders := g.generateOrders(numOrders)
	items := g.generateItems(orders)

	g.logger.Info("generated orders and items",
		zap.Int("orders", len(orders)),
		zap.Int("items", len(items)))
	return orders, items
}

func (g *OrderItemGenerator) generateOrders(numOrders int) []models.Order {
	defectCount := int(float64(numOrders) * g.cfg.Defects.Order)
	now := g.now()

	orders := make([]models.Order, 0, numOrders)
	for i := 0; i < numOrders; i++ {
		createdAt := dateBetween(g.rng, g.cfg.Dates.Orders)

		order := models.Order{
			ID:              i + 1,
			CustomerID:      1 + g.rng.Intn(g.cfg.Values.CustomerIDRange),
			OrderDate:       ptr(createdAt),
			Status:          ptr(pick(g.rng, models.OrderStatuses)),
			TotalAmount:     0, // placeholder until items accumulate
			PaymentMethod:   pick(g.rng, models.PaymentMethods),
			DeliveryAddress: g.fake.Address().StreetAddress(),
			CreatedAt:       createdAt,
		}

		// Defects target the leading orders by index, not a random sample.
		if i < defectCount {
			defect := orderDefects[g.rng.Intn(len(orderDefects))]
			defect.apply(g.rng, g.cfg.Values, now, &order)
		}

		orders = append(orders, order)
	}
	return orders
}

func (g *OrderItemGenerator) generateItems(orders []models.Order) []models.Item {
	items := make([]models.Item, 0, len(orders))
	itemID := 1

	for i := range orders {
		order := &orders[i]

		if order.TotalAmount == 0 && order.OrderDate != nil {
			count := 1 + g.rng.Intn(5)
			for j := 0; j < count; j++ {
				quantity := 1 + g.rng.Intn(10)
				unitPrice := round2(randFloat(g.rng, g.cfg.Values.UnitPriceMin, g.cfg.Values.UnitPriceMax))
				order.TotalAmount = round2(order.TotalAmount + round2(float64(quantity)*unitPrice))

				items = append(items, models.Item{
					ItemID:    itemID,
					OrderID:   order.ID,
					ProductID: 1 + g.rng.Intn(g.cfg.Values.ProductIDRange),
					Quantity:  quantity,
					UnitPrice: unitPrice,
					CreatedAt: order.CreatedAt,
				})
				itemID++
			}
			continue
		}

		// Defective order: one item keeps the order non-empty without
		// disturbing the injected total.
		items = append(items, models.Item{
			ItemID:    itemID,
			OrderID:   order.ID,
			ProductID: 1 + g.rng.Intn(g.cfg.Values.ProductIDRange),
			Quantity:  1 + g.rng.Intn(5),
			UnitPrice: round2(randFloat(g.rng, 10, 100)),
			CreatedAt: order.CreatedAt,
		})
		itemID++
	}

	return items
}
