package generate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fixturelab/seedgen/pkg/config"
	"github.com/fixturelab/seedgen/pkg/models"
)

func TestOrderItemGenerator_EveryOrderHasAtLeastOneItem(t *testing.T) {
	cfg := testConfig()
	cfg.Defects.Order = 0.5

	gen := NewOrderItemGenerator(cfg, 1, zap.NewNop())
	orders, items := gen.Generate(100)

	counts := make(map[int]int)
	orderIDs := make(map[int]bool)
	for _, o := range orders {
		orderIDs[o.ID] = true
	}
	for _, it := range items {
		assert.True(t, orderIDs[it.OrderID], "item %d references unknown order %d", it.ItemID, it.OrderID)
		counts[it.OrderID]++
	}
	for _, o := range orders {
		assert.GreaterOrEqual(t, counts[o.ID], 1, "order %d has no items", o.ID)
	}
}

func TestOrderItemGenerator_TotalsMatchItems(t *testing.T) {
	cfg := testConfig()
	cfg.Defects.Order = 0

	gen := NewOrderItemGenerator(cfg, 2, zap.NewNop())
	orders, items := gen.Generate(200)

	itemsByOrder := make(map[int][]models.Item)
	for _, it := range items {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
	}

	for _, o := range orders {
		lines := itemsByOrder[o.ID]
		require.NotEmpty(t, lines)
		require.LessOrEqual(t, len(lines), 5)

		expected := 0.0
		for _, it := range lines {
			expected = models.Round2(expected + models.Round2(float64(it.Quantity)*it.UnitPrice))
		}
		assert.Equal(t, expected, o.TotalAmount, "order %d total does not match its items", o.ID)
	}
}

func TestOrderItemGenerator_DefectPrefix(t *testing.T) {
	cfg := testConfig()
	cfg.Defects.Order = 0.5

	gen := NewOrderItemGenerator(cfg, 3, zap.NewNop())
	now := gen.now()
	orders, _ := gen.Generate(40)
	require.Len(t, orders, 40)

	// Suspicious-total defects are indistinguishable from legitimately large
	// accumulated totals, so only the unambiguous defect shapes count here.
	observable := func(o models.Order) bool {
		if o.OrderDate == nil || o.Status == nil {
			return true
		}
		return o.TotalAmount < 0 || o.OrderDate.After(now)
	}

	// Defects land on the leading half only.
	prefixDefects := 0
	for _, o := range orders[:20] {
		if observable(o) {
			prefixDefects++
		}
	}
	assert.Greater(t, prefixDefects, 0)

	for _, o := range orders[20:] {
		assert.False(t, observable(o), "order %d outside the defect prefix looks defective", o.ID)
	}
}

func TestOrderItemGenerator_DefectiveOrdersGetSingleDetachedItem(t *testing.T) {
	cfg := testConfig()
	cfg.Defects.Order = 1

	gen := NewOrderItemGenerator(cfg, 4, zap.NewNop())
	orders, items := gen.Generate(120)

	counts := make(map[int]int)
	for _, it := range items {
		counts[it.OrderID]++
	}

	for _, o := range orders {
		// Orders whose injected defect leaves a non-zero total or no date
		// keep exactly one item that does not contribute to the total.
		if o.TotalAmount < 0 {
			assert.Equal(t, 1, counts[o.ID], "negative-total order %d should have one item", o.ID)
		}
		if o.OrderDate == nil {
			assert.Equal(t, 1, counts[o.ID], "missing-date order %d should have one item", o.ID)
		}
	}
}

func TestOrderItemGenerator_ItemIDsGloballySequential(t *testing.T) {
	gen := NewOrderItemGenerator(testConfig(), 5, zap.NewNop())
	_, items := gen.Generate(80)

	for i, it := range items {
		assert.Equal(t, i+1, it.ItemID)
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, 10)
		assert.Greater(t, it.UnitPrice, 0.0)
	}
}

func TestOrderItemGenerator_ItemTimestampCopiedFromOrder(t *testing.T) {
	gen := NewOrderItemGenerator(testConfig(), 6, zap.NewNop())
	orders, items := gen.Generate(60)

	createdByOrder := make(map[int]time.Time)
	for _, o := range orders {
		createdByOrder[o.ID] = o.CreatedAt
	}
	for _, it := range items {
		assert.Equal(t, createdByOrder[it.OrderID], it.CreatedAt)
	}
}

func TestOrderItemGenerator_FutureDateWithinWindow(t *testing.T) {
	cfg := testConfig()
	cfg.Defects.Order = 1

	// Keep the normal order-date range strictly before "now" so any date
	// past it must come from the future-date defect.
	cfg.Dates.Orders = config.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gen := NewOrderItemGenerator(cfg, 7, zap.NewNop())
	gen.now = func() time.Time { return fixed }

	orders, _ := gen.Generate(300)

	futureSeen := false
	for _, o := range orders {
		if o.OrderDate == nil || !o.OrderDate.After(fixed) {
			continue
		}
		futureSeen = true
		assert.False(t, o.OrderDate.After(fixed.AddDate(0, 0, cfg.Values.FutureDaysMax)),
			"order %d future date %v beyond window", o.ID, o.OrderDate)
	}
	assert.True(t, futureSeen, "expected at least one future-dated order")
}

func TestOrderItemGenerator_ReferencesStayInAssumedRanges(t *testing.T) {
	cfg := testConfig()
	gen := NewOrderItemGenerator(cfg, 8, zap.NewNop())
	orders, items := gen.Generate(150)

	for _, o := range orders {
		assert.GreaterOrEqual(t, o.CustomerID, 1)
		assert.LessOrEqual(t, o.CustomerID, cfg.Values.CustomerIDRange)
		assert.Contains(t, models.PaymentMethods, o.PaymentMethod)
		if o.Status != nil {
			assert.Contains(t, models.OrderStatuses, *o.Status)
		}
	}
	for _, it := range items {
		assert.GreaterOrEqual(t, it.ProductID, 1)
		assert.LessOrEqual(t, it.ProductID, cfg.Values.ProductIDRange)
	}
}
