package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Counts.Customers)
	assert.Equal(t, 1000, cfg.Counts.Products)
	assert.Equal(t, 10000, cfg.Counts.Orders)
	assert.Equal(t, 20000, cfg.Counts.Items)

	assert.Equal(t, 0.05, cfg.Defects.InvalidEmail)
	assert.Equal(t, 0.10, cfg.Defects.InvalidPhone)
	assert.Equal(t, 0.01, cfg.Defects.NoPhone)
	assert.Equal(t, 0.03, cfg.Defects.Duplicate)
	assert.Equal(t, 0.30, cfg.Defects.SecondDuplicate)
	assert.Equal(t, 0.05, cfg.Defects.Price)
	assert.Equal(t, 0.02, cfg.Defects.Order)

	assert.Equal(t, "seeds/jaffle-data/raw_customers.csv", cfg.Output.CustomersFile)
	assert.Equal(t, "seeds/jaffle-data/raw_orders.csv", cfg.Output.OrdersFile)
}

func TestLoad_ParsesDateRanges(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Dates.Customers.Start)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), cfg.Dates.Customers.End)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Dates.Products.Start)
	assert.True(t, cfg.Dates.Orders.Start.Before(cfg.Dates.Orders.End))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SEEDGEN_NUM_CUSTOMERS", "150")
	t.Setenv("SEEDGEN_RATE_DUPLICATE", "0.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 150, cfg.Counts.Customers)
	assert.Equal(t, 0.5, cfg.Defects.Duplicate)
}

func TestLoad_RejectsRateOutOfRange(t *testing.T) {
	t.Setenv("SEEDGEN_RATE_PRICE", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestLoad_RejectsBadDate(t *testing.T) {
	t.Setenv("SEEDGEN_DATE_ORDERS_START", "not-a-date")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsInvertedDateRange(t *testing.T) {
	t.Setenv("SEEDGEN_DATE_PRODUCTS_START", "2026-01-01")
	t.Setenv("SEEDGEN_DATE_PRODUCTS_END", "2020-01-01")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products")
}

func TestValidate_RejectsNonPositiveCount(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Counts.Orders = 0
	assert.Error(t, cfg.Validate())
}
