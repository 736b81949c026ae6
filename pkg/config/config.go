// Package config loads seedgen configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigFile is the optional YAML configuration file read from the working
// directory. Environment variables always override YAML values.
const ConfigFile = "seedgen.yaml"

// Config holds all configuration for seedgen.
type Config struct {
	Env string `yaml:"env" env:"SEEDGEN_ENV" env-default:"local"`

	Counts  CountsConfig  `yaml:"counts"`
	Defects DefectsConfig `yaml:"defects"`
	Dates   DatesConfig   `yaml:"dates"`
	Values  ValuesConfig  `yaml:"values"`
	Output  OutputConfig  `yaml:"output"`
}

// CountsConfig holds the default record counts per generator.
type CountsConfig struct {
	Customers int `yaml:"customers" env:"SEEDGEN_NUM_CUSTOMERS" env-default:"3000"`
	Products  int `yaml:"products" env:"SEEDGEN_NUM_PRODUCTS" env-default:"1000"`
	Orders    int `yaml:"orders" env:"SEEDGEN_NUM_ORDERS" env-default:"10000"`
	Items     int `yaml:"items" env:"SEEDGEN_NUM_ITEMS" env-default:"20000"`
}

// DefectsConfig holds the injection probabilities, each in [0, 1].
type DefectsConfig struct {
	// InvalidEmail is the share of customers with a malformed email.
	InvalidEmail float64 `yaml:"invalid_email" env:"SEEDGEN_RATE_INVALID_EMAIL" env-default:"0.05"`
	// InvalidPhone is the share of phone-carrying customers with a malformed phone.
	InvalidPhone float64 `yaml:"invalid_phone" env:"SEEDGEN_RATE_INVALID_PHONE" env-default:"0.10"`
	// NoPhone is the share of customers with no phone at all.
	NoPhone float64 `yaml:"no_phone" env:"SEEDGEN_RATE_NO_PHONE" env-default:"0.01"`
	// Duplicate is the per-base-customer chance of synthesizing a duplicate.
	Duplicate float64 `yaml:"duplicate" env:"SEEDGEN_RATE_DUPLICATE" env-default:"0.03"`
	// SecondDuplicate is the chance of a second duplicate, conditional on the first.
	SecondDuplicate float64 `yaml:"second_duplicate" env:"SEEDGEN_RATE_SECOND_DUPLICATE" env-default:"0.30"`
	// Price is the share of products with a price defect.
	Price float64 `yaml:"price" env:"SEEDGEN_RATE_PRICE" env-default:"0.05"`
	// Order is the share of orders with an injected defect.
	Order float64 `yaml:"order" env:"SEEDGEN_RATE_ORDER" env-default:"0.02"`
}

// DateRange bounds the random timestamps of one entity type.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DatesConfig holds the per-entity date ranges as YYYY-MM-DD strings.
// The parsed ranges are populated at load time.
type DatesConfig struct {
	CustomersStart string `yaml:"customers_start" env:"SEEDGEN_DATE_CUSTOMERS_START" env-default:"2024-01-01"`
	CustomersEnd   string `yaml:"customers_end" env:"SEEDGEN_DATE_CUSTOMERS_END" env-default:"2025-12-31"`
	ProductsStart  string `yaml:"products_start" env:"SEEDGEN_DATE_PRODUCTS_START" env-default:"2020-01-01"`
	ProductsEnd    string `yaml:"products_end" env:"SEEDGEN_DATE_PRODUCTS_END" env-default:"2025-12-31"`
	OrdersStart    string `yaml:"orders_start" env:"SEEDGEN_DATE_ORDERS_START" env-default:"2024-01-01"`
	OrdersEnd      string `yaml:"orders_end" env:"SEEDGEN_DATE_ORDERS_END" env-default:"2025-12-31"`

	Customers DateRange `yaml:"-"`
	Products  DateRange `yaml:"-"`
	Orders    DateRange `yaml:"-"`
}

// ValuesConfig holds the numeric bands for normal and defective values.
type ValuesConfig struct {
	NormalPriceMin    float64 `yaml:"normal_price_min" env:"SEEDGEN_NORMAL_PRICE_MIN" env-default:"10"`
	NormalPriceMax    float64 `yaml:"normal_price_max" env:"SEEDGEN_NORMAL_PRICE_MAX" env-default:"1000"`
	UnitPriceMin      float64 `yaml:"unit_price_min" env:"SEEDGEN_UNIT_PRICE_MIN" env-default:"10"`
	UnitPriceMax      float64 `yaml:"unit_price_max" env:"SEEDGEN_UNIT_PRICE_MAX" env-default:"500"`
	NegativeAmountMin float64 `yaml:"negative_amount_min" env:"SEEDGEN_NEGATIVE_AMOUNT_MIN" env-default:"-1000"`
	NegativeAmountMax float64 `yaml:"negative_amount_max" env:"SEEDGEN_NEGATIVE_AMOUNT_MAX" env-default:"-1"`
	SuspiciousMin     float64 `yaml:"suspicious_min" env:"SEEDGEN_SUSPICIOUS_MIN" env-default:"10001"`
	SuspiciousMax     float64 `yaml:"suspicious_max" env:"SEEDGEN_SUSPICIOUS_MAX" env-default:"50000"`
	NegativePriceMin  float64 `yaml:"negative_price_min" env:"SEEDGEN_NEGATIVE_PRICE_MIN" env-default:"-100"`
	NegativePriceMax  float64 `yaml:"negative_price_max" env:"SEEDGEN_NEGATIVE_PRICE_MAX" env-default:"-1"`
	ExtremePriceMin   float64 `yaml:"extreme_price_min" env:"SEEDGEN_EXTREME_PRICE_MIN" env-default:"100000"`
	ExtremePriceMax   float64 `yaml:"extreme_price_max" env:"SEEDGEN_EXTREME_PRICE_MAX" env-default:"1000000"`
	FutureDaysMin     int     `yaml:"future_days_min" env:"SEEDGEN_FUTURE_DAYS_MIN" env-default:"1"`
	FutureDaysMax     int     `yaml:"future_days_max" env:"SEEDGEN_FUTURE_DAYS_MAX" env-default:"30"`
	// Assumed foreign id ranges; not validated against generated records.
	CustomerIDRange int `yaml:"customer_id_range" env:"SEEDGEN_CUSTOMER_ID_RANGE" env-default:"1000"`
	ProductIDRange  int `yaml:"product_id_range" env:"SEEDGEN_PRODUCT_ID_RANGE" env-default:"1000"`
}

// OutputConfig holds the destination paths of the four seed files.
type OutputConfig struct {
	CustomersFile string `yaml:"customers_file" env:"SEEDGEN_CUSTOMERS_FILE" env-default:"seeds/jaffle-data/raw_customers.csv"`
	ProductsFile  string `yaml:"products_file" env:"SEEDGEN_PRODUCTS_FILE" env-default:"seeds/jaffle-data/products.csv"`
	OrdersFile    string `yaml:"orders_file" env:"SEEDGEN_ORDERS_FILE" env-default:"seeds/jaffle-data/raw_orders.csv"`
	ItemsFile     string `yaml:"items_file" env:"SEEDGEN_ITEMS_FILE" env-default:"seeds/jaffle-data/raw_items.csv"`
}

// Load reads configuration from seedgen.yaml if present, otherwise from
// environment variables and defaults. Environment variables override YAML
// values either way.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(ConfigFile); err == nil {
		if err := cleanenv.ReadConfig(ConfigFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.parseDates(); err != nil {
		return nil, fmt.Errorf("invalid date configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// parseDates populates the parsed DateRange fields from their string forms.
func (c *Config) parseDates() error {
	ranges := []struct {
		name       string
		start, end string
		out        *DateRange
	}{
		{"customers", c.Dates.CustomersStart, c.Dates.CustomersEnd, &c.Dates.Customers},
		{"products", c.Dates.ProductsStart, c.Dates.ProductsEnd, &c.Dates.Products},
		{"orders", c.Dates.OrdersStart, c.Dates.OrdersEnd, &c.Dates.Orders},
	}

	for _, r := range ranges {
		start, err := time.Parse("2006-01-02", r.start)
		if err != nil {
			return fmt.Errorf("%s start date: %w", r.name, err)
		}
		end, err := time.Parse("2006-01-02", r.end)
		if err != nil {
			return fmt.Errorf("%s end date: %w", r.name, err)
		}
		if end.Before(start) {
			return fmt.Errorf("%s date range ends before it starts", r.name)
		}
		r.out.Start = start
		r.out.End = end
	}
	return nil
}

// Validate checks counts and rates. Rates must be probabilities; counts must
// be positive.
func (c *Config) Validate() error {
	counts := map[string]int{
		"customers": c.Counts.Customers,
		"products":  c.Counts.Products,
		"orders":    c.Counts.Orders,
		"items":     c.Counts.Items,
	}
	for name, v := range counts {
		if v <= 0 {
			return fmt.Errorf("%s count must be positive, got %d", name, v)
		}
	}

	rates := map[string]float64{
		"invalid_email":    c.Defects.InvalidEmail,
		"invalid_phone":    c.Defects.InvalidPhone,
		"no_phone":         c.Defects.NoPhone,
		"duplicate":        c.Defects.Duplicate,
		"second_duplicate": c.Defects.SecondDuplicate,
		"price":            c.Defects.Price,
		"order":            c.Defects.Order,
	}
	for name, v := range rates {
		if v < 0 || v > 1 {
			return fmt.Errorf("defect rate %s must be in [0, 1], got %v", name, v)
		}
	}

	if c.Values.CustomerIDRange <= 0 || c.Values.ProductIDRange <= 0 {
		return fmt.Errorf("assumed id ranges must be positive")
	}
	return nil
}
