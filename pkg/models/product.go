package models

import (
	"strconv"
	"time"
)

// Product represents one row of the products seed.
// Price is a pointer because the missing-price defect emits records with no
// price at all.
type Product struct {
	ID          int
	Name        string
	Category    string
	Price       *float64
	Description string
	Brand       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductHeader is the fixed column set of the products seed file.
var ProductHeader = []string{
	"id", "name", "category", "price", "description", "brand",
	"created_at", "updated_at",
}

// Row serializes the product in ProductHeader order.
func (p Product) Row() []string {
	price := ""
	if p.Price != nil {
		price = FormatAmount(*p.Price)
	}
	return []string{
		strconv.Itoa(p.ID),
		p.Name,
		p.Category,
		price,
		p.Description,
		p.Brand,
		p.CreatedAt.Format(TimestampLayout),
		p.UpdatedAt.Format(TimestampLayout),
	}
}
