package models

import (
	"strconv"
	"time"
)

// Order represents one row of the raw orders seed. CustomerID is an assumed
// reference into a fixed id range and is not validated against generated
// customers; this mirrors a late/partial load. OrderDate and Status are
// pointers because the missing-date and missing-status defects drop them.
type Order struct {
	ID              int
	CustomerID      int
	OrderDate       *time.Time
	Status          *string
	TotalAmount     float64
	PaymentMethod   string
	DeliveryAddress string
	CreatedAt       time.Time
}

// Item represents one line of an order. ItemID is globally sequential across
// all orders. ProductID is an assumed, unvalidated reference. CreatedAt is
// copied from the parent order.
type Item struct {
	ItemID    int
	OrderID   int
	ProductID int
	Quantity  int
	UnitPrice float64
	CreatedAt time.Time
}

// OrderHeader is the fixed column set of the orders seed file.
var OrderHeader = []string{
	"id", "customer_id", "order_date", "status", "total_amount",
	"payment_method", "delivery_address", "created_at",
}

// ItemHeader is the fixed column set of the items seed file.
var ItemHeader = []string{
	"item_id", "order_id", "product_id", "quantity", "unit_price", "created_at",
}

// Row serializes the order in OrderHeader order.
func (o Order) Row() []string {
	orderDate := ""
	if o.OrderDate != nil {
		orderDate = o.OrderDate.Format(DateLayout)
	}
	return []string{
		strconv.Itoa(o.ID),
		strconv.Itoa(o.CustomerID),
		orderDate,
		stringOrEmpty(o.Status),
		FormatAmount(o.TotalAmount),
		o.PaymentMethod,
		o.DeliveryAddress,
		o.CreatedAt.Format(TimestampLayout),
	}
}

// Row serializes the item in ItemHeader order.
func (i Item) Row() []string {
	return []string{
		strconv.Itoa(i.ItemID),
		strconv.Itoa(i.OrderID),
		strconv.Itoa(i.ProductID),
		strconv.Itoa(i.Quantity),
		FormatAmount(i.UnitPrice),
		i.CreatedAt.Format(TimestampLayout),
	}
}
