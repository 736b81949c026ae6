// Package models contains the domain types serialized into the seed files.
package models

import (
	"strconv"
	"time"
)

// Timestamp layouts used across all seed files.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Customer represents one row of the raw customers seed.
// Email and Phone are pointers because the generator intentionally emits
// records where those fields are absent; an absent value serializes as an
// empty cell, same as an injected empty string.
type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
	Address   string
	City      string
	State     string
	ZipCode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerHeader is the fixed column set of the customers seed file.
var CustomerHeader = []string{
	"id", "first_name", "last_name", "email", "phone",
	"address", "city", "state", "zip_code", "created_at", "updated_at",
}

// Row serializes the customer in CustomerHeader order.
func (c Customer) Row() []string {
	return []string{
		strconv.Itoa(c.ID),
		c.FirstName,
		c.LastName,
		stringOrEmpty(c.Email),
		stringOrEmpty(c.Phone),
		c.Address,
		c.City,
		c.State,
		c.ZipCode,
		c.CreatedAt.Format(TimestampLayout),
		c.UpdatedAt.Format(TimestampLayout),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
