package generate

import (
	"math/rand"
	"strings"
	"time"

	"github.com/fixturelab/seedgen/pkg/config"
	"github.com/fixturelab/seedgen/pkg/models"
)

// EmailDefect enumerates the malformed email shapes.
type EmailDefect int

const (
	EmailNoAt EmailDefect = iota
	EmailNoDomain
	EmailNoLocal
	EmailTrailingAt
	EmailDottedNoAt
	EmailEmpty
	EmailAbsent
)

var emailDefects = []EmailDefect{
	EmailNoAt, EmailNoDomain, EmailNoLocal, EmailTrailingAt,
	EmailDottedNoAt, EmailEmpty, EmailAbsent,
}

// apply returns the defective email for the given name, or nil for the
// absent variant.
func (d EmailDefect) apply(first, last string) *string {
	first = strings.ToLower(first)
	last = strings.ToLower(last)
	switch d {
	case EmailNoAt:
		return ptr(first + "." + last)
	case EmailNoDomain:
		return ptr(first + "@" + last)
	case EmailNoLocal:
		return ptr("@" + first + "." + last)
	case EmailTrailingAt:
		return ptr(first + "." + last + "@")
	case EmailDottedNoAt:
		return ptr(first + "." + last + ".com")
	case EmailEmpty:
		return ptr("")
	case EmailAbsent:
		return nil
	}
	return ptr(first + "." + last)
}

// PhoneDefect enumerates the malformed phone shapes.
type PhoneDefect int

const (
	PhoneTooShort PhoneDefect = iota
	PhoneTooLong
	PhoneLetters
	PhoneBadPunctuation
	PhoneEmpty
	PhoneAbsent
	PhoneSameDigit
)

var phoneDefects = []PhoneDefect{
	PhoneTooShort, PhoneTooLong, PhoneLetters, PhoneBadPunctuation,
	PhoneEmpty, PhoneAbsent, PhoneSameDigit,
}

// badPunctuationShapes are numeric strings with the wrong grouping or
// separators for a Brazilian phone.
var badPunctuationShapes = []string{
	"(11) 1234-567",
	"11 12345 6789",
	"123-456-789",
}

// apply returns the defective phone, or nil for the absent variant.
func (d PhoneDefect) apply(rng *rand.Rand) *string {
	switch d {
	case PhoneTooShort:
		return ptr("123")
	case PhoneTooLong:
		return ptr("12345678901234567890")
	case PhoneLetters:
		return ptr("abc-def-ghij")
	case PhoneBadPunctuation:
		return ptr(badPunctuationShapes[rng.Intn(len(badPunctuationShapes))])
	case PhoneEmpty:
		return ptr("")
	case PhoneAbsent:
		return nil
	case PhoneSameDigit:
		if rng.Intn(2) == 0 {
			return ptr("000000000")
		}
		return ptr("999999999")
	}
	return ptr("123")
}

// PriceDefect enumerates the product price defects.
type PriceDefect int

const (
	PriceNegative PriceDefect = iota
	PriceZero
	PriceExtreme
	PriceAbsent
)

var priceDefects = []PriceDefect{PriceNegative, PriceZero, PriceExtreme, PriceAbsent}

// apply returns the defective price, or nil for the absent variant.
func (d PriceDefect) apply(rng *rand.Rand, values config.ValuesConfig) *float64 {
	switch d {
	case PriceNegative:
		return ptr(round2(randFloat(rng, values.NegativePriceMin, values.NegativePriceMax)))
	case PriceZero:
		return ptr(0.0)
	case PriceExtreme:
		return ptr(round2(randFloat(rng, values.ExtremePriceMin, values.ExtremePriceMax)))
	case PriceAbsent:
		return nil
	}
	return ptr(round2(randFloat(rng, values.NormalPriceMin, values.NormalPriceMax)))
}

// OrderDefect enumerates the order-level defects.
type OrderDefect int

const (
	OrderNegativeTotal OrderDefect = iota
	OrderZeroTotal
	OrderMissingDate
	OrderMissingStatus
	OrderSuspiciousTotal
	OrderFutureDate
)

var orderDefects = []OrderDefect{
	OrderNegativeTotal, OrderZeroTotal, OrderMissingDate,
	OrderMissingStatus, OrderSuspiciousTotal, OrderFutureDate,
}

// apply mutates the order's date, status and total according to the defect.
// now anchors the future-date variant.
func (d OrderDefect) apply(rng *rand.Rand, values config.ValuesConfig, now time.Time, o *models.Order) {
	switch d {
	case OrderNegativeTotal:
		o.TotalAmount = round2(randFloat(rng, values.NegativeAmountMin, values.NegativeAmountMax))
	case OrderZeroTotal:
		o.TotalAmount = 0
	case OrderMissingDate:
		o.OrderDate = nil
		o.TotalAmount = 0
	case OrderMissingStatus:
		o.Status = nil
		o.TotalAmount = 0
	case OrderSuspiciousTotal:
		o.TotalAmount = round2(randFloat(rng, values.SuspiciousMin, values.SuspiciousMax))
	case OrderFutureDate:
		days := values.FutureDaysMin + rng.Intn(values.FutureDaysMax-values.FutureDaysMin+1)
		o.OrderDate = ptr(now.AddDate(0, 0, days))
		o.TotalAmount = 0
	}
}
