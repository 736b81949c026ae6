// Package generate implements the customer, product and order/item
// generators, including defect injection and duplicate synthesis.
package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/fixturelab/seedgen/pkg/config"
	"github.com/fixturelab/seedgen/pkg/models"
)

func ptr[T any](v T) *T {
	return &v
}

// randFloat returns a uniform value in [min, max).
func randFloat(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// dateBetween returns a uniform instant between start and end, second
// resolution.
func dateBetween(rng *rand.Rand, r config.DateRange) time.Time {
	span := r.End.Unix() - r.Start.Unix()
	if span <= 0 {
		return r.Start
	}
	return time.Unix(r.Start.Unix()+rng.Int63n(span+1), 0).UTC()
}

// dateAfter returns a uniform instant between floor and end, never before
// floor. Used to keep updated_at >= created_at.
func dateAfter(rng *rand.Rand, floor time.Time, end time.Time) time.Time {
	if end.Before(floor) {
		return floor
	}
	return dateBetween(rng, config.DateRange{Start: floor, End: end})
}

// validPhone returns a well-formed Brazilian phone, (DD) NNNNN-NNNN.
func validPhone(rng *rand.Rand) string {
	ddd := 11 + rng.Intn(89)
	n := 100000000 + rng.Intn(900000000)
	return fmt.Sprintf("(%d) %d-%04d", ddd, n/10000, n%10000)
}

// zipCode returns a well-formed Brazilian postal code, NNNNN-NNN.
func zipCode(rng *rand.Rand) string {
	return fmt.Sprintf("%d-%d", 10000+rng.Intn(90000), 100+rng.Intn(900))
}

// validEmail builds the canonical first.last@domain address.
func validEmail(first, last, domain string) string {
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + domain
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func round2(v float64) float64 {
	return models.Round2(v)
}
