// Package fare derives a ticket price from a route distance with a flat
// base-plus-rate rule:
//
//	fare = BaseFare + RatePerKm × distance
//
// Both constants are policy, not physics: they are plain integers in the
// network's currency and distance units, and they are configured per Policy
// rather than fixed in code.
package fare

import (
	"errors"
	"fmt"
	"strconv"
)

// Currency is the prefix printed in front of amounts.
const Currency = "Rs."

// Defaults used by Default and New.
const (
	DefaultBaseFare  int64 = 10
	DefaultRatePerKm int64 = 2
)

// ErrNegativeFare indicates a policy with a negative base fare or rate.
var ErrNegativeFare = errors.New("fare: base fare and rate must be non-negative")

// Policy holds the fare constants of a network.
type Policy struct {
	BaseFare  int64 `yaml:"base"`
	RatePerKm int64 `yaml:"rate_per_km"`
}

// Option represents a functional option for configuring a Policy.
type Option func(*Policy)

// WithBaseFare sets the flat component. Panics on a negative value.
func WithBaseFare(base int64) Option {
	if base < 0 {
		panic(ErrNegativeFare.Error())
	}

	return func(p *Policy) { p.BaseFare = base }
}

// WithRatePerKm sets the per-distance-unit component. Panics on a negative value.
func WithRatePerKm(rate int64) Option {
	if rate < 0 {
		panic(ErrNegativeFare.Error())
	}

	return func(p *Policy) { p.RatePerKm = rate }
}

// Default returns the policy {BaseFare: 10, RatePerKm: 2}.
func Default() Policy {
	return Policy{BaseFare: DefaultBaseFare, RatePerKm: DefaultRatePerKm}
}

// New returns Default() with opts applied in order.
func New(opts ...Option) Policy {
	p := Default()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Validate reports ErrNegativeFare for policies built without the option
// constructors (e.g. decoded from a file).
func (p Policy) Validate() error {
	if p.BaseFare < 0 || p.RatePerKm < 0 {
		return fmt.Errorf("%w: base=%d rate=%d", ErrNegativeFare, p.BaseFare, p.RatePerKm)
	}

	return nil
}

// Compute returns BaseFare + RatePerKm×distance. For a valid policy it is
// non-decreasing in distance and equals BaseFare at distance 0.
func (p Policy) Compute(distance int64) int64 {
	return p.BaseFare + p.RatePerKm*distance
}

// Format renders amount with the currency prefix, e.g. "Rs.26".
func Format(amount int64) string {
	return Currency + strconv.FormatInt(amount, 10)
}

func (p Policy) String() string {
	return fmt.Sprintf("%s + %d/km", Format(p.BaseFare), p.RatePerKm)
}
