package flight

import (
	"context"
	"fmt"
	"time"
)

// Validator checks search parameters before any upstream call is made.
type Validator struct {
	iata IataLookup
	now  func() time.Time
}

func NewValidator(iata IataLookup, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{iata: iata, now: now}
}

// Validate applies the rules in a fixed order and returns the first failure
// as a *ValidationError. Lookup failures are returned unwrapped.
func (v *Validator) Validate(ctx context.Context, req SearchRequest) error {
	if err := v.exists(ctx, req.Origin, "origin does not exist"); err != nil {
		return err
	}
	if err := v.exists(ctx, req.Destination, "destination does not exist"); err != nil {
		return err
	}
	if req.Origin == req.Destination {
		return invalid("origin and destination must be different")
	}

	departure, err := time.Parse(DateLayout, req.DepartureDate)
	if err != nil {
		return invalid("departure date must be in YYYY-MM-DD format")
	}
	if departure.Before(today(v.now())) {
		return invalid("departure date must be greater than current date")
	}

	ret, err := time.Parse(DateLayout, req.ReturnDate)
	if err != nil {
		return invalid("return date must be in YYYY-MM-DD format")
	}
	if ret.Before(departure) {
		return invalid("return date must be greater than departure date")
	}
	return nil
}

func (v *Validator) exists(ctx context.Context, code, reason string) error {
	ok, err := v.iata.IataExists(ctx, code)
	if err != nil {
		return fmt.Errorf("lookup iata %q: %w", code, err)
	}
	if !ok {
		return invalid(reason)
	}
	return nil
}

// today drops the time of day, keeping the calendar date in now's location.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
