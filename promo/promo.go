package promo

import (
	"errors"
	"fmt"
	"time"

	validator "github.com/go-playground/validator/v10"
)

// PremiumThreshold is the discount percentage at which a promo code is
// restricted to premium accounts.
const PremiumThreshold = 50

// ErrInvalidCode is returned when a promo code record fails validation.
var ErrInvalidCode = errors.New("invalid promo code")

// Code is a promotional discount issued by an external promotion system.
// Two codes represent the same promotion only when the issued values are
// equal, not merely when the code strings match.
type Code struct {
	Code    string `validate:"required"`
	Percent int    `validate:"gte=1,lte=99"`
	// ValidFor bounds how long the code stays redeemable after issue.
	// TODO: enforce ValidFor against the purchase time once expiry
	// semantics are confirmed with the promotions team; today the window
	// is carried but never checked.
	ValidFor time.Duration `validate:"gte=0"`
}

var validate = validator.New()

// New builds a validated promo code. The code string must be non-empty,
// the percentage must lie in [1, 99] and the validity window must not be
// negative.
func New(code string, percent int, validFor time.Duration) (Code, error) {
	c := Code{Code: code, Percent: percent, ValidFor: validFor}
	if err := validate.Struct(c); err != nil {
		return Code{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	return c, nil
}

// RequiresPremium reports whether the code may only be redeemed by a
// premium account.
func (c Code) RequiresPremium() bool {
	return c.Percent >= PremiumThreshold
}
