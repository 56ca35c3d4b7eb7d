package cart

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-pricing/catalog"
	"github.com/noah-isme/toko-pricing/pricing"
	"github.com/noah-isme/toko-pricing/promo"
	"github.com/noah-isme/toko-pricing/user"
)

// ErrOutOfRange is returned when a numeric input falls outside its allowed
// range; the wrapped message names the offending parameter.
var ErrOutOfRange = errors.New("value out of range")

// ErrDiscountApplied is returned when a flat discount is applied twice.
var ErrDiscountApplied = errors.New("discount already applied")

// ErrPromoApplied is returned when a promo code is applied twice.
var ErrPromoApplied = errors.New("promo code already applied")

// ErrDiscountCapExceeded is returned when a flat discount and a promo code
// together would leave no headroom for the loyalty bonus.
var ErrDiscountCapExceeded = errors.New("combined discount cannot exceed 100%")

// ErrPremiumRequired is returned when a high-value promo code is applied
// on behalf of a non-premium owner.
var ErrPremiumRequired = errors.New("promo code requires a premium account")

// ErrLineNotFound is returned when an operation references a product that
// has no line in the cart.
var ErrLineNotFound = errors.New("cart line not found")

const (
	// loyaltyBonus is granted when the purchase falls on the owner's
	// birthday and the result still fits under maxCombinedPercent.
	loyaltyBonus = 5
	// maxCombinedPercent caps flat discount plus promo percentage at 99,
	// reserving headroom so the loyalty bonus can never reach 100%.
	maxCombinedPercent = 99
)

// Line is one cart entry: a product and how many units of it are bought.
// A cart holds at most one line per product ID.
type Line struct {
	Product catalog.Product
	Amount  int
}

// Cart owns the mutable pricing state for a single purchaser: ordered
// line items, an optional flat discount and an optional promo code. It is
// not safe for concurrent use; callers must serialize access.
type Cart struct {
	owner    user.User
	log      zerolog.Logger
	lines    map[uuid.UUID]*Line
	order    []uuid.UUID
	discount *int
	promo    *promo.Code
}

// New creates an empty cart bound to owner for its whole lifetime.
func New(owner user.User) *Cart {
	return &Cart{
		owner: owner,
		log:   zerolog.Nop(),
		lines: make(map[uuid.UUID]*Line),
	}
}

// WithLogger attaches a structured logger for mutation events and returns
// the cart for chaining. Without one the cart stays silent.
func (c *Cart) WithLogger(log zerolog.Logger) *Cart {
	c.log = log
	return c
}

// Owner returns the purchaser the cart is bound to.
func (c *Cart) Owner() user.User {
	return c.owner
}

// AddProduct adds amount units of p to the cart. When a line for the same
// product ID already exists its amount is incremented and the originally
// stored product value is kept; otherwise a new line is appended, so
// insertion order is preserved across the cart's lifetime.
func (c *Cart) AddProduct(p catalog.Product, amount int) error {
	if amount < 1 {
		return fmt.Errorf("amount must be positive: %w", ErrOutOfRange)
	}
	if line, ok := c.lines[p.ID]; ok {
		line.Amount += amount
	} else {
		c.lines[p.ID] = &Line{Product: p, Amount: amount}
		c.order = append(c.order, p.ID)
	}
	c.log.Debug().
		Str("product_id", p.ID.String()).
		Int("amount", amount).
		Int("line_amount", c.lines[p.ID].Amount).
		Msg("product added")
	return nil
}

// UpdateAmount replaces the amount on the line for productID.
func (c *Cart) UpdateAmount(productID uuid.UUID, amount int) error {
	if amount < 1 {
		return fmt.Errorf("amount must be positive: %w", ErrOutOfRange)
	}
	line, ok := c.lines[productID]
	if !ok {
		return ErrLineNotFound
	}
	line.Amount = amount
	c.log.Debug().
		Str("product_id", productID.String()).
		Int("amount", amount).
		Msg("line amount updated")
	return nil
}

// RemoveProduct deletes the line for productID, keeping the relative
// order of the remaining lines.
func (c *Cart) RemoveProduct(productID uuid.UUID) error {
	if _, ok := c.lines[productID]; !ok {
		return ErrLineNotFound
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.log.Debug().Str("product_id", productID.String()).Msg("line removed")
	return nil
}

// ApplyDiscount stores a flat percentage discount on the cart. A discount
// can be applied once per cart and, combined with an already applied promo
// code, may not exceed the 99% cap.
func (c *Cart) ApplyDiscount(discount int) error {
	if discount < 1 || discount > maxCombinedPercent {
		return fmt.Errorf("discount must be between 1 and 99: %w", ErrOutOfRange)
	}
	if c.discount != nil {
		return ErrDiscountApplied
	}
	if c.promo != nil && discount+c.promo.Percent > maxCombinedPercent {
		return ErrDiscountCapExceeded
	}
	c.discount = &discount
	c.log.Debug().Int("discount", discount).Msg("discount applied")
	return nil
}

// ApplyPromo stores a promo code on the cart. A code can be applied once
// per cart, must keep the combined discount under the 99% cap, and a code
// at or above promo.PremiumThreshold is rejected for non-premium owners.
func (c *Cart) ApplyPromo(code promo.Code) error {
	if c.promo != nil {
		return ErrPromoApplied
	}
	if code.Percent < 1 || code.Percent > maxCombinedPercent {
		return fmt.Errorf("discountPercent must be between 1 and 99: %w", ErrOutOfRange)
	}
	if c.discount != nil && *c.discount+code.Percent > maxCombinedPercent {
		return ErrDiscountCapExceeded
	}
	if code.RequiresPremium() && !c.owner.Premium {
		return ErrPremiumRequired
	}
	c.promo = &code
	c.log.Debug().
		Str("promo_code", code.Code).
		Int("percent", code.Percent).
		Msg("promo code applied")
	return nil
}

// FullDiscount returns the aggregate discount percentage effective at the
// given purchase moment: flat discount plus promo percentage, plus the
// loyalty bonus when the purchase falls on the owner's birthday and the
// bonus still fits under the cap. The bonus is dropped entirely when it
// would not fit; it is never partially applied.
func (c *Cart) FullDiscount(at time.Time) int {
	base := 0
	if c.discount != nil {
		base += *c.discount
	}
	if c.promo != nil {
		base += c.promo.Percent
	}
	if c.owner.CelebratesOn(at) && base+loyaltyBonus <= maxCombinedPercent {
		base += loyaltyBonus
	}
	return base
}

// FullPrice returns the payable price at the given purchase moment after
// applying FullDiscount to the line subtotal.
func (c *Cart) FullPrice(at time.Time) pricing.Money {
	return pricing.Compute(c.items(), c.FullDiscount(at)).Total
}

// Subtotal returns the line total before any discount.
func (c *Cart) Subtotal() pricing.Money {
	return pricing.Compute(c.items(), 0).Subtotal
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) items() []pricing.Item {
	items := make([]pricing.Item, 0, len(c.order))
	for _, id := range c.order {
		line := c.lines[id]
		items = append(items, pricing.Item{Qty: line.Amount, UnitPrice: line.Product.Price})
	}
	return items
}
