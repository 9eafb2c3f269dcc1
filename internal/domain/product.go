package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNameEmpty         = errors.New("product name cannot be empty")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrProductInactive   = errors.New("product is not active")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInsufficientStock = errors.New("insufficient quantity available")
	ErrQuantityFixed     = errors.New("quantity of a non-stocked product cannot be changed")
	ErrOverOrderLimit    = errors.New("quantity exceeds the per-order purchase limit")
)

// Kind selects the purchase-validation and quantity-update behaviour of a
// product.
type Kind string

const (
	// KindStandard is a stock-tracked product.
	KindStandard Kind = "standard"
	// KindNonStocked has no on-hand count and is always purchasable.
	KindNonStocked Kind = "non_stocked"
	// KindLimited is stock-tracked with a per-order purchase cap.
	KindLimited Kind = "limited"
)

// Product is a sellable catalog entry. The active flag is derived from the
// on-hand quantity after every mutation; Activate and Deactivate exist as
// administrative overrides only.
type Product struct {
	id          uuid.UUID
	name        string
	price       float64
	quantity    int
	active      bool
	kind        Kind
	maxPerOrder int
	promotions  []Promotion
}

// NewProduct creates a stock-tracked product.
func NewProduct(name string, price float64, quantity int) (*Product, error) {
	return newProduct(name, price, quantity, KindStandard, 0)
}

// NewNonStockedProduct creates a product without inventory tracking, such
// as a software license. Its quantity is pinned at zero and it stays
// purchasable regardless.
func NewNonStockedProduct(name string, price float64) (*Product, error) {
	return newProduct(name, price, 0, KindNonStocked, 0)
}

// NewLimitedProduct creates a stock-tracked product that can only be
// bought up to maxPerOrder units in a single purchase.
func NewLimitedProduct(name string, price float64, quantity, maxPerOrder int) (*Product, error) {
	if maxPerOrder <= 0 {
		return nil, fmt.Errorf("per-order limit for %q: %w", name, ErrInvalidQuantity)
	}
	return newProduct(name, price, quantity, KindLimited, maxPerOrder)
}

func newProduct(name string, price float64, quantity int, kind Kind, maxPerOrder int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameEmpty
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	// active is derived from quantity; non-stocked products have no
	// quantity to derive from and start purchasable
	active := quantity > 0 || kind == KindNonStocked

	return &Product{
		id:          uuid.New(),
		name:        name,
		price:       price,
		quantity:    quantity,
		active:      active,
		kind:        kind,
		maxPerOrder: maxPerOrder,
	}, nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() uuid.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Quantity returns the units on hand. Always 0 for non-stocked products.
func (p *Product) Quantity() int {
	return p.quantity
}

// Kind returns the product's behaviour kind.
func (p *Product) Kind() Kind {
	return p.kind
}

// MaxPerOrder returns the per-order purchase cap, 0 when uncapped.
func (p *Product) MaxPerOrder() int {
	return p.maxPerOrder
}

// IsActive reports whether the product is eligible for purchase/listing.
func (p *Product) IsActive() bool {
	return p.active
}

// Activate administratively marks the product purchasable.
func (p *Product) Activate() {
	p.active = true
}

// Deactivate administratively disables the product even with stock on
// hand. The next quantity mutation of a stock-tracked product recomputes
// the flag.
func (p *Product) Deactivate() {
	p.active = false
}

// checkBalance recomputes the active flag from the on-hand quantity.
// Non-stocked products keep their flag as-is: their quantity is always 0.
func (p *Product) checkBalance() {
	if p.kind == KindNonStocked {
		return
	}
	if p.quantity == 0 {
		p.Deactivate()
	} else {
		p.Activate()
	}
}

// SetQuantity replaces the on-hand quantity and recomputes the active
// flag.
func (p *Product) SetQuantity(quantity int) error {
	if p.kind == KindNonStocked {
		return ErrQuantityFixed
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	p.quantity = quantity
	p.checkBalance()
	return nil
}

// AddPromotion attaches a promotion to the product. A promotion already
// attached is ignored; attachment order is preserved.
func (p *Product) AddPromotion(promo Promotion) {
	for _, attached := range p.promotions {
		if attached == promo {
			return
		}
	}
	p.promotions = append(p.promotions, promo)
}

// Promotions returns the attached promotions in attachment order.
func (p *Product) Promotions() []Promotion {
	return p.promotions
}

func (p *Product) validatePurchase(quantity int) error {
	if !p.active {
		return ErrProductInactive
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if p.kind == KindLimited && quantity > p.maxPerOrder {
		return ErrOverOrderLimit
	}
	if p.kind != KindNonStocked && quantity > p.quantity {
		return ErrInsufficientStock
	}
	return nil
}

// updateQuantity applies a purchase of the given size to the on-hand
// count. Non-stocked products are never decremented.
func (p *Product) updateQuantity(quantity int) {
	if p.kind == KindNonStocked {
		return
	}
	p.quantity -= quantity
	p.checkBalance()
}

// totalDiscount sums each attached promotion's implied discount against
// the same base price. Promotions stack by summed discount, not by
// chaining. The sum is not clamped to the base price.
func (p *Product) totalDiscount(basePrice float64, quantity int) float64 {
	var discount float64
	for _, promo := range p.promotions {
		discount += basePrice - promo.Apply(p.price, quantity)
	}
	return discount
}

// Buy purchases the given quantity, updates the on-hand count and returns
// the payable total after promotions. Validation happens before any
// mutation.
func (p *Product) Buy(quantity int) (float64, error) {
	if err := p.validatePurchase(quantity); err != nil {
		return 0, err
	}

	basePrice := p.price * float64(quantity)
	payable := basePrice - p.totalDiscount(basePrice, quantity)

	p.updateQuantity(quantity)

	return payable, nil
}

// Show renders the human-readable product summary.
func (p *Product) Show() string {
	var b strings.Builder

	switch p.kind {
	case KindNonStocked:
		fmt.Fprintf(&b, "%s, Price: %g, Quantity: Unlimited", p.name, p.price)
	case KindLimited:
		fmt.Fprintf(&b, "%s, Price: %g, Quantity: %d, Limited to %d per order!", p.name, p.price, p.quantity, p.maxPerOrder)
	default:
		fmt.Fprintf(&b, "%s, Price: %g, Quantity: %d", p.name, p.price, p.quantity)
	}

	if len(p.promotions) > 0 {
		names := make([]string, len(p.promotions))
		for i, promo := range p.promotions {
			names[i] = promo.Name()
		}
		fmt.Fprintf(&b, ", Promotions: %s", strings.Join(names, ", "))
	}

	return b.String()
}
