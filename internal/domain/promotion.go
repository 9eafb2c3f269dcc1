package domain

// Promotion is a stateless discount policy. Apply computes the payable
// total for buying quantity units at the given unit price; it never
// returns more than unitPrice * quantity.
type Promotion interface {
	Name() string
	Apply(unitPrice float64, quantity int) float64
}

// PercentDiscount reduces the whole purchase by a flat percentage.
type PercentDiscount struct {
	name    string
	percent float64
}

// NewPercentDiscount creates a percentage discount promotion.
func NewPercentDiscount(name string, percent float64) *PercentDiscount {
	return &PercentDiscount{name: name, percent: percent}
}

func (p *PercentDiscount) Name() string {
	return p.name
}

func (p *PercentDiscount) Apply(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity) * (1 - p.percent/100)
}

// SecondHalfPrice charges every second unit at half price.
type SecondHalfPrice struct {
	name string
}

// NewSecondHalfPrice creates a second-item-half-price promotion.
func NewSecondHalfPrice(name string) *SecondHalfPrice {
	return &SecondHalfPrice{name: name}
}

func (p *SecondHalfPrice) Name() string {
	return p.name
}

func (p *SecondHalfPrice) Apply(unitPrice float64, quantity int) float64 {
	fullPriceCount := quantity/2 + quantity%2
	halfPriceCount := quantity / 2
	return float64(fullPriceCount)*unitPrice + float64(halfPriceCount)*unitPrice*0.5
}

// ThirdOneFree makes every third unit free.
type ThirdOneFree struct {
	name string
}

// NewThirdOneFree creates a buy-two-get-one-free promotion.
func NewThirdOneFree(name string) *ThirdOneFree {
	return &ThirdOneFree{name: name}
}

func (p *ThirdOneFree) Name() string {
	return p.name
}

func (p *ThirdOneFree) Apply(unitPrice float64, quantity int) float64 {
	paidCount := quantity - quantity/3
	return float64(paidCount) * unitPrice
}
