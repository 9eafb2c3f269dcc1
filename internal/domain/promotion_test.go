package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentDiscount(t *testing.T) {
	promo := NewPercentDiscount("30% off!", 30)

	assert.Equal(t, "30% off!", promo.Name())
	assert.InDelta(t, 1015.0, promo.Apply(1450, 1), 0.001)
	assert.InDelta(t, 0.0, NewPercentDiscount("free", 100).Apply(50, 3), 0.001)
}

func TestSecondHalfPrice(t *testing.T) {
	promo := NewSecondHalfPrice("Second Half price!")

	// 2 full + 2 half
	assert.InDelta(t, 300.0, promo.Apply(100, 4), 0.001)
	// odd quantity: the unpaired unit is full price
	assert.InDelta(t, 250.0, promo.Apply(100, 3), 0.001)
	assert.InDelta(t, 100.0, promo.Apply(100, 1), 0.001)
}

func TestThirdOneFree(t *testing.T) {
	promo := NewThirdOneFree("Third One Free!")

	assert.InDelta(t, 200.0, promo.Apply(100, 3), 0.001)
	assert.InDelta(t, 200.0, promo.Apply(100, 2), 0.001)
	assert.InDelta(t, 500.0, promo.Apply(100, 7), 0.001)
}

func TestPromotionAppliedOnBuy(t *testing.T) {
	product, err := NewProduct("MacBook Air M2", 1450, 100)
	require.NoError(t, err)

	product.AddPromotion(NewPercentDiscount("30% off!", 30))

	payable, err := product.Buy(1)
	require.NoError(t, err)
	assert.InDelta(t, 1015.0, payable, 0.001)
	assert.Equal(t, 99, product.Quantity())
}

func TestPromotionsStackBySummedDiscount(t *testing.T) {
	product, err := NewProduct("MacBook Air M2", 1450, 100)
	require.NoError(t, err)

	product.AddPromotion(NewPercentDiscount("30% off!", 30))
	product.AddPromotion(NewSecondHalfPrice("Second Half price!"))

	// base = 4350; each promotion is evaluated independently against the
	// same base, never chained: percent takes 1305, second-half-price
	// takes 725, payable = 4350 - 2030
	payable, err := product.Buy(3)
	require.NoError(t, err)
	assert.InDelta(t, 2320.0, payable, 0.001)
}

func TestAddPromotionIgnoresDuplicates(t *testing.T) {
	product, err := NewProduct("Google Pixel 7", 500, 250)
	require.NoError(t, err)

	promo := NewThirdOneFree("Third One Free!")
	product.AddPromotion(promo)
	product.AddPromotion(promo)

	assert.Len(t, product.Promotions(), 1)
}

func TestPromotionSharedAcrossProducts(t *testing.T) {
	promo := NewPercentDiscount("30% off!", 30)

	first, err := NewProduct("MacBook Air M2", 1450, 100)
	require.NoError(t, err)
	second, err := NewProduct("Google Pixel 7", 500, 250)
	require.NoError(t, err)

	first.AddPromotion(promo)
	second.AddPromotion(promo)

	payable, err := second.Buy(2)
	require.NoError(t, err)
	assert.InDelta(t, 700.0, payable, 0.001)
}
