// Package catalog materialises domain products from catalog configuration.
package catalog

import (
	"errors"
	"fmt"

	"storefront/internal/config"
	"storefront/internal/domain"
)

var (
	ErrUnknownKind      = errors.New("unknown product kind")
	ErrUnknownPromotion = errors.New("unknown promotion type")
)

// Build constructs the products described by the catalog configuration,
// in definition order, with their promotions attached.
func Build(cfg config.CatalogConfig) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(cfg.Products))

	for _, pc := range cfg.Products {
		product, err := buildProduct(pc)
		if err != nil {
			return nil, err
		}

		for _, promoCfg := range pc.Promotions {
			promo, err := buildPromotion(promoCfg)
			if err != nil {
				return nil, fmt.Errorf("product %q: %w", pc.Name, err)
			}
			product.AddPromotion(promo)
		}

		products = append(products, product)
	}

	return products, nil
}

func buildProduct(pc config.ProductConfig) (*domain.Product, error) {
	var (
		product *domain.Product
		err     error
	)

	switch domain.Kind(pc.Kind) {
	case domain.KindStandard, domain.Kind(""):
		product, err = domain.NewProduct(pc.Name, pc.Price, pc.Quantity)
	case domain.KindNonStocked:
		product, err = domain.NewNonStockedProduct(pc.Name, pc.Price)
	case domain.KindLimited:
		product, err = domain.NewLimitedProduct(pc.Name, pc.Price, pc.Quantity, pc.MaxPerOrder)
	default:
		return nil, fmt.Errorf("product %q: %w: %s", pc.Name, ErrUnknownKind, pc.Kind)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create product %q: %w", pc.Name, err)
	}
	return product, nil
}

func buildPromotion(pc config.PromotionConfig) (domain.Promotion, error) {
	switch pc.Type {
	case "percent_discount":
		return domain.NewPercentDiscount(pc.Name, pc.Percent), nil
	case "second_half_price":
		return domain.NewSecondHalfPrice(pc.Name), nil
	case "third_one_free":
		return domain.NewThirdOneFree(pc.Name), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPromotion, pc.Type)
	}
}
