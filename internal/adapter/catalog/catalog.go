// Package catalog serves the static, build-time product list.
package catalog

import (
	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
)

var _ port.Catalog = (*Catalog)(nil)

type Catalog struct {
	products []domain.Product
	byID     map[int]domain.Product
}

// New builds a catalog over the built-in product set.
func New() Catalog {
	return NewWithProducts(products)
}

// NewWithProducts builds a catalog over an explicit product set.
func NewWithProducts(ps []domain.Product) Catalog {
	byID := make(map[int]domain.Product, len(ps))
	for _, p := range ps {
		byID[p.ID] = p
	}
	return Catalog{products: ps, byID: byID}
}

func (c Catalog) Products() []domain.Product {
	cp := make([]domain.Product, len(c.products))
	copy(cp, c.products)
	return cp
}

func (c Catalog) ProductByID(id int) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}
