package service_test

import (
	"fmt"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
)

var _ port.SnapshotStore = (*memStore)(nil)

// memStore is the in-memory snapshot double for service tests.
type memStore struct {
	data   map[string][]byte
	setErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Get(key string) ([]byte, error) {
	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, domain.ErrNotFound)
	}
	return v, nil
}

func (s *memStore) Set(key string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}

func (s *memStore) has(key string) bool {
	_, ok := s.data[key]
	return ok
}

var _ port.Catalog = (*fakeCatalog)(nil)

type fakeCatalog struct {
	products []domain.Product
}

func (c fakeCatalog) Products() []domain.Product {
	return c.products
}

func (c fakeCatalog) ProductByID(id int) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func testCatalog() fakeCatalog {
	return fakeCatalog{products: []domain.Product{
		{
			ID:       1,
			Price:    85000,
			Category: "Lifestyle",
			ImageURL: "/img/bottle.jpg",
			Stock:    40,
			Translations: map[string]domain.ProductText{
				"en": {Name: "Eco Bottle", Category: "Lifestyle", Description: "Keeps drinks cold."},
				"id": {Name: "Botol Eco", Category: "Gaya Hidup", Description: "Menjaga minuman tetap dingin."},
			},
		},
		{
			ID:       2,
			Price:    15000,
			Category: "Personal Care",
			ImageURL: "/img/brush.jpg",
			Stock:    60,
			Translations: map[string]domain.ProductText{
				"en": {Name: "Bamboo Toothbrush", Category: "Personal Care", Description: "Soft bristles."},
				"id": {Name: "Sikat Gigi Bambu", Category: "Perawatan Diri", Description: "Bulu lembut."},
			},
		},
		{
			ID:       3,
			Price:    42000,
			Category: "Fashion",
			ImageURL: "/img/tote.jpg",
			Stock:    45,
			Translations: map[string]domain.ProductText{
				"en": {Name: "Cotton Tote", Category: "Fashion", Description: "Organic cotton."},
			},
		},
	}}
}
