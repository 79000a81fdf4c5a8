package port

import (
	"github.com/ecogoods/storefront/internal/core/domain"
)

// SnapshotStore is the local key-value persistence adapter.
// Get returns domain.ErrNotFound for an absent key.
type SnapshotStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Catalog provides the static product list.
type Catalog interface {
	Products() []domain.Product
	ProductByID(id int) (domain.Product, bool)
}

type CartViewer interface {
	Items() []domain.CartItem
	Summary() domain.CartSummary
}

type CartMutator interface {
	Add(productID int, lang string) error
	Remove(productID int)
	Increment(productID int)
	Decrement(productID int)
	Clear()
}

type CheckoutSubmitter interface {
	Submit(c domain.Customer, sel domain.Selection, lang string) (orderID string, err error)
}

type OrderAppender interface {
	Append(o domain.Order)
}

type OrderLister interface {
	List() []domain.Order
}

type Registrar interface {
	Register(name, email, password string) (domain.User, error)
}

type Authenticator interface {
	Login(email, password string) (domain.User, error)
	Logout()
}

type ProfileKeeper interface {
	Current() (domain.User, error)
	UpdateProfile(fields domain.User) (domain.User, error)
}

type PreferenceKeeper interface {
	Language() string
	SetLanguage(lang string) error
	Theme() string
	SetTheme(theme string) error
}
