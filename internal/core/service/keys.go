package service

// Snapshot keys. The names mirror the storefront's original local
// storage layout, so an existing snapshot stays readable.
const (
	keyCartItems = "cartItems"
	keyUser      = "ecoUser"
	keyOrders    = "ecoOrders"
	keyLanguage  = "ecoLanguage"
	keyTheme     = "theme"
)
