// Package money renders amounts in the shop currency (IDR) for a
// two-letter UI language tag.
package money

import (
	"math"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	localeIndonesian = "id-ID"
	localeFallback   = "en-US"
)

var symbols = map[string]string{
	localeIndonesian: "Rp",
	localeFallback:   "IDR",
}

var (
	mu       sync.Mutex
	printers = make(map[string]*message.Printer)
)

// Format renders amount with zero fraction digits and locale grouping.
// "id" maps to id-ID, any other tag to en-US. NaN and Inf amounts are
// treated as zero.
func Format(amount float64, lang string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	locale := localeFallback
	if lang == "id" {
		locale = localeIndonesian
	}

	p := printerFor(locale)
	return p.Sprintf("%s %v",
		symbols[locale],
		number.Decimal(amount, number.MaxFractionDigits(0)),
	)
}

func printerFor(locale string) *message.Printer {
	mu.Lock()
	defer mu.Unlock()

	p, ok := printers[locale]
	if !ok {
		p = message.NewPrinter(language.MustParse(locale))
		printers[locale] = p
	}
	return p
}
