package domain

const DefaultLanguage = "en"

type (
	Product struct {
		ID           int
		Price        float64
		Category     string
		ImageURL     string
		Stock        int
		Translations map[string]ProductText
	}

	ProductText struct {
		Name        string
		Category    string
		Description string
	}

	LocalizedProduct struct {
		ID            int
		Price         float64
		CategoryKey   string
		CategoryLabel string
		ImageURL      string
		Stock         int
		Name          string
		Description   string
	}
)

// LocalizeProduct resolves display texts for a product.
// Fallback order: requested language, default language, raw record.
func LocalizeProduct(p Product, lang string) LocalizedProduct {
	lp := LocalizedProduct{
		ID:            p.ID,
		Price:         p.Price,
		CategoryKey:   p.Category,
		CategoryLabel: p.Category,
		ImageURL:      p.ImageURL,
		Stock:         p.Stock,
	}

	t, ok := p.Translations[lang]
	if !ok {
		t, ok = p.Translations[DefaultLanguage]
	}
	if !ok {
		return lp
	}

	lp.Name = t.Name
	lp.Description = t.Description
	lp.CategoryLabel = t.Category
	return lp
}
