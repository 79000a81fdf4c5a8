package catalog

import "github.com/ecogoods/storefront/internal/core/domain"

var products = []domain.Product{
	{
		ID:       1,
		Price:    85000,
		Category: "Lifestyle",
		ImageURL: "/assets/img/eco-stainless-bottle.jpg",
		Stock:    40,
		Translations: map[string]domain.ProductText{
			"en": {
				Name:        "Eco Stainless Drink Bottle",
				Category:    "Lifestyle",
				Description: "Durable stainless-steel drink bottle that keeps beverages at the ideal temperature and cuts single-use plastic.",
			},
			"id": {
				Name:        "Botol Minum Stainless Eco",
				Category:    "Gaya Hidup",
				Description: "Botol minum ramah lingkungan berbahan stainless steel, menjaga suhu minuman tetap ideal dan mengurangi limbah plastik sekali pakai.",
			},
		},
	},
	{
		ID:       2,
		Price:    15000,
		Category: "Personal Care",
		ImageURL: "/assets/img/bamboo-toothbrush.jpg",
		Stock:    60,
		Translations: map[string]domain.ProductText{
			"en": {
				Name:        "Premium Bamboo Toothbrush",
				Category:    "Personal Care",
				Description: "Soft-bristled bamboo toothbrush that is naturally antimicrobial and gentle on the gums.",
			},
			"id": {
				Name:        "Sikat Gigi Bambu Premium",
				Category:    "Perawatan Diri",
				Description: "Sikat gigi bambu dengan bulu lembut alami, higienis, dan ramah lingkungan untuk perawatan gigi harian.",
			},
		},
	},
	{
		ID:       3,
		Price:    42000,
		Category: "Fashion",
		ImageURL: "/assets/img/organic-cotton-tote.avif",
		Stock:    45,
		Translations: map[string]domain.ProductText{
			"en": {
				Name:        "Organic Cotton Shopping Tote",
				Category:    "Fashion",
				Description: "Spacious tote bag made from pure organic cotton, perfect for grocer trips and daily carry.",
			},
			"id": {
				Name:        "Tas Belanja Katun Organik",
				Category:    "Mode",
				Description: "Tas tote lapang dari 100% katun organik, kuat untuk belanja harian sekaligus gaya yang sederhana.",
			},
		},
	},
	{
		ID:       4,
		Price:    120000,
		Category: "Home",
		ImageURL: "/assets/img/solar-garden-lamp.jpg",
		Stock:    18,
		Translations: map[string]domain.ProductText{
			"en": {
				Name:        "Aurora Solar Garden Lamp",
				Category:    "Home",
				Description: "Weather-resistant solar lamp that illuminates outdoor spaces automatically with stored sunlight.",
			},
			"id": {
				Name:        "Lampu Taman Tenaga Surya Aurora",
				Category:    "Rumah",
				Description: "Lampu taman tahan cuaca dengan panel surya yang menyala otomatis di malam hari, hemat energi dan bebas listrik.",
			},
		},
	},
	{
		ID:       5,
		Price:    65000,
		Category: "Kitchen",
		ImageURL: "/assets/img/wooden-tableware.jpg",
		Stock:    32,
		Translations: map[string]domain.ProductText{
			"en": {
				Name:        "Lestari Wooden Tableware Set",
				Category:    "Kitchen",
				Description: "Smooth teak tableware set finished with food-safe oil for sustainable dining.",
			},
			"id": {
				Name:        "Peralatan Makan Kayu Lestari",
				Category:    "Dapur",
				Description: "Set peralatan makan kayu jati dengan finishing food grade, menambah hangatnya meja makan ramah lingkungan.",
			},
		},
	},
	{
		ID:       6,
		Price:    180000,
		Category: "Tech Accessories",
		ImageURL: "/assets/img/natural-fiber-sleeve.avif",
		Stock:    26,
		Translations: map[string]domain.ProductText{
			"en": {
				Name:        "Natural Fiber Laptop Sleeve",
				Category:    "Tech Accessories",
				Description: "Laptop sleeve crafted from woven natural fibers with recycled felt padding for daily commutes.",
			},
			"id": {
				Name:        "Sleeve Laptop Serat Alam",
				Category:    "Aksesori Teknologi",
				Description: "Sleeve laptop dari serat alam tenun dengan lapisan felt daur ulang, ringan dibawa dan melindungi perangkat.",
			},
		},
	},
	{
		ID:       7,
		Price:    175000,
		Category: "Fitness",
		ImageURL: "/assets/img/natural-rubber-mat.jpg",
		Stock:    22,
		Translations: map[string]domain.ProductText{
			"en": {
				Name:        "Natural Rubber Harmony Mat",
				Category:    "Fitness",
				Description: "Grip-focused yoga mat made from natural rubber and jute for mindful flows.",
			},
			"id": {
				Name:        "Matras Yoga Karet Alam",
				Category:    "Kebugaran",
				Description: "Matras yoga anti-slip dari karet alam dan serat goni yang menopang pose dengan stabil dan nyaman.",
			},
		},
	},
	{
		ID:       8,
		Price:    55000,
		Category: "Home Care",
		ImageURL: "/assets/img/citrus-cleaning-kit.jpg",
		Stock:    38,
		Translations: map[string]domain.ProductText{
			"en": {
				Name:        "Citrus Plant-Based Cleaning Kit",
				Category:    "Home Care",
				Description: "Plant-based cleaning kit with citrus enzymes that refresh surfaces without harsh chemicals.",
			},
			"id": {
				Name:        "Kit Pembersih Nabati Citrus",
				Category:    "Perawatan Rumah",
				Description: "Perlengkapan pembersih berbahan nabati dengan enzim citrus, efektif menghilangkan noda tanpa residu kimia keras.",
			},
		},
	},
}
