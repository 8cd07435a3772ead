package store

import "finbot/core/internal/models"

// DefaultCatalog returns the builtin category catalog with its keyword rules.
// Order matters: the keyword matcher scans the catalog top to bottom and the
// first match wins.
func DefaultCatalog() []models.Category {
	return []models.Category{
		{
			ID:   models.CategoryFood,
			Name: "Food & Drinks",
			Keywords: []string{
				"restaurant", "cafe", "coffee", "pizza", "burger", "mcdonalds",
				"starbucks", "kfc", "subway", "essen", "rewe", "edeka", "aldi",
				"lidl", "netto", "kaufland", "supermarkt", "bakery", "bäckerei",
			},
		},
		{
			ID:   models.CategoryTransport,
			Name: "Transport",
			Keywords: []string{
				"uber", "taxi", "bus", "train", "flight", "bvg", "deutsche bahn",
				"db", "mvg", "benzin", "tankstelle", "shell", "aral", "esso",
			},
		},
		{
			ID:   models.CategoryShopping,
			Name: "Shopping",
			Keywords: []string{
				"amazon", "ebay", "zalando", "h&m", "zara", "mediamarkt",
				"saturn", "ikea", "dm", "rossmann", "müller",
			},
		},
		{
			ID:   models.CategoryEntertainment,
			Name: "Entertainment",
			Keywords: []string{
				"spotify", "netflix", "disney", "cinema", "kino", "theater",
				"concert", "konzert", "steam", "playstation", "xbox", "nintendo",
			},
		},
		{
			ID:   models.CategoryHealth,
			Name: "Health",
			Keywords: []string{
				"apotheke", "pharmacy", "arzt", "doctor", "hospital",
				"krankenhaus", "zahnarzt", "dentist", "fitness", "gym",
			},
		},
		{
			ID:   models.CategoryBills,
			Name: "Bills & Subscriptions",
			Keywords: []string{
				"strom", "electricity", "gas", "wasser", "water", "internet",
				"telekom", "vodafone", "o2", "miete", "rent", "versicherung",
				"insurance",
			},
		},
		{
			ID:       models.CategorySalary,
			Name:     "Salary & Income",
			Keywords: []string{"gehalt", "salary", "lohn", "payroll"},
		},
		{
			ID:       models.CategoryInvestment,
			Name:     "Investments",
			Keywords: []string{"depot", "etf", "dividende", "dividend", "broker"},
		},
		{
			ID:   models.CategoryOther,
			Name: "Other",
			// No keywords: "other" is the fallback, never a rule match.
		},
	}
}

// DefaultSubscriptionBrands returns the builtin known-subscription table for
// the recurrence detector's fast path.
func DefaultSubscriptionBrands() []models.SubscriptionBrand {
	return []models.SubscriptionBrand{
		{Keyword: "spotify", Name: "Spotify", Icon: "🎵"},
		{Keyword: "netflix", Name: "Netflix", Icon: "🎬"},
		{Keyword: "amazon prime", Name: "Amazon Prime", Icon: "📦"},
		{Keyword: "disney", Name: "Disney+", Icon: "🏰"},
		{Keyword: "apple music", Name: "Apple Music", Icon: "🎵"},
		{Keyword: "youtube premium", Name: "YouTube Premium", Icon: "📺"},
		{Keyword: "adobe", Name: "Adobe Creative Cloud", Icon: "🎨"},
		{Keyword: "dropbox", Name: "Dropbox", Icon: "☁️"},
		{Keyword: "office 365", Name: "Microsoft 365", Icon: "💼"},
	}
}
