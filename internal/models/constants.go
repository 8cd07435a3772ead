package models

// Category ids of the system catalog. User-defined categories may extend the
// catalog at runtime; these are the ids the keyword rules and the AI prompt
// vocabulary are built from.
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryShopping      = "shopping"
	CategoryEntertainment = "entertainment"
	CategoryHealth        = "health"
	CategoryBills         = "bills"
	CategorySalary        = "salary"
	CategoryInvestment    = "investment"
	CategoryOther         = "other"
)

// DefaultCategoryID is the fallback every unresolvable transaction ends up
// in. It must always exist in the catalog.
const DefaultCategoryID = CategoryOther
