package stats

import "github.com/shopspring/decimal"

// Distribution is the breakdown shown on the admin dashboard chart.
type Distribution struct {
	Male     int `json:"male"`
	Female   int `json:"female"`
	Imported int `json:"imported"`
}

// PlaceholderDistribution is a fixed figure the dashboard has always shown.
// It is not derived from stored data.
var PlaceholderDistribution = Distribution{Male: 520, Female: 728, Imported: 150}

type Stats struct {
	TotalPets      int             `json:"totalPets"`
	TotalOrders    int             `json:"totalOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalCustomers int             `json:"totalCustomers"`
	Distribution   Distribution    `json:"distribution"`
}
