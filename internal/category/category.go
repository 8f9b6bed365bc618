package category

// CategoryItem is one entry on the categories page: a pet type and how many
// listings of that type are still available.
type CategoryItem struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
