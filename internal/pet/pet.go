package pet

// Pet is a catalog listing. JSON names match the storefront client.
type Pet struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Breed             string  `json:"breed"`
	Type              string  `json:"type"`
	Gender            string  `json:"gender"`
	Color             string  `json:"color"`
	DOB               string  `json:"dob"`
	Price             float64 `json:"price"`
	Description       string  `json:"description"`
	ImageURL          string  `json:"image_url"`
	HealthStatus      string  `json:"health_status"`
	VaccinationStatus string  `json:"vaccination_status"`
	BreederName       string  `json:"breeder_name"`
	BreederRating     float64 `json:"breeder_rating"`
	BreederReviews    int     `json:"breeder_reviews"`
	IsAvailable       int     `json:"is_available"`
}

// Filter narrows a catalog listing. Zero values mean "no constraint";
// Type and Gender also treat "All" that way.
type Filter struct {
	Type     string
	Gender   string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	IDs      []int
}

const matchAll = "All"

func (f Filter) typeSet() bool   { return f.Type != "" && f.Type != matchAll }
func (f Filter) genderSet() bool { return f.Gender != "" && f.Gender != matchAll }

// Patch carries the admin-editable fields. Nil fields are left unchanged.
type Patch struct {
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	IsAvailable *int     `json:"is_available" validate:"omitempty,oneof=0 1"`
}

func (p Patch) Empty() bool { return p.Price == nil && p.IsAvailable == nil }
