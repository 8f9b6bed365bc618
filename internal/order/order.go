package order

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	StatusPending = "PENDING"

	// DateLayout is the human readable order date, e.g. "Mar 5, 2025".
	DateLayout = "Jan 2, 2006"

	// DefaultCondition is recorded for cart lines that carry no condition.
	DefaultCondition = "Excellent"
)

// Order is the full order record visible to admins.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	Address       string          `json:"address"`
	District      string          `json:"district"`
	State         string          `json:"state"`
	Pincode       string          `json:"pincode"`
	PaymentMethod string          `json:"payment_method"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     string          `json:"created_at,omitempty"`
	Items         []Item          `json:"items,omitempty"`
}

// Item is one purchased pet, copied from the cart at checkout time.
type Item struct {
	ID           int             `json:"id,omitempty"`
	OrderID      string          `json:"order_id"`
	PetID        int             `json:"pet_id"`
	PetName      string          `json:"pet_name"`
	PetPrice     decimal.Decimal `json:"pet_price"`
	PetImage     string          `json:"pet_image"`
	PetCondition string          `json:"pet_condition"`
}

// PublicOrder is what anyone holding an order id may see. It never carries
// contact, address or payment fields.
type PublicOrder struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	Items        []PublicItem    `json:"items"`
}

type PublicItem struct {
	PetName  string          `json:"pet_name"`
	PetPrice decimal.Decimal `json:"pet_price"`
	PetImage string          `json:"pet_image"`
}

// NormalizeID accepts an order id as it arrives in a URL path: possibly
// percent-encoded ("%23ORD-1234") or without the leading "#" ("ORD-1234").
func NormalizeID(raw string) string {
	id := strings.TrimSpace(raw)
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}
	if !strings.HasPrefix(id, "#") && strings.HasPrefix(strings.ToUpper(id), "ORD-") {
		id = "#" + id
	}
	return id
}
