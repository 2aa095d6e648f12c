package storefront

import "math"

type Product struct {
	UID          string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceInCents int64    `json:"price"`
	Image        string   `json:"image"`
	Tags         []string `json:"tags"`
}

// CartLine keeps the name, price and image as they were when the product was added
type CartLine struct {
	ProductUID   string `json:"id"`
	Name         string `json:"name"`
	PriceInCents int64  `json:"price"`
	Image        string `json:"image"`
	Quantity     int    `json:"qty"`
}

// TotalInCents saturates at math.MaxInt64 instead of wrapping
func (l CartLine) TotalInCents() int64 {
	if l.Quantity > 0 && l.PriceInCents > math.MaxInt64/int64(l.Quantity) {
		return math.MaxInt64
	}
	return l.PriceInCents * int64(l.Quantity)
}

type Identity struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

type BillingInfo struct {
	NameOnCard string `json:"nameOnCard"`
	CardNumber string `json:"cardNumber"`
	Exp        string `json:"exp"`
	CVC        string `json:"cvc"`
}

type Receipt struct {
	UID             string       `json:"id"`
	AmountInCents   int64        `json:"amount"`
	FormattedAmount string       `json:"formattedAmount"`
	Email           string       `json:"email"`
	Shipping        ShippingInfo `json:"shipping"`
	BilledTo        string       `json:"billedTo"`
	Last4           string       `json:"last4"`
}

type Page string

const (
	PageBrowsing Page = "browsing"
	PageCheckout Page = "checkout"
)

// View is what the visitor currently looks at
type View struct {
	Page     Page `json:"page"`
	CartOpen bool `json:"cartOpen"`
	AuthOpen bool `json:"authOpen"`
}

type Snapshot struct {
	VisitorUID     string     `json:"visitorUID"`
	Lines          []CartLine `json:"lines"`
	Count          int        `json:"count"`
	TotalInCents   int64      `json:"total"`
	FormattedTotal string     `json:"formattedTotal"`
	Identity       *Identity  `json:"identity,omitempty"`
	View           View       `json:"view"`
}
