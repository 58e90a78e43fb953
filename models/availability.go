package models

// Offer is a promotional offer attached to an availability slot.
type Offer struct {
	OfferID     string `json:"offerId"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// PickupPoint is a physical pickup location attached to a product option
// or an availability slot.
type PickupPoint struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Directions    string  `json:"directions,omitempty"`
	Address       string  `json:"address,omitempty"`
	Postal        string  `json:"postal,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	LocalDateTime string  `json:"localDateTime,omitempty"`
}

// UnitPrice is the per-unit pricing breakdown of a slot.
type UnitPrice struct {
	UnitID  string  `json:"unitId"`
	Pricing []Price `json:"pricing,omitempty"`
}

// Availability is one bookable slot as returned to the host. Key holds the
// signed capability token for available slots; calendar lookups and
// sold-out slots carry no key.
type Availability struct {
	Key             string        `json:"key,omitempty"`
	DateTimeStart   string        `json:"dateTimeStart"`
	DateTimeEnd     string        `json:"dateTimeEnd"`
	AllDay          bool          `json:"allDay"`
	Vacancies       int           `json:"vacancies"`
	Available       bool          `json:"available"`
	Pricing         *Price        `json:"pricing,omitempty"`
	UnitPricing     []UnitPrice   `json:"unitPricing,omitempty"`
	Offers          []Offer       `json:"offers,omitempty"`
	PickupAvailable bool          `json:"pickupAvailable"`
	PickupRequired  bool          `json:"pickupRequired"`
	PickupPoints    []PickupPoint `json:"pickupPoints,omitempty"`
}
