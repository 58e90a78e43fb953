package octo

// Wire shapes of the supplier's REST API. Field names mirror the supplier
// JSON exactly; translation into platform shapes lives in resolvers.

type Pricing struct {
	Original          int    `json:"original"`
	Retail            int    `json:"retail"`
	Net               int    `json:"net,omitempty"`
	Currency          string `json:"currency,omitempty"`
	CurrencyPrecision int    `json:"currencyPrecision,omitempty"`
}

type UnitPricing struct {
	UnitID            string `json:"unitId"`
	Original          int    `json:"original"`
	Retail            int    `json:"retail"`
	Net               int    `json:"net,omitempty"`
	Currency          string `json:"currency,omitempty"`
	CurrencyPrecision int    `json:"currencyPrecision,omitempty"`
}

type Restrictions struct {
	MinAge   *int `json:"minAge,omitempty"`
	MaxAge   *int `json:"maxAge,omitempty"`
	PaxCount *int `json:"paxCount,omitempty"`
}

type Unit struct {
	ID           string        `json:"id"`
	InternalName string        `json:"internalName,omitempty"`
	Title        string        `json:"title,omitempty"`
	Subtitle     string        `json:"subtitle,omitempty"`
	Type         string        `json:"type,omitempty"`
	Pricing      []Pricing     `json:"pricing,omitempty"`
	PricingFrom  []Pricing     `json:"pricingFrom,omitempty"`
	Restrictions *Restrictions `json:"restrictions,omitempty"`
}

type PickupPoint struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Directions    string  `json:"directions,omitempty"`
	Address       string  `json:"address,omitempty"`
	PostalCode    string  `json:"postal_code,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	LocalDateTime string  `json:"localDateTime,omitempty"`
}

type Option struct {
	ID                 string        `json:"id"`
	InternalName       string        `json:"internalName,omitempty"`
	Title              string        `json:"title,omitempty"`
	CancellationCutoff string        `json:"cancellationCutoff,omitempty"`
	Units              []Unit        `json:"units,omitempty"`
	PickupPoints       []PickupPoint `json:"pickupPoints,omitempty"`
}

type Product struct {
	ID                  string   `json:"id"`
	InternalName        string   `json:"internalName,omitempty"`
	Title               string   `json:"title,omitempty"`
	AvailableCurrencies []string `json:"availableCurrencies,omitempty"`
	DefaultCurrency     string   `json:"defaultCurrency,omitempty"`
	SettlementMethods   []string `json:"settlementMethods,omitempty"`
	Options             []Option `json:"options,omitempty"`
}

type Offer struct {
	Code        string `json:"code"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type Availability struct {
	ID                 string        `json:"id"`
	LocalDate          string        `json:"localDate,omitempty"`
	LocalDateTimeStart string        `json:"localDateTimeStart,omitempty"`
	LocalDateTimeEnd   string        `json:"localDateTimeEnd,omitempty"`
	AllDay             bool          `json:"allDay"`
	Status             string        `json:"status,omitempty"`
	Vacancies          int           `json:"vacancies"`
	Pricing            *Pricing      `json:"pricing,omitempty"`
	PricingFrom        *Pricing      `json:"pricingFrom,omitempty"`
	UnitPricing        []UnitPricing `json:"unitPricing,omitempty"`
	UnitPricingFrom    []UnitPricing `json:"unitPricingFrom,omitempty"`
	Offers             []Offer       `json:"offers,omitempty"`
	PickupAvailable    bool          `json:"pickupAvailable"`
	PickupRequired     bool          `json:"pickupRequired"`
	PickupPoints       []PickupPoint `json:"pickupPoints,omitempty"`
}

type Contact struct {
	FullName     string   `json:"fullName,omitempty"`
	EmailAddress string   `json:"emailAddress,omitempty"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	Locales      []string `json:"locales,omitempty"`
	Country      string   `json:"country,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
}

type BookingUnitItem struct {
	UUID         string `json:"uuid,omitempty"`
	UnitID       string `json:"unitId"`
	Title        string `json:"title,omitempty"`
	InternalName string `json:"internalName,omitempty"`
}

type Booking struct {
	ID                string            `json:"id,omitempty"`
	UUID              string            `json:"uuid,omitempty"`
	Status            string            `json:"status,omitempty"`
	UTCCreatedAt      string            `json:"utcCreatedAt,omitempty"`
	UTCConfirmedAt    string            `json:"utcConfirmedAt,omitempty"`
	OrderID           string            `json:"orderId,omitempty"`
	OrderReference    string            `json:"orderReference,omitempty"`
	SupplierReference string            `json:"supplierReference,omitempty"`
	ResellerReference string            `json:"resellerReference,omitempty"`
	Cancellable       bool              `json:"cancellable"`
	Product           *Product          `json:"product,omitempty"`
	Option            *Option           `json:"option,omitempty"`
	Availability      *Availability     `json:"availability,omitempty"`
	Contact           Contact           `json:"contact,omitempty"`
	UnitItems         []BookingUnitItem `json:"unitItems,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	Pricing           *Pricing          `json:"pricing,omitempty"`
	PickupRequested   bool              `json:"pickupRequested"`
	PickupPointID     string            `json:"pickupPointId,omitempty"`
	PickupPoint       *PickupPoint      `json:"pickupPoint,omitempty"`
}

// Request bodies.

type UnitQuantityRef struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type AvailabilityRequest struct {
	ProductID      string            `json:"productId"`
	OptionID       string            `json:"optionId"`
	LocalDateStart string            `json:"localDateStart"`
	LocalDateEnd   string            `json:"localDateEnd"`
	Currency       string            `json:"currency,omitempty"`
	Units          []UnitQuantityRef `json:"units"`
}

type CreateUnitItem struct {
	UnitID string `json:"unitId"`
}

type CreateBookingRequest struct {
	ProductID         string            `json:"productId"`
	OptionID          string            `json:"optionId"`
	AvailabilityID    string            `json:"availabilityId"`
	Currency          string            `json:"currency,omitempty"`
	UnitItems         []CreateUnitItem  `json:"unitItems"`
	Notes             string            `json:"notes,omitempty"`
	SettlementMethod  string            `json:"settlementMethod,omitempty"`
	OrderID           string            `json:"orderId,omitempty"`
	PickupRequested   bool              `json:"pickupRequested,omitempty"`
	PickupPointID     string            `json:"pickupPointId,omitempty"`
	CustomFieldValues map[string]string `json:"customFieldValues,omitempty"`
}

type ConfirmBookingRequest struct {
	Contact           Contact `json:"contact"`
	Notes             string  `json:"notes,omitempty"`
	ResellerReference string  `json:"resellerReference,omitempty"`
	SettlementMethod  string  `json:"settlementMethod,omitempty"`
}

// BookingsQuery filters GET /bookings. Exactly one of the reference fields
// or the date range is set per call.
type BookingsQuery struct {
	ResellerReference string
	SupplierReference string
	LocalDateStart    string
	LocalDateEnd      string
}
