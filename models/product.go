package models

// Price is a supplier-quoted amount in the smallest currency unit. Prices
// are taken verbatim from the supplier and never recomputed here.
type Price struct {
	Original         int    `json:"original"`
	Retail           int    `json:"retail"`
	Net              int    `json:"net,omitempty"`
	Currency         string `json:"currency"`
	CurrencyPrecision int   `json:"currencyPrecision,omitempty"`
}

// Restrictions bounds who may purchase a unit. A nil bound is unbounded.
// PaxCount > 1 marks a group unit covering that many travelers at once.
type Restrictions struct {
	MinAge   *int `json:"minAge,omitempty"`
	MaxAge   *int `json:"maxAge,omitempty"`
	PaxCount *int `json:"paxCount,omitempty"`
}

// Unit is a purchasable rate class within an option. Read-only reference
// data fetched from the supplier.
type Unit struct {
	UnitID       string        `json:"unitId"`
	UnitName     string        `json:"unitName"`
	Subtitle     string        `json:"subtitle,omitempty"`
	Type         string        `json:"type,omitempty"`
	Pricing      []Price       `json:"pricing,omitempty"`
	Restrictions *Restrictions `json:"restrictions,omitempty"`
}

// Option is a sellable variant of a product.
type Option struct {
	OptionID   string `json:"optionId"`
	OptionName string `json:"optionName"`
	Units      []Unit `json:"units"`
}

// Product is the platform view of one supplier product.
type Product struct {
	ProductID           string   `json:"productId"`
	ProductName         string   `json:"productName"`
	AvailableCurrencies []string `json:"availableCurrencies,omitempty"`
	DefaultCurrency     string   `json:"defaultCurrency,omitempty"`
	SettlementMethods   []string `json:"settlementMethods,omitempty"`
	Options             []Option `json:"options"`
}

// BookingFields lists the extra form fields a product requires at booking
// time. The supplier currently advertises none; the shape is kept so the
// host contract stays stable.
type BookingFields struct {
	Fields       []CredentialField `json:"fields"`
	CustomFields []CredentialField `json:"customFields"`
}
