package models

// Connection carries the per-deployment supplier credentials. It is passed
// explicitly into every service call; nothing here is held as ambient state.
type Connection struct {
	APIKey         string `json:"apiKey" binding:"required"`
	Endpoint       string `json:"endpoint,omitempty"`
	OctoEnv        string `json:"octoEnv,omitempty"`
	AcceptLanguage string `json:"acceptLanguage,omitempty"`
	ResellerID     string `json:"resellerId,omitempty"`
}

// Occupancy describes one requested traveler. Age is the only required
// attribute; unit restrictions are matched against it.
type Occupancy struct {
	Age int `json:"age"`
}

// UnitQuantity is a purchasable unit id with how many of it are requested.
type UnitQuantity struct {
	UnitID   string `json:"unitId"`
	Quantity int    `json:"quantity"`
}

// Holder is the booking contact.
type Holder struct {
	Name         string   `json:"name"`
	Surname      string   `json:"surname"`
	FullName     string   `json:"fullName,omitempty"`
	EmailAddress string   `json:"emailAddress,omitempty"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	Country      string   `json:"country,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	Locales      []string `json:"locales,omitempty"`
}

// CredentialField describes one entry of the credential template exposed to
// the host platform so it can validate supplier credentials before saving.
type CredentialField struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	RegExp      string   `json:"regExp"`
	Description string   `json:"description"`
	Default     string   `json:"default,omitempty"`
	List        []string `json:"list,omitempty"`
}
