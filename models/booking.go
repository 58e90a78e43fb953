package models

// UnitItem is one physical ticket or seat on a booking.
type UnitItem struct {
	UnitItemID string `json:"unitItemId"`
	UnitID     string `json:"unitId"`
	UnitName   string `json:"unitName,omitempty"`
}

// Booking is the platform view of a supplier reservation.
type Booking struct {
	ID                string       `json:"id"`
	BookingID         string       `json:"bookingId"`
	OrderID           string       `json:"orderId,omitempty"`
	OrderReference    string       `json:"orderReference,omitempty"`
	SupplierBookingID string       `json:"supplierBookingId"`
	ResellerReference string       `json:"resellerReference"`
	Status            string       `json:"status"`
	ProductID         string       `json:"productId"`
	ProductName       string       `json:"productName"`
	OptionID          string       `json:"optionId"`
	OptionName        string       `json:"optionName"`
	Cancellable       bool         `json:"cancellable"`
	Editable          bool         `json:"editable"`
	UnitItems         []UnitItem   `json:"unitItems"`
	Start             string       `json:"start,omitempty"`
	End               string       `json:"end,omitempty"`
	AllDay            bool         `json:"allDay"`
	BookingDate       string       `json:"bookingDate,omitempty"`
	Holder            Holder       `json:"holder"`
	Notes             string       `json:"notes"`
	Price             *Price       `json:"price,omitempty"`
	CancelPolicy      string       `json:"cancelPolicy"`
	PickupRequested   bool         `json:"pickupRequested"`
	PickupPointID     string       `json:"pickupPointId,omitempty"`
	PickupPoint       *PickupPoint `json:"pickupPoint,omitempty"`
}
