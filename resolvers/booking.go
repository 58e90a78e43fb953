package resolvers

import (
	"fmt"
	"strings"

	"octobridge/models"
	"octobridge/services/octo"
)

// displayStatus capitalizes the supplier status vocabulary for display,
// with underscores turned into spaces ("ON_HOLD" -> "On hold").
func displayStatus(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func splitHolder(contact octo.Contact) models.Holder {
	first, last := "", ""
	if parts := strings.Fields(contact.FullName); len(parts) > 0 {
		first = parts[0]
		last = parts[len(parts)-1]
	}
	return models.Holder{
		Name:         first,
		Surname:      last,
		FullName:     contact.FullName,
		EmailAddress: contact.EmailAddress,
		PhoneNumber:  contact.PhoneNumber,
		Country:      contact.Country,
		PostalCode:   contact.PostalCode,
		Locales:      contact.Locales,
	}
}

// TranslateBooking maps one supplier booking into the platform shape.
func TranslateBooking(b octo.Booking) (models.Booking, error) {
	if b.ID == "" && b.UUID == "" {
		return models.Booking{}, &TranslationError{Entity: "booking", Reason: "missing id"}
	}

	id := b.ID
	if id == "" {
		id = b.UUID
	}

	out := models.Booking{
		ID:                id,
		BookingID:         id,
		OrderID:           b.OrderID,
		OrderReference:    b.OrderReference,
		SupplierBookingID: b.SupplierReference,
		ResellerReference: b.ResellerReference,
		Status:            displayStatus(b.Status),
		Cancellable:       b.Cancellable,
		Editable:          b.Cancellable,
		BookingDate:       b.UTCCreatedAt,
		Holder:            splitHolder(b.Contact),
		Notes:             b.Notes,
		PickupRequested:   b.PickupRequested,
		PickupPointID:     b.PickupPointID,
	}

	if b.Product != nil {
		out.ProductID = b.Product.ID
		out.ProductName = titleOrInternal(b.Product.Title, b.Product.InternalName)
	}
	if b.Option != nil {
		out.OptionID = b.Option.ID
		out.OptionName = titleOrInternal(b.Option.Title, b.Option.InternalName)
		if b.Option.CancellationCutoff != "" {
			out.CancelPolicy = fmt.Sprintf("Cancel up to %s before activity starts", b.Option.CancellationCutoff)
		}
	}
	if b.Availability != nil {
		out.Start = b.Availability.LocalDateTimeStart
		out.End = b.Availability.LocalDateTimeEnd
		out.AllDay = b.Availability.AllDay
	}
	if b.Pricing != nil {
		p := translatePricing(*b.Pricing)
		out.Price = &p
	}
	if b.PickupPoint != nil {
		p := TranslatePickupPoint(*b.PickupPoint)
		out.PickupPoint = &p
	}

	out.UnitItems = make([]models.UnitItem, 0, len(b.UnitItems))
	for _, item := range b.UnitItems {
		out.UnitItems = append(out.UnitItems, models.UnitItem{
			UnitItemID: item.UUID,
			UnitID:     item.UnitID,
			UnitName:   titleOrInternal(item.Title, item.InternalName),
		})
	}

	return out, nil
}
