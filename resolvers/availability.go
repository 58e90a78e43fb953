package resolvers

import (
	"octobridge/models"
	"octobridge/services/octo"
)

// TranslatePickupPoint maps a supplier pickup location, renaming
// postal_code into the platform's postal field.
func TranslatePickupPoint(p octo.PickupPoint) models.PickupPoint {
	return models.PickupPoint{
		ID:            p.ID,
		Name:          p.Name,
		Directions:    p.Directions,
		Address:       p.Address,
		Postal:        p.PostalCode,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		LocalDateTime: p.LocalDateTime,
	}
}

// TranslateAvailability maps one supplier availability slot. The capability
// token is attached afterwards by the availability orchestrator; the
// translator itself never signs anything.
func TranslateAvailability(a octo.Availability) (models.Availability, error) {
	if a.ID == "" {
		return models.Availability{}, &TranslationError{Entity: "availability", Reason: "missing id"}
	}

	start := a.LocalDateTimeStart
	if start == "" {
		start = a.LocalDate
	}
	end := a.LocalDateTimeEnd
	if end == "" {
		end = a.LocalDate
	}

	pricing := a.PricingFrom
	if pricing == nil {
		pricing = a.Pricing
	}
	var price *models.Price
	if pricing != nil {
		p := translatePricing(*pricing)
		price = &p
	}

	unitPricing := a.UnitPricingFrom
	if len(unitPricing) == 0 {
		unitPricing = a.UnitPricing
	}
	unitPrices := make([]models.UnitPrice, 0, len(unitPricing))
	for _, up := range unitPricing {
		unitPrices = append(unitPrices, models.UnitPrice{
			UnitID: up.UnitID,
			Pricing: []models.Price{{
				Original:          up.Original,
				Retail:            up.Retail,
				Net:               up.Net,
				Currency:          up.Currency,
				CurrencyPrecision: up.CurrencyPrecision,
			}},
		})
	}

	offers := make([]models.Offer, 0, len(a.Offers))
	for _, o := range a.Offers {
		offers = append(offers, models.Offer{
			OfferID:     o.Code,
			Title:       o.Title,
			Description: o.Description,
		})
	}

	pickups := make([]models.PickupPoint, 0, len(a.PickupPoints))
	for _, p := range a.PickupPoints {
		pickups = append(pickups, TranslatePickupPoint(p))
	}

	return models.Availability{
		DateTimeStart:   start,
		DateTimeEnd:     end,
		AllDay:          a.AllDay,
		Vacancies:       a.Vacancies,
		Available:       a.Status != "SOLD_OUT" && a.Vacancies > 0,
		Pricing:         price,
		UnitPricing:     unitPrices,
		Offers:          offers,
		PickupAvailable: a.PickupAvailable,
		PickupRequired:  a.PickupRequired,
		PickupPoints:    pickups,
	}, nil
}
