package resolvers

import (
	"errors"
	"testing"

	"octobridge/services/octo"
)

func TestTranslateAvailability(t *testing.T) {
	got, err := TranslateAvailability(octo.Availability{
		ID:                 "avail-1",
		LocalDateTimeStart: "2026-05-01T09:00:00+01:00",
		LocalDateTimeEnd:   "2026-05-01T11:00:00+01:00",
		Status:             "AVAILABLE",
		Vacancies:          5,
		Pricing:            &octo.Pricing{Retail: 3000, Currency: "EUR"},
		PricingFrom:        &octo.Pricing{Retail: 2500, Currency: "EUR"},
		Offers:             []octo.Offer{{Code: "SUMMER10", Title: "Summer deal"}},
		PickupAvailable:    true,
		PickupPoints: []octo.PickupPoint{{
			ID:         "pp-1",
			Name:       "Main Square",
			PostalCode: "10115",
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Available {
		t.Fatal("expected slot to be available")
	}
	if got.DateTimeStart != "2026-05-01T09:00:00+01:00" {
		t.Fatalf("unexpected start %q", got.DateTimeStart)
	}
	// pricingFrom wins over pricing when both are present.
	if got.Pricing.Retail != 2500 {
		t.Fatalf("expected pricingFrom retail 2500, got %d", got.Pricing.Retail)
	}
	if got.Offers[0].OfferID != "SUMMER10" {
		t.Fatalf("offer code must become the offer id, got %q", got.Offers[0].OfferID)
	}
	if got.PickupPoints[0].Postal != "10115" {
		t.Fatalf("postal_code must map to postal, got %+v", got.PickupPoints[0])
	}
}

func TestTranslateAvailabilityDateFallback(t *testing.T) {
	got, err := TranslateAvailability(octo.Availability{
		ID:        "avail-2",
		LocalDate: "2026-05-02",
		Status:    "AVAILABLE",
		Vacancies: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.DateTimeStart != "2026-05-02" || got.DateTimeEnd != "2026-05-02" {
		t.Fatalf("date-only slots fall back to localDate, got %+v", got)
	}
}

func TestTranslateAvailabilityNotAvailable(t *testing.T) {
	cases := []struct {
		name string
		in   octo.Availability
	}{
		{"sold out", octo.Availability{ID: "a", LocalDate: "2026-05-01", Status: "SOLD_OUT", Vacancies: 5}},
		{"no vacancies", octo.Availability{ID: "a", LocalDate: "2026-05-01", Status: "AVAILABLE", Vacancies: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TranslateAvailability(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got.Available {
				t.Fatalf("expected unavailable slot: %+v", got)
			}
		})
	}
}

func TestTranslateAvailabilityMissingID(t *testing.T) {
	var tErr *TranslationError
	_, err := TranslateAvailability(octo.Availability{Status: "AVAILABLE"})
	if !errors.As(err, &tErr) {
		t.Fatalf("expected TranslationError, got %v", err)
	}
}
