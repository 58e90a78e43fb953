package resolvers

import (
	"errors"
	"testing"

	"octobridge/services/octo"
)

func TestDisplayStatus(t *testing.T) {
	cases := []struct{ in, want string }{
		{"CONFIRMED", "Confirmed"},
		{"ON_HOLD", "On hold"},
		{"CANCELLED", "Cancelled"},
		{"EXPIRED", "Expired"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := displayStatus(tc.in); got != tc.want {
			t.Fatalf("displayStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTranslateBooking(t *testing.T) {
	got, err := TranslateBooking(octo.Booking{
		UUID:              "uuid-1",
		Status:            "CONFIRMED",
		UTCCreatedAt:      "2026-04-30T12:00:00Z",
		SupplierReference: "SUP-1",
		ResellerReference: "RSL-1",
		Cancellable:       true,
		Product:           &octo.Product{ID: "prod-1", InternalName: "city tour"},
		Option:            &octo.Option{ID: "DEFAULT", Title: "Morning", CancellationCutoff: "24 hours"},
		Availability: &octo.Availability{
			ID:                 "avail-1",
			LocalDateTimeStart: "2026-05-01T09:00:00+01:00",
			LocalDateTimeEnd:   "2026-05-01T11:00:00+01:00",
		},
		Contact: octo.Contact{FullName: "Ada King Lovelace", EmailAddress: "ada@example.com"},
		UnitItems: []octo.BookingUnitItem{
			{UUID: "item-1", UnitID: "adult", InternalName: "adult ticket"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	// No supplier id field, so the uuid becomes the booking id.
	if got.BookingID != "uuid-1" || got.ID != "uuid-1" {
		t.Fatalf("unexpected ids %+v", got)
	}
	if got.Status != "Confirmed" {
		t.Fatalf("unexpected status %q", got.Status)
	}
	if !got.Cancellable || !got.Editable {
		t.Fatal("cancellable bookings are editable")
	}
	if got.Holder.Name != "Ada" || got.Holder.Surname != "Lovelace" {
		t.Fatalf("holder split failed: %+v", got.Holder)
	}
	if got.CancelPolicy != "Cancel up to 24 hours before activity starts" {
		t.Fatalf("unexpected cancel policy %q", got.CancelPolicy)
	}
	if got.Start != "2026-05-01T09:00:00+01:00" {
		t.Fatalf("unexpected start %q", got.Start)
	}
	item := got.UnitItems[0]
	if item.UnitItemID != "item-1" || item.UnitID != "adult" || item.UnitName != "adult ticket" {
		t.Fatalf("unexpected unit item %+v", item)
	}
}

func TestTranslateBookingPrefersSupplierID(t *testing.T) {
	got, err := TranslateBooking(octo.Booking{ID: "id-1", UUID: "uuid-1", Status: "ON_HOLD"})
	if err != nil {
		t.Fatal(err)
	}
	if got.BookingID != "id-1" {
		t.Fatalf("expected id to win over uuid, got %q", got.BookingID)
	}
}

func TestTranslateBookingMissingID(t *testing.T) {
	var tErr *TranslationError
	_, err := TranslateBooking(octo.Booking{Status: "CONFIRMED"})
	if !errors.As(err, &tErr) {
		t.Fatalf("expected TranslationError, got %v", err)
	}
}
