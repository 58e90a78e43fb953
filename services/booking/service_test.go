package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"octobridge/models"
	"octobridge/services/octo"
	"octobridge/services/token"
)

type fakeSupplier struct {
	octo.API

	mu       sync.Mutex
	created  []octo.CreateBookingRequest
	patched  []string
	confirms map[string]octo.ConfirmBookingRequest
	listed   []octo.BookingsQuery
	calls    int

	createResult  *octo.Booking
	createErr     error
	confirmErr    error
	getResult     *octo.Booking
	getErr        error
	listResults   map[string][]octo.Booking
	cancelled     []string
	cancelReasons []string
}

func (f *fakeSupplier) record() {
	f.calls++
}

func (f *fakeSupplier) CreateBooking(ctx context.Context, conn models.Connection, req octo.CreateBookingRequest) (*octo.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	f.created = append(f.created, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	return &octo.Booking{UUID: "uuid-1", Status: "ON_HOLD", Cancellable: true}, nil
}

func (f *fakeSupplier) PatchBooking(ctx context.Context, conn models.Connection, bookingID string, req octo.CreateBookingRequest) (*octo.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	f.patched = append(f.patched, bookingID)
	return &octo.Booking{UUID: bookingID, Status: "ON_HOLD"}, nil
}

func (f *fakeSupplier) ConfirmBooking(ctx context.Context, conn models.Connection, bookingID string, req octo.ConfirmBookingRequest) (*octo.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.confirms == nil {
		f.confirms = make(map[string]octo.ConfirmBookingRequest)
	}
	f.confirms[bookingID] = req
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return &octo.Booking{
		UUID:              bookingID,
		Status:            "CONFIRMED",
		UTCConfirmedAt:    "2026-05-01T10:00:00Z",
		ResellerReference: req.ResellerReference,
		Cancellable:       true,
		Contact:           req.Contact,
	}, nil
}

func (f *fakeSupplier) CancelBooking(ctx context.Context, conn models.Connection, bookingID, reason string) (*octo.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	f.cancelled = append(f.cancelled, bookingID)
	f.cancelReasons = append(f.cancelReasons, reason)
	return &octo.Booking{UUID: bookingID, Status: "CANCELLED", Cancellable: false}, nil
}

func (f *fakeSupplier) GetBooking(ctx context.Context, conn models.Connection, bookingID string) (*octo.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getResult != nil {
		return f.getResult, nil
	}
	return nil, fmt.Errorf("not found")
}

func (f *fakeSupplier) ListBookings(ctx context.Context, conn models.Connection, q octo.BookingsQuery) ([]octo.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	f.listed = append(f.listed, q)
	key := q.ResellerReference + "|" + q.SupplierReference
	if bookings, ok := f.listResults[key]; ok {
		return bookings, nil
	}
	return nil, fmt.Errorf("not found")
}

func (f *fakeSupplier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testKey(t *testing.T, codec *token.Codec) string {
	t.Helper()
	key, err := codec.Mint(token.BookingIntent{
		ProductID:      "prod-1",
		OptionID:       "DEFAULT",
		AvailabilityID: "avail-1",
		Currency:       "EUR",
		UnitItems: []token.UnitItem{
			{UnitID: "adult"},
			{UnitID: "adult"},
			{UnitID: "child"},
		},
		SettlementMethods: []string{SettlementVoucher, SettlementDeferred},
	})
	if err != nil {
		t.Fatal(err)
	}
	return key
}

func newBookingService(fake *fakeSupplier) (*DefaultBookingService, *token.Codec) {
	codec := token.NewCodec("test-secret", time.Hour)
	return &DefaultBookingService{Client: fake, Codec: codec}, codec
}

func validHolder() models.Holder {
	return models.Holder{
		Name:         "Ada",
		Surname:      "Lovelace",
		EmailAddress: "ada@example.com",
		Country:      "GB",
	}
}

func TestCreateRunsTwoPhases(t *testing.T) {
	fake := &fakeSupplier{}
	svc, codec := newBookingService(fake)

	booking, err := svc.Create(context.Background(), models.Connection{APIKey: "k"}, CreateRequest{
		AvailabilityKey: testKey(t, codec),
		Holder:          validHolder(),
		Reference:       "RSL-42",
		Notes:           "window seat",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(fake.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(fake.created))
	}
	created := fake.created[0]
	if created.ProductID != "prod-1" || created.AvailabilityID != "avail-1" {
		t.Fatalf("create request does not match token intent: %+v", created)
	}
	if len(created.UnitItems) != 3 {
		t.Fatalf("expected 3 unit items, got %d", len(created.UnitItems))
	}
	// VOUCHER is advertised and a reseller reference was given.
	if created.SettlementMethod != SettlementVoucher {
		t.Fatalf("expected settlement %s, got %s", SettlementVoucher, created.SettlementMethod)
	}

	confirm, ok := fake.confirms["uuid-1"]
	if !ok {
		t.Fatal("expected the draft to be confirmed")
	}
	if confirm.Contact.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected confirm contact %+v", confirm.Contact)
	}
	if confirm.ResellerReference != "RSL-42" {
		t.Fatalf("unexpected confirm reference %q", confirm.ResellerReference)
	}

	if booking.Status != "Confirmed" {
		t.Fatalf("expected display status Confirmed, got %q", booking.Status)
	}
	if !booking.Cancellable {
		t.Fatal("expected cancellable booking")
	}
}

func TestCreateForwardsCustomFieldValues(t *testing.T) {
	fake := &fakeSupplier{}
	svc, codec := newBookingService(fake)

	_, err := svc.Create(context.Background(), models.Connection{APIKey: "k"}, CreateRequest{
		AvailabilityKey:   testKey(t, codec),
		Holder:            validHolder(),
		CustomFieldValues: map[string]string{"dietary": "vegetarian"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := fake.created[0].CustomFieldValues["dietary"]; got != "vegetarian" {
		t.Fatalf("custom field values not forwarded, got %v", fake.created[0].CustomFieldValues)
	}
}

func TestCreateSkipsConfirmWhenAlreadyConfirmed(t *testing.T) {
	fake := &fakeSupplier{createResult: &octo.Booking{
		UUID:           "uuid-2",
		Status:         "CONFIRMED",
		UTCConfirmedAt: "2026-05-01T10:00:00Z",
	}}
	svc, codec := newBookingService(fake)

	_, err := svc.Create(context.Background(), models.Connection{APIKey: "k"}, CreateRequest{
		AvailabilityKey: testKey(t, codec),
		Holder:          validHolder(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(fake.confirms) != 0 {
		t.Fatalf("confirm must be skipped, got %d confirm calls", len(fake.confirms))
	}
}

func TestCreatePartialSkipsConfirm(t *testing.T) {
	fake := &fakeSupplier{}
	svc, codec := newBookingService(fake)

	booking, err := svc.Create(context.Background(), models.Connection{APIKey: "k"}, CreateRequest{
		AvailabilityKey: testKey(t, codec),
		Holder:          validHolder(),
		Partial:         true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(fake.confirms) != 0 {
		t.Fatalf("partial orders must not confirm, got %d confirm calls", len(fake.confirms))
	}
	if booking.Status != "On hold" {
		t.Fatalf("expected status On hold, got %q", booking.Status)
	}
}

func TestCreateRebookingPatchesInstead(t *testing.T) {
	fake := &fakeSupplier{}
	svc, codec := newBookingService(fake)

	_, err := svc.Create(context.Background(), models.Connection{APIKey: "k"}, CreateRequest{
		AvailabilityKey: testKey(t, codec),
		RebookingID:     "uuid-old",
		Holder:          validHolder(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(fake.created) != 0 {
		t.Fatal("rebooking must not create a new booking")
	}
	if len(fake.patched) != 1 || fake.patched[0] != "uuid-old" {
		t.Fatalf("expected patch of uuid-old, got %v", fake.patched)
	}
}

func TestCreateValidationStopsBeforeNetwork(t *testing.T) {
	fake := &fakeSupplier{}
	svc, codec := newBookingService(fake)
	key := testKey(t, codec)

	cases := []struct {
		name string
		req  CreateRequest
	}{
		{"missing key", CreateRequest{Holder: validHolder()}},
		{"blank first name", CreateRequest{AvailabilityKey: key, Holder: models.Holder{Name: "  ", Surname: "Lovelace"}}},
		{"blank last name", CreateRequest{AvailabilityKey: key, Holder: models.Holder{Name: "Ada", Surname: ""}}},
		{"bad email", CreateRequest{AvailabilityKey: key, Holder: models.Holder{Name: "Ada", Surname: "Lovelace", EmailAddress: "nope"}}},
		{"bad country", CreateRequest{AvailabilityKey: key, Holder: models.Holder{Name: "Ada", Surname: "Lovelace", Country: "GBR"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var vErr *ValidationError
			_, err := svc.Create(context.Background(), models.Connection{APIKey: "k"}, tc.req)
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
	if fake.callCount() != 0 {
		t.Fatalf("expected zero supplier calls, got %d", fake.callCount())
	}
}

func TestCreateRejectsTamperedToken(t *testing.T) {
	fake := &fakeSupplier{}
	svc, codec := newBookingService(fake)
	key := testKey(t, codec)

	_, err := svc.Create(context.Background(), models.Connection{APIKey: "k"}, CreateRequest{
		AvailabilityKey: key[:len(key)-4] + "XXXX",
		Holder:          validHolder(),
	})
	if !errors.Is(err, token.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if fake.callCount() != 0 {
		t.Fatalf("a rejected token must not reach the supplier, got %d calls", fake.callCount())
	}
}

func TestCreateConfirmFailureLeavesDraft(t *testing.T) {
	fake := &fakeSupplier{confirmErr: &octo.APIError{Status: 500, Message: "confirm exploded"}}
	svc, codec := newBookingService(fake)

	_, err := svc.Create(context.Background(), models.Connection{APIKey: "k"}, CreateRequest{
		AvailabilityKey: testKey(t, codec),
		Holder:          validHolder(),
	})
	var apiErr *octo.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected the supplier error to propagate, got %v", err)
	}
	if len(fake.cancelled) != 0 {
		t.Fatal("the phase-1 draft must not be auto-cancelled")
	}
}

func TestCancel(t *testing.T) {
	fake := &fakeSupplier{}
	svc, _ := newBookingService(fake)

	booking, err := svc.Cancel(context.Background(), models.Connection{APIKey: "k"}, CancelRequest{
		BookingID: "uuid-3",
		Reason:    "customer request",
	})
	if err != nil {
		t.Fatal(err)
	}
	if fake.cancelled[0] != "uuid-3" || fake.cancelReasons[0] != "customer request" {
		t.Fatalf("unexpected cancel call: %v %v", fake.cancelled, fake.cancelReasons)
	}
	if booking.Status != "Cancelled" || booking.Cancellable {
		t.Fatalf("unexpected cancelled booking %+v", booking)
	}
}

func TestCancelRequiresID(t *testing.T) {
	svc, _ := newBookingService(&fakeSupplier{})
	var vErr *ValidationError
	_, err := svc.Cancel(context.Background(), models.Connection{APIKey: "k"}, CancelRequest{Reason: "whoops"})
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSearchByBookingIDTriesAllThreeKeys(t *testing.T) {
	fake := &fakeSupplier{
		getResult: &octo.Booking{UUID: "uuid-4", Status: "CONFIRMED"},
		listResults: map[string][]octo.Booking{
			"uuid-4|": {{UUID: "uuid-5", Status: "CONFIRMED"}},
			"|uuid-4": {{UUID: "uuid-6", Status: "CONFIRMED"}},
		},
	}
	svc, _ := newBookingService(fake)

	bookings, err := svc.Search(context.Background(), models.Connection{APIKey: "k"}, SearchRequest{BookingID: "uuid-4"})
	if err != nil {
		t.Fatal(err)
	}
	if len(bookings) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(bookings))
	}
	// Direct hit first, then reseller reference, then supplier reference.
	want := []string{"uuid-4", "uuid-5", "uuid-6"}
	for i, w := range want {
		if bookings[i].BookingID != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, bookings[i].BookingID)
		}
	}
}

func TestSearchLookupErrorsBecomeEmptyResults(t *testing.T) {
	fake := &fakeSupplier{getErr: fmt.Errorf("supplier timeout")}
	svc, _ := newBookingService(fake)

	bookings, err := svc.Search(context.Background(), models.Connection{APIKey: "k"}, SearchRequest{BookingID: "missing"})
	if err != nil {
		t.Fatal(err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected no bookings, got %d", len(bookings))
	}
}

func TestSearchByResellerReference(t *testing.T) {
	fake := &fakeSupplier{listResults: map[string][]octo.Booking{
		"RSL-7|": {{UUID: "uuid-7", Status: "CONFIRMED"}},
	}}
	svc, _ := newBookingService(fake)

	bookings, err := svc.Search(context.Background(), models.Connection{APIKey: "k"}, SearchRequest{ResellerReference: "RSL-7"})
	if err != nil {
		t.Fatal(err)
	}
	if len(bookings) != 1 || bookings[0].BookingID != "uuid-7" {
		t.Fatalf("unexpected result %+v", bookings)
	}
	if len(fake.listed) != 1 {
		t.Fatalf("expected exactly one list call, got %d", len(fake.listed))
	}
}

func TestSearchByTravelDates(t *testing.T) {
	fake := &fakeSupplier{listResults: map[string][]octo.Booking{
		"|": {{UUID: "uuid-8", Status: "CONFIRMED"}},
	}}
	svc, _ := newBookingService(fake)

	bookings, err := svc.Search(context.Background(), models.Connection{APIKey: "k"}, SearchRequest{
		TravelDateStart: "2026-05-01",
		TravelDateEnd:   "2026-05-31",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected one booking, got %d", len(bookings))
	}
	q := fake.listed[0]
	if q.LocalDateStart == "" || q.LocalDateEnd == "" {
		t.Fatalf("expected RFC3339 date bounds, got %+v", q)
	}
	if _, err := time.Parse(time.RFC3339, q.LocalDateStart); err != nil {
		t.Fatalf("localDateStart not RFC3339: %v", err)
	}
}

func TestSearchRequiresAKey(t *testing.T) {
	svc, _ := newBookingService(&fakeSupplier{})
	var vErr *ValidationError
	_, err := svc.Search(context.Background(), models.Connection{APIKey: "k"}, SearchRequest{})
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
