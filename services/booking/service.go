package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"octobridge/models"
	"octobridge/resolvers"
	"octobridge/services/octo"
	"octobridge/services/token"
	"octobridge/utils"

	"go.uber.org/zap"
)

// CreateRequest redeems a capability token into a supplier booking.
type CreateRequest struct {
	AvailabilityKey  string        `json:"availabilityKey"`
	RebookingID      string        `json:"rebookingId,omitempty"`
	Holder           models.Holder `json:"holder"`
	Notes            string        `json:"notes,omitempty"`
	Reference        string        `json:"reference,omitempty"`
	SettlementMethod string        `json:"settlementMethod,omitempty"`
	OrderID          string        `json:"orderId,omitempty"`
	PickupPoint      string        `json:"pickupPoint,omitempty"`
	// CustomFieldValues holds answers to product-specific booking questions,
	// forwarded to the supplier untouched.
	CustomFieldValues map[string]string `json:"customFieldValues,omitempty"`
	// Partial marks a multi-booking cart order whose confirmation is
	// deferred to a later step; phase 2 is skipped.
	Partial bool `json:"partial,omitempty"`
}

type CancelRequest struct {
	BookingID string `json:"bookingId,omitempty"`
	ID        string `json:"id,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// SearchRequest looks up bookings by any of its keys; at least one must be
// set.
type SearchRequest struct {
	BookingID         string `json:"bookingId,omitempty"`
	ResellerReference string `json:"resellerReference,omitempty"`
	SupplierBookingID string `json:"supplierBookingId,omitempty"`
	TravelDateStart   string `json:"travelDateStart,omitempty"`
	TravelDateEnd     string `json:"travelDateEnd,omitempty"`
}

// BookingService redeems capability tokens into supplier bookings and
// manages their lifecycle.
type BookingService interface {
	Create(ctx context.Context, conn models.Connection, req CreateRequest) (*models.Booking, error)
	Cancel(ctx context.Context, conn models.Connection, req CancelRequest) (*models.Booking, error)
	Search(ctx context.Context, conn models.Connection, req SearchRequest) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Client octo.API
	Codec  *token.Codec
	Logger *zap.Logger
}

func (s *DefaultBookingService) validateCreate(req CreateRequest) error {
	if req.AvailabilityKey == "" {
		return NewValidationError("an availability key is required")
	}
	if strings.TrimSpace(req.Holder.Name) == "" {
		return NewValidationError("holder first name is required")
	}
	if strings.TrimSpace(req.Holder.Surname) == "" {
		return NewValidationError("holder last name is required")
	}
	if req.Holder.EmailAddress != "" && !utils.IsValidEmail(req.Holder.EmailAddress) {
		return NewValidationError("holder email address is invalid")
	}
	if req.Holder.Country != "" && !utils.IsValidCountryCode(req.Holder.Country) {
		return NewValidationError("holder country must be a two-letter code")
	}
	return nil
}

// Create runs the two-phase create+confirm flow. Phase 1 posts (or, for a
// rebooking, patches) the redeemed intent; phase 2 confirms with holder
// contact and settlement, skipped when the supplier already reports a
// confirmation timestamp or the order is partial. A confirm failure
// propagates without rolling back the phase-1 draft: the caller decides
// whether to retry confirm or cancel the draft.
func (s *DefaultBookingService) Create(ctx context.Context, conn models.Connection, req CreateRequest) (*models.Booking, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	intent, err := s.Codec.Redeem(req.AvailabilityKey)
	if err != nil {
		return nil, err
	}

	settlementMethod := req.SettlementMethod
	if settlementMethod == "" {
		settlementMethod = ChooseSettlementMethod(intent.SettlementMethods, req.Reference)
	}

	unitItems := make([]octo.CreateUnitItem, 0, len(intent.UnitItems))
	for _, item := range intent.UnitItems {
		unitItems = append(unitItems, octo.CreateUnitItem{UnitID: item.UnitID})
	}

	createReq := octo.CreateBookingRequest{
		ProductID:         intent.ProductID,
		OptionID:          intent.OptionID,
		AvailabilityID:    intent.AvailabilityID,
		Currency:          intent.Currency,
		UnitItems:         unitItems,
		Notes:             req.Notes,
		SettlementMethod:  settlementMethod,
		OrderID:           req.OrderID,
		CustomFieldValues: req.CustomFieldValues,
	}
	if req.PickupPoint != "" {
		createReq.PickupRequested = true
		createReq.PickupPointID = req.PickupPoint
	}

	var created *octo.Booking
	if req.RebookingID != "" {
		created, err = s.Client.PatchBooking(ctx, conn, req.RebookingID, createReq)
	} else {
		created, err = s.Client.CreateBooking(ctx, conn, createReq)
	}
	if err != nil {
		return nil, err
	}

	final := created
	if created.UTCConfirmedAt == "" && !req.Partial {
		confirmID := created.UUID
		if confirmID == "" {
			confirmID = created.ID
		}
		confirmReq := octo.ConfirmBookingRequest{
			Contact: octo.Contact{
				FullName:     strings.TrimSpace(req.Holder.Name + " " + req.Holder.Surname),
				EmailAddress: req.Holder.EmailAddress,
				PhoneNumber:  req.Holder.PhoneNumber,
				Locales:      req.Holder.Locales,
				Country:      req.Holder.Country,
				PostalCode:   req.Holder.PostalCode,
			},
			Notes:             req.Notes,
			ResellerReference: req.Reference,
			SettlementMethod:  settlementMethod,
		}
		final, err = s.Client.ConfirmBooking(ctx, conn, confirmID, confirmReq)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("booking confirm failed, draft left on supplier side",
					zap.String("bookingId", confirmID), zap.Error(err))
			}
			return nil, err
		}
	}

	booking, err := resolvers.TranslateBooking(*final)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel voids a booking with the supplier.
func (s *DefaultBookingService) Cancel(ctx context.Context, conn models.Connection, req CancelRequest) (*models.Booking, error) {
	id := req.BookingID
	if id == "" {
		id = req.ID
	}
	if id == "" {
		return nil, NewValidationError("a booking id is required")
	}
	cancelled, err := s.Client.CancelBooking(ctx, conn, id, req.Reason)
	if err != nil {
		return nil, err
	}
	booking, err := resolvers.TranslateBooking(*cancelled)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Search looks bookings up by any supported key. Individual lookups that
// error are treated as empty results, since a lookup miss is expected,
// unlike a malformed request.
func (s *DefaultBookingService) Search(ctx context.Context, conn models.Connection, req SearchRequest) ([]models.Booking, error) {
	if req.BookingID == "" && req.ResellerReference == "" && req.SupplierBookingID == "" &&
		req.TravelDateStart == "" && req.TravelDateEnd == "" {
		return nil, NewValidationError("at least one search parameter is required")
	}

	var found []octo.Booking
	switch {
	case req.BookingID != "":
		found = s.searchByBookingID(ctx, conn, req.BookingID)
	case req.ResellerReference != "":
		found = s.listQuietly(ctx, conn, octo.BookingsQuery{ResellerReference: req.ResellerReference})
	case req.SupplierBookingID != "":
		found = s.listQuietly(ctx, conn, octo.BookingsQuery{SupplierReference: req.SupplierBookingID})
	default:
		q, err := travelDateQuery(req.TravelDateStart, req.TravelDateEnd)
		if err != nil {
			return nil, err
		}
		found = s.listQuietly(ctx, conn, q)
	}

	bookings := make([]models.Booking, 0, len(found))
	for _, b := range found {
		translated, err := resolvers.TranslateBooking(b)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, translated)
	}
	return bookings, nil
}

// searchByBookingID tries the id as a direct supplier id, as a reseller
// reference and as a supplier reference concurrently, concatenating every
// non-error result in that fixed order.
func (s *DefaultBookingService) searchByBookingID(ctx context.Context, conn models.Connection, id string) []octo.Booking {
	results := make([][]octo.Booking, 3)
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		if b, err := s.Client.GetBooking(ctx, conn, id); err == nil {
			results[0] = []octo.Booking{*b}
		}
	}()
	go func() {
		defer wg.Done()
		results[1] = s.listQuietly(ctx, conn, octo.BookingsQuery{ResellerReference: id})
	}()
	go func() {
		defer wg.Done()
		results[2] = s.listQuietly(ctx, conn, octo.BookingsQuery{SupplierReference: id})
	}()
	wg.Wait()

	var all []octo.Booking
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

func (s *DefaultBookingService) listQuietly(ctx context.Context, conn models.Connection, q octo.BookingsQuery) []octo.Booking {
	bookings, err := s.Client.ListBookings(ctx, conn, q)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Debug("booking lookup returned error, treating as no results", zap.Error(err))
		}
		return nil
	}
	return bookings
}

func travelDateQuery(start, end string) (octo.BookingsQuery, error) {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return octo.BookingsQuery{}, NewValidationError("travelDateStart must be formatted YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return octo.BookingsQuery{}, NewValidationError("travelDateEnd must be formatted YYYY-MM-DD")
	}
	return octo.BookingsQuery{
		LocalDateStart: from.Format(time.RFC3339),
		LocalDateEnd:   to.Format(time.RFC3339),
	}, nil
}
