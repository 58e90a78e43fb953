package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"octobridge/models"
	"octobridge/resolvers"
	"octobridge/services/octo"
	"octobridge/services/token"

	"go.uber.org/zap"
)

const defaultConcurrency = 3

// SearchRequest is one availability query over a set of product/option
// tuples. Exactly one of Units or Occupancies must be supplied, indexed in
// parallel with ProductIDs/OptionIDs.
type SearchRequest struct {
	ProductIDs     []string                `json:"productIds"`
	OptionIDs      []string                `json:"optionIds"`
	Units          [][]models.UnitQuantity `json:"units,omitempty"`
	Occupancies    [][]models.Occupancy    `json:"occupancies,omitempty"`
	LocalDateStart string                  `json:"startDate"`
	LocalDateEnd   string                  `json:"endDate"`
	Currency       string                  `json:"currency,omitempty"`
}

// ProductSource resolves products so occupancies can be matched to units
// and settlement methods can ride along inside the minted token. Backed by
// the cached product service in production.
type ProductSource interface {
	GetProduct(ctx context.Context, conn models.Connection, productID string) (*models.Product, error)
}

// AvailabilityService retrieves priced, inventory-checked availability.
type AvailabilityService interface {
	Search(ctx context.Context, conn models.Connection, req SearchRequest) ([][]models.Availability, error)
	Calendar(ctx context.Context, conn models.Connection, req SearchRequest) ([][]models.Availability, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Client      octo.API
	Products    ProductSource
	Codec       *token.Codec
	Concurrency int
	Logger      *zap.Logger
}

func (s *DefaultAvailabilityService) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return defaultConcurrency
}

// validate rejects malformed requests before any HTTP call so a bad batch
// never causes partial supplier side effects. A missing signing secret is a
// deployment fault surfaced on every availability operation, calendar
// included, even though calendar responses carry no tokens.
func (s *DefaultAvailabilityService) validate(req SearchRequest) error {
	if err := s.Codec.Ready(); err != nil {
		return err
	}
	if len(req.ProductIDs) == 0 {
		return NewValidationError("at least one productId is required")
	}
	if len(req.ProductIDs) != len(req.OptionIDs) {
		return NewValidationError("mismatched productIds/optionIds length")
	}
	byUnits := len(req.Units) > 0
	byOccupancy := len(req.Occupancies) > 0
	if byUnits == byOccupancy {
		return NewValidationError("exactly one of units or occupancies must be supplied")
	}
	if byUnits && len(req.Units) != len(req.ProductIDs) {
		return NewValidationError("mismatched productIds/units length")
	}
	if byOccupancy {
		if len(req.Occupancies) != len(req.ProductIDs) {
			return NewValidationError("mismatched productIds/occupancies length")
		}
		for i, occ := range req.Occupancies {
			if len(occ) == 0 {
				return NewValidationError(fmt.Sprintf("no occupancies for product tuple %d", i))
			}
		}
	}
	for i, id := range req.ProductIDs {
		if id == "" {
			return NewValidationError(fmt.Sprintf("empty productId at index %d", i))
		}
	}
	for i, id := range req.OptionIDs {
		if id == "" {
			return NewValidationError(fmt.Sprintf("empty optionId at index %d", i))
		}
	}
	if _, err := time.Parse("2006-01-02", req.LocalDateStart); err != nil {
		return NewValidationError("startDate must be formatted YYYY-MM-DD")
	}
	if _, err := time.Parse("2006-01-02", req.LocalDateEnd); err != nil {
		return NewValidationError("endDate must be formatted YYYY-MM-DD")
	}
	return nil
}

// Search fans out one supplier availability query per tuple and mints a
// capability token for every available slot.
func (s *DefaultAvailabilityService) Search(ctx context.Context, conn models.Connection, req SearchRequest) ([][]models.Availability, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return s.fanOut(ctx, conn, req, true)
}

// Calendar returns aggregate availability per date bucket for browsing.
// No tokens are minted; the result is not directly bookable.
func (s *DefaultAvailabilityService) Calendar(ctx context.Context, conn models.Connection, req SearchRequest) ([][]models.Availability, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return s.fanOut(ctx, conn, req, false)
}

// fanOut issues one supplier call per tuple under a bounded semaphore.
// Results land in a slice indexed by tuple position, so output order always
// matches input order regardless of completion order.
func (s *DefaultAvailabilityService) fanOut(ctx context.Context, conn models.Connection, req SearchRequest, mintTokens bool) ([][]models.Availability, error) {
	n := len(req.ProductIDs)
	results := make([][]models.Availability, n)
	errs := make([]error, n)
	sem := make(chan struct{}, s.concurrency())
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(ix int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[ix], errs[ix] = s.searchOne(ctx, conn, req, ix, mintTokens)
		}(i)
	}
	wg.Wait()

	// One tuple failing fails the batch; the other calls have already run
	// to completion independently.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *DefaultAvailabilityService) searchOne(ctx context.Context, conn models.Connection, req SearchRequest, ix int, mintTokens bool) ([]models.Availability, error) {
	productID := req.ProductIDs[ix]
	optionID := req.OptionIDs[ix]

	unitQuantities, settlementMethods, err := s.resolveUnits(ctx, conn, req, ix)
	if err != nil {
		return nil, err
	}

	wireUnits := make([]octo.UnitQuantityRef, 0, len(unitQuantities))
	for _, uq := range unitQuantities {
		wireUnits = append(wireUnits, octo.UnitQuantityRef{ID: uq.UnitID, Quantity: uq.Quantity})
	}

	supReq := octo.AvailabilityRequest{
		ProductID:      productID,
		OptionID:       optionID,
		LocalDateStart: req.LocalDateStart,
		LocalDateEnd:   req.LocalDateEnd,
		Currency:       req.Currency,
		Units:          wireUnits,
	}

	var slots []octo.Availability
	if mintTokens {
		slots, err = s.Client.CheckAvailability(ctx, conn, supReq)
	} else {
		slots, err = s.Client.AvailabilityCalendar(ctx, conn, supReq)
	}
	if err != nil {
		return nil, err
	}

	out := make([]models.Availability, 0, len(slots))
	for _, slot := range slots {
		avail, err := resolvers.TranslateAvailability(slot)
		if err != nil {
			return nil, err
		}
		if mintTokens && avail.Available {
			key, err := s.Codec.Mint(token.BookingIntent{
				ProductID:         productID,
				OptionID:          optionID,
				AvailabilityID:    slot.ID,
				Currency:          req.Currency,
				UnitItems:         expandUnitItems(unitQuantities),
				SettlementMethods: settlementMethods,
			})
			if err != nil {
				return nil, err
			}
			avail.Key = key
		}
		out = append(out, avail)
	}
	return out, nil
}

// resolveUnits returns the unit composition for one tuple: either the
// caller-supplied quantities verbatim, or occupancies matched through the
// unit selector against the product's option units. Settlement methods
// ride along when the product is known.
func (s *DefaultAvailabilityService) resolveUnits(ctx context.Context, conn models.Connection, req SearchRequest, ix int) ([]models.UnitQuantity, []string, error) {
	productID := req.ProductIDs[ix]
	optionID := req.OptionIDs[ix]

	if len(req.Units) > 0 {
		// Unit-based variant: the product lookup is best-effort, only to
		// carry settlement methods into the token.
		var settlementMethods []string
		if s.Products != nil {
			if product, err := s.Products.GetProduct(ctx, conn, productID); err == nil {
				settlementMethods = product.SettlementMethods
			} else if s.Logger != nil {
				s.Logger.Debug("product lookup failed, minting without settlement methods",
					zap.String("productId", productID), zap.Error(err))
			}
		}
		return req.Units[ix], settlementMethods, nil
	}

	if s.Products == nil {
		return nil, nil, NewValidationError("occupancy-based search requires a product source")
	}
	product, err := s.Products.GetProduct(ctx, conn, productID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve product %s: %w", productID, err)
	}
	var option *models.Option
	for i := range product.Options {
		if product.Options[i].OptionID == optionID {
			option = &product.Options[i]
			break
		}
	}
	if option == nil {
		return nil, nil, NewValidationError(fmt.Sprintf("option %s not found on product %s", optionID, productID))
	}
	assigned, err := SelectUnits(option.Units, req.Occupancies[ix])
	if err != nil {
		return nil, nil, err
	}
	return assigned, product.SettlementMethods, nil
}

// expandUnitItems turns quantity breakdowns into one token unit item per
// physical traveler.
func expandUnitItems(quantities []models.UnitQuantity) []token.UnitItem {
	var items []token.UnitItem
	for _, uq := range quantities {
		for i := 0; i < uq.Quantity; i++ {
			items = append(items, token.UnitItem{UnitID: uq.UnitID})
		}
	}
	return items
}
