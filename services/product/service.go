package product

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"octobridge/models"
	"octobridge/resolvers"
	"octobridge/services/octo"
	"octobridge/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ProductFilter is the closed list of filterable product fields. ProductID
// is an exact supplier lookup; ProductName is matched client-side with
// wildcard support.
type ProductFilter struct {
	ProductID   string `json:"productId,omitempty"`
	ProductName string `json:"productName,omitempty"`
}

// ProductService exposes the supplier catalogue to the host platform.
type ProductService interface {
	ValidateCredentials(ctx context.Context, conn models.Connection) (bool, error)
	SearchProducts(ctx context.Context, conn models.Connection, filter ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, conn models.Connection, productID string) (*models.Product, error)
	PickupPoints(ctx context.Context, conn models.Connection) ([]models.PickupPoint, error)
	BookingFields(ctx context.Context, conn models.Connection, productID string) (models.BookingFields, error)
}

// DefaultProductService implements ProductService. Cache is optional; a
// nil client disables caching and every call hits the supplier.
type DefaultProductService struct {
	Client   octo.API
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// cacheKey scopes cached catalogues per credential set so two deployments
// sharing one Redis never see each other's products.
func cacheKey(conn models.Connection) string {
	sum := sha256.Sum256([]byte(conn.APIKey + "|" + conn.Endpoint))
	return "octo:products:" + hex.EncodeToString(sum[:])
}

// listProducts fetches the full supplier catalogue, served from Redis when
// a fresh copy exists. Cache failures fall through to the supplier.
func (s *DefaultProductService) listProducts(ctx context.Context, conn models.Connection) ([]octo.Product, error) {
	key := cacheKey(conn)
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var products []octo.Product
			if err := json.Unmarshal([]byte(data), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.Client.GetProducts(ctx, conn)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(products); err == nil {
			if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil && s.Logger != nil {
				s.Logger.Debug("failed to cache product catalogue", zap.Error(err))
			}
		}
	}
	return products, nil
}

// ValidateCredentials checks the supplier accepts the connection's api key.
// A supplier error means invalid credentials, not a hard failure.
func (s *DefaultProductService) ValidateCredentials(ctx context.Context, conn models.Connection) (bool, error) {
	connectionID, err := s.Client.Whoami(ctx, conn)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Debug("credential validation failed", zap.Error(err))
		}
		return false, nil
	}
	return utils.IsUUID(connectionID), nil
}

// SearchProducts lists or fetches products, then applies the client-side
// name filter.
func (s *DefaultProductService) SearchProducts(ctx context.Context, conn models.Connection, filter ProductFilter) ([]models.Product, error) {
	var wire []octo.Product
	if filter.ProductID != "" {
		p, err := s.Client.GetProduct(ctx, conn, filter.ProductID)
		if err != nil {
			return nil, err
		}
		wire = []octo.Product{*p}
	} else {
		var err error
		wire, err = s.listProducts(ctx, conn)
		if err != nil {
			return nil, err
		}
	}

	products := make([]models.Product, 0, len(wire))
	for _, p := range wire {
		translated, err := resolvers.TranslateProduct(p)
		if err != nil {
			return nil, err
		}
		if filter.ProductName != "" && !utils.WildcardMatch(filter.ProductName, translated.ProductName) {
			continue
		}
		products = append(products, translated)
	}
	return products, nil
}

// GetProduct resolves one product, preferring the cached catalogue.
func (s *DefaultProductService) GetProduct(ctx context.Context, conn models.Connection, productID string) (*models.Product, error) {
	if s.Cache != nil {
		if products, err := s.listProducts(ctx, conn); err == nil {
			for _, p := range products {
				if p.ID == productID {
					translated, err := resolvers.TranslateProduct(p)
					if err != nil {
						return nil, err
					}
					return &translated, nil
				}
			}
		}
	}
	p, err := s.Client.GetProduct(ctx, conn, productID)
	if err != nil {
		return nil, err
	}
	translated, err := resolvers.TranslateProduct(*p)
	if err != nil {
		return nil, err
	}
	return &translated, nil
}

// PickupPoints collects every pickup location across the catalogue's
// options, deduplicated by id.
func (s *DefaultProductService) PickupPoints(ctx context.Context, conn models.Connection) ([]models.PickupPoint, error) {
	products, err := s.listProducts(ctx, conn)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var points []models.PickupPoint
	for _, p := range products {
		for _, o := range p.Options {
			for _, pickup := range o.PickupPoints {
				if seen[pickup.ID] {
					continue
				}
				seen[pickup.ID] = true
				points = append(points, resolvers.TranslatePickupPoint(pickup))
			}
		}
	}
	return points, nil
}

// BookingFields returns the extra form fields a product requires at
// booking time. The supplier advertises none today.
func (s *DefaultProductService) BookingFields(ctx context.Context, conn models.Connection, productID string) (models.BookingFields, error) {
	return models.BookingFields{
		Fields:       []models.CredentialField{},
		CustomFields: []models.CredentialField{},
	}, nil
}
