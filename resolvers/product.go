// Package resolvers translates supplier wire shapes into platform shapes.
// Every translator is a pure function over a fixed input struct; a shape
// the translator cannot handle surfaces as a TranslationError, distinct
// from a transport error.
package resolvers

import (
	"fmt"

	"octobridge/models"
	"octobridge/services/octo"
)

// TranslationError marks a supplier payload the translators could not map.
type TranslationError struct {
	Entity string
	Reason string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("cannot translate %s: %s", e.Entity, e.Reason)
}

// titleOrInternal is the supplier's display-name convention: title when
// translated content exists, internalName otherwise.
func titleOrInternal(title, internal string) string {
	if title != "" {
		return title
	}
	return internal
}

func translatePricing(p octo.Pricing) models.Price {
	return models.Price{
		Original:          p.Original,
		Retail:            p.Retail,
		Net:               p.Net,
		Currency:          p.Currency,
		CurrencyPrecision: p.CurrencyPrecision,
	}
}

func translateUnit(u octo.Unit) models.Unit {
	pricing := u.Pricing
	if len(pricing) == 0 {
		pricing = u.PricingFrom
	}
	prices := make([]models.Price, 0, len(pricing))
	for _, p := range pricing {
		prices = append(prices, translatePricing(p))
	}
	unit := models.Unit{
		UnitID:   u.ID,
		UnitName: titleOrInternal(u.Title, u.InternalName),
		Subtitle: u.Subtitle,
		Type:     u.Type,
		Pricing:  prices,
	}
	if u.Restrictions != nil {
		unit.Restrictions = &models.Restrictions{
			MinAge:   u.Restrictions.MinAge,
			MaxAge:   u.Restrictions.MaxAge,
			PaxCount: u.Restrictions.PaxCount,
		}
	}
	return unit
}

func translateOption(o octo.Option) models.Option {
	units := make([]models.Unit, 0, len(o.Units))
	for _, u := range o.Units {
		units = append(units, translateUnit(u))
	}
	return models.Option{
		OptionID:   o.ID,
		OptionName: titleOrInternal(o.Title, o.InternalName),
		Units:      units,
	}
}

// TranslateProduct maps one supplier product into the platform shape.
func TranslateProduct(p octo.Product) (models.Product, error) {
	if p.ID == "" {
		return models.Product{}, &TranslationError{Entity: "product", Reason: "missing id"}
	}
	options := make([]models.Option, 0, len(p.Options))
	for _, o := range p.Options {
		options = append(options, translateOption(o))
	}
	return models.Product{
		ProductID:           p.ID,
		ProductName:         titleOrInternal(p.Title, p.InternalName),
		AvailableCurrencies: p.AvailableCurrencies,
		DefaultCurrency:     p.DefaultCurrency,
		SettlementMethods:   p.SettlementMethods,
		Options:             options,
	}, nil
}
