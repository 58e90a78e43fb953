package availability

import "octobridge/models"

// admitsAge checks a unit's age bounds; an absent bound is unbounded.
func admitsAge(r *models.Restrictions, age int) bool {
	if r == nil {
		return true
	}
	if r.MinAge != nil && age < *r.MinAge {
		return false
	}
	if r.MaxAge != nil && age > *r.MaxAge {
		return false
	}
	return true
}

func isIndividual(u models.Unit) bool {
	return u.Restrictions == nil || u.Restrictions.PaxCount == nil || *u.Restrictions.PaxCount == 1
}

// SelectUnits assigns traveler occupancies to purchasable units for one
// product option. For multi-traveler requests it first looks for a single
// group unit whose paxCount equals the party size and whose age bounds
// admit every traveler; first match wins, price is not considered.
// Otherwise each occupancy gets the first individual unit admitting its
// age. An occupancy no unit admits fails the whole selection with a
// NoUnitError.
func SelectUnits(units []models.Unit, occupancies []models.Occupancy) ([]models.UnitQuantity, error) {
	if len(occupancies) == 0 {
		return nil, NewValidationError("at least one occupancy is required")
	}

	if len(occupancies) > 1 {
		for _, u := range units {
			r := u.Restrictions
			if r == nil || r.PaxCount == nil || *r.PaxCount != len(occupancies) {
				continue
			}
			all := true
			for _, occ := range occupancies {
				if !admitsAge(r, occ.Age) {
					all = false
					break
				}
			}
			if all {
				return []models.UnitQuantity{{UnitID: u.UnitID, Quantity: 1}}, nil
			}
		}
	}

	assigned := make([]models.UnitQuantity, 0, len(occupancies))
	for i, occ := range occupancies {
		found := false
		for _, u := range units {
			if !isIndividual(u) {
				continue
			}
			if admitsAge(u.Restrictions, occ.Age) {
				assigned = append(assigned, models.UnitQuantity{UnitID: u.UnitID, Quantity: 1})
				found = true
				break
			}
		}
		if !found {
			return nil, &NoUnitError{OccupancyIndex: i, Age: occ.Age}
		}
	}
	return assigned, nil
}
