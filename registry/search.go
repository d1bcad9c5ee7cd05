package registry

// SearchFilter leaves a criterion unset when its pointer is nil. Occupied
// units are excluded unless IncludeOccupied is set.
type SearchFilter struct {
	MinRent      *float64
	MaxRent      *float64
	Bedrooms     *int
	Bathrooms    *int
	MinBedrooms  *int
	MaxBedrooms  *int
	MinBathrooms *int
	MaxBathrooms *int

	IncludeOccupied bool
}

func (f SearchFilter) matches(apartment *Apartment) bool {
	if f.MinRent != nil && apartment.Rent < *f.MinRent {
		return false
	}
	if f.MaxRent != nil && apartment.Rent > *f.MaxRent {
		return false
	}
	if f.Bedrooms != nil && apartment.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && apartment.Bathrooms != *f.Bathrooms {
		return false
	}
	if f.MinBedrooms != nil && apartment.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.MaxBedrooms != nil && apartment.Bedrooms > *f.MaxBedrooms {
		return false
	}
	if f.MinBathrooms != nil && apartment.Bathrooms < *f.MinBathrooms {
		return false
	}
	if f.MaxBathrooms != nil && apartment.Bathrooms > *f.MaxBathrooms {
		return false
	}
	return true
}

// SearchApartments returns rendered matches, or a single sentinel line when
// nothing matches.
func (r *Registry) SearchApartments(filter SearchFilter) []string {
	results := []string{}
	for _, apartment := range r.Apartments {
		if !filter.IncludeOccupied && !apartment.Available {
			continue
		}
		if !filter.matches(apartment) {
			continue
		}
		results = append(results, apartment.String())
	}
	if len(results) == 0 {
		return []string{"No apartments match the search criteria."}
	}
	return results
}

// TenantsWithBalanceAbove filters on a strictly-greater-than threshold and
// returns a single sentinel line when nothing matches.
func (r *Registry) TenantsWithBalanceAbove(threshold float64) []string {
	results := []string{}
	for _, tenant := range r.Tenants {
		if tenant.BalanceDue > threshold {
			results = append(results, tenant.String())
		}
	}
	if len(results) == 0 {
		return []string{"No tenants with balance above the specified threshold."}
	}
	return results
}
