package registry

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTenantNotFound       = errors.New("tenant not found")
	ErrApartmentNotFound    = errors.New("apartment not found")
	ErrApartmentUnavailable = errors.New("apartment not available")
)

// Registry owns the apartment, tenant, and lease collections. Insertion
// order is preserved and lookups return the first match. Clock supplies the
// current time for overdue checks and payment stamps; tests override it.
type Registry struct {
	Apartments []*Apartment
	Tenants    []*Tenant
	Leases     []*Lease

	Clock func() time.Time
}

func New() *Registry {
	return &Registry{Clock: time.Now}
}

func (r *Registry) now() time.Time {
	if r.Clock != nil {
		return r.Clock()
	}
	return time.Now()
}

func (r *Registry) AddApartment(unitNumber string, bedrooms, bathrooms int, rent float64) *Apartment {
	apartment := NewApartment(unitNumber, bedrooms, bathrooms, rent)
	r.Apartments = append(r.Apartments, apartment)
	return apartment
}

func (r *Registry) AddTenant(name, phone, email string) *Tenant {
	tenant := NewTenant(name, phone, email)
	r.Tenants = append(r.Tenants, tenant)
	return tenant
}

func (r *Registry) FindApartment(unitNumber string) (*Apartment, bool) {
	for _, apartment := range r.Apartments {
		if apartment.UnitNumber == unitNumber {
			return apartment, true
		}
	}
	return nil, false
}

func (r *Registry) FindTenant(name string) (*Tenant, bool) {
	for _, tenant := range r.Tenants {
		if tenant.Name == name {
			return tenant, true
		}
	}
	return nil, false
}

func (r *Registry) leaseForUnit(unitNumber string) (*Lease, bool) {
	for _, lease := range r.Leases {
		if lease.UnitNumber == unitNumber {
			return lease, true
		}
	}
	return nil, false
}

// LeaseApartment creates a lease, marks the apartment occupied, and charges
// the tenant one month's rent. It is the only operation that reports a
// missing entity as an error rather than sentinel text.
func (r *Registry) LeaseApartment(tenantName, unitNumber, start, end string) (*Lease, error) {
	tenant, ok := r.FindTenant(tenantName)
	if !ok {
		return nil, ErrTenantNotFound
	}
	apartment, ok := r.FindApartment(unitNumber)
	if !ok {
		return nil, ErrApartmentNotFound
	}
	if !apartment.Available {
		return nil, ErrApartmentUnavailable
	}
	lease, err := newLease(tenantName, unitNumber, start, end)
	if err != nil {
		return nil, err
	}
	apartment.Available = false
	tenant.BalanceDue += apartment.Rent
	r.Leases = append(r.Leases, lease)
	return lease, nil
}

// TerminateLease frees the apartment but keeps the lease record; callers
// that want the record gone must follow up with RemoveLease.
func (r *Registry) TerminateLease(unitNumber string) (string, bool) {
	lease, ok := r.leaseForUnit(unitNumber)
	if !ok {
		return "", false
	}
	if apartment, ok := r.FindApartment(lease.UnitNumber); ok {
		apartment.Available = true
	}
	return fmt.Sprintf("Lease for %s terminated.", lease.UnitNumber), true
}

func (r *Registry) RemoveLease(unitNumber string) bool {
	for i, lease := range r.Leases {
		if lease.UnitNumber == unitNumber {
			r.Leases = append(r.Leases[:i], r.Leases[i+1:]...)
			return true
		}
	}
	return false
}

// ExtendLease replaces the end date without checking that it moves forward.
func (r *Registry) ExtendLease(unitNumber, newEnd string) (string, error) {
	lease, ok := r.leaseForUnit(unitNumber)
	if !ok {
		return "No active lease found for the specified unit.", nil
	}
	endDate, err := ParseDate(newEnd)
	if err != nil {
		return "", err
	}
	oldEnd := lease.EndDate
	lease.EndDate = endDate
	return fmt.Sprintf("Lease for Unit %s extended from %s to %s.",
		unitNumber, oldEnd.Format(dateLayout), lease.EndDate.Format(dateLayout)), nil
}

// AddLeasePayment records a payment against the unit's lease and credits the
// tenant's balance. The date string is stored as supplied.
func (r *Registry) AddLeasePayment(unitNumber string, amount float64, date string) bool {
	lease, ok := r.leaseForUnit(unitNumber)
	if !ok {
		return false
	}
	lease.Payments = append(lease.Payments, Payment{Amount: amount, Date: date})
	if tenant, ok := r.FindTenant(lease.TenantName); ok {
		tenant.BalanceDue -= amount
	}
	return true
}

func (r *Registry) RecordTenantPayment(name string, amount float64) (string, bool) {
	tenant, ok := r.FindTenant(name)
	if !ok {
		return "", false
	}
	return tenant.MakePayment(amount, r.now()), true
}

func (r *Registry) SubmitMaintenanceRequest(unitNumber, description string) bool {
	apartment, ok := r.FindApartment(unitNumber)
	if !ok {
		return false
	}
	apartment.AddMaintenanceRequest(MaintenanceRequest{Description: description, Status: "Pending"})
	return true
}

func (r *Registry) SetRequestStatus(unitNumber string, index int, status string) bool {
	apartment, ok := r.FindApartment(unitNumber)
	if !ok {
		return false
	}
	apartment.UpdateRequestStatus(index, status)
	return true
}

// DeleteApartment removes the apartment only; leases referencing the unit
// are left in place.
func (r *Registry) DeleteApartment(unitNumber string) string {
	for i, apartment := range r.Apartments {
		if apartment.UnitNumber == unitNumber {
			r.Apartments = append(r.Apartments[:i], r.Apartments[i+1:]...)
			return fmt.Sprintf("Apartment Unit %s deleted.", unitNumber)
		}
	}
	return "Apartment not found."
}

// DeleteTenant removes the tenant only; leases referencing the name are left
// in place.
func (r *Registry) DeleteTenant(name string) string {
	for i, tenant := range r.Tenants {
		if tenant.Name == name {
			r.Tenants = append(r.Tenants[:i], r.Tenants[i+1:]...)
			return fmt.Sprintf("Tenant %s deleted.", name)
		}
	}
	return "Tenant not found."
}

func (r *Registry) ListApartments() []string {
	lines := make([]string, 0, len(r.Apartments))
	for _, apartment := range r.Apartments {
		lines = append(lines, apartment.String())
	}
	return lines
}

func (r *Registry) ListTenants() []string {
	lines := make([]string, 0, len(r.Tenants))
	for _, tenant := range r.Tenants {
		lines = append(lines, tenant.String())
	}
	return lines
}

func (r *Registry) ListLeases() []string {
	lines := make([]string, 0, len(r.Leases))
	for _, lease := range r.Leases {
		lines = append(lines, lease.String())
	}
	return lines
}
