package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func newTestRegistry() *Registry {
	reg := New()
	reg.Clock = func() time.Time { return testToday }
	return reg
}

func TestLeaseApartment(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")

	lease, err := reg.LeaseApartment("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "Alice", lease.TenantName)
	assert.Equal(t, "101", lease.UnitNumber)

	apartment, _ := reg.FindApartment("101")
	assert.False(t, apartment.Available)

	tenant, _ := reg.FindTenant("Alice")
	assert.Equal(t, 1500.0, tenant.BalanceDue)

	assert.Len(t, reg.Leases, 1)
}

func TestLeaseApartmentErrors(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")

	_, err := reg.LeaseApartment("Bob", "101", "2024-01-01", "2024-12-31")
	assert.ErrorIs(t, err, ErrTenantNotFound)

	_, err = reg.LeaseApartment("Alice", "999", "2024-01-01", "2024-12-31")
	assert.ErrorIs(t, err, ErrApartmentNotFound)

	_, err = reg.LeaseApartment("Alice", "101", "not-a-date", "2024-12-31")
	assert.Error(t, err)
	assert.Empty(t, reg.Leases, "failed lease must not be recorded")

	_, err = reg.LeaseApartment("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	reg.AddTenant("Bob", "555-0101", "bob@example.com")
	_, err = reg.LeaseApartment("Bob", "101", "2024-01-01", "2024-12-31")
	assert.ErrorIs(t, err, ErrApartmentUnavailable)
}

func TestLeaseParseFailureLeavesStateUntouched(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")

	_, err := reg.LeaseApartment("Alice", "101", "2024-01-01", "bad")
	assert.Error(t, err)

	apartment, _ := reg.FindApartment("101")
	assert.True(t, apartment.Available)
	tenant, _ := reg.FindTenant("Alice")
	assert.Equal(t, 0.0, tenant.BalanceDue)
}

func TestTerminateLeaseKeepsRecord(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")
	_, err := reg.LeaseApartment("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	message, ok := reg.TerminateLease("101")
	require.True(t, ok)
	assert.Equal(t, "Lease for 101 terminated.", message)

	apartment, _ := reg.FindApartment("101")
	assert.True(t, apartment.Available)
	assert.Len(t, reg.Leases, 1, "termination must not remove the record")

	assert.True(t, reg.RemoveLease("101"))
	assert.Empty(t, reg.Leases)
}

func TestTerminateLeaseNotFound(t *testing.T) {
	reg := newTestRegistry()
	_, ok := reg.TerminateLease("999")
	assert.False(t, ok)
}

func TestExtendLease(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")
	_, err := reg.LeaseApartment("Alice", "101", "2023-01-01", "2023-12-31")
	require.NoError(t, err)

	message, err := reg.ExtendLease("101", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "Lease for Unit 101 extended from 2023-12-31 to 2024-12-31.", message)

	lease := reg.Leases[0]
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), lease.EndDate)
}

func TestExtendLeaseAcceptsEarlierDate(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")
	_, err := reg.LeaseApartment("Alice", "101", "2023-01-01", "2024-12-31")
	require.NoError(t, err)

	_, err = reg.ExtendLease("101", "2023-06-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC), reg.Leases[0].EndDate)
}

func TestExtendLeaseSentinelAndError(t *testing.T) {
	reg := newTestRegistry()
	message, err := reg.ExtendLease("999", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "No active lease found for the specified unit.", message)

	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")
	_, err = reg.LeaseApartment("Alice", "101", "2023-01-01", "2023-12-31")
	require.NoError(t, err)

	_, err = reg.ExtendLease("101", "tomorrow")
	assert.Error(t, err)
}

func TestAddLeasePayment(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")
	_, err := reg.LeaseApartment("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	require.True(t, reg.AddLeasePayment("101", 500, "2024-02-01"))

	tenant, _ := reg.FindTenant("Alice")
	assert.Equal(t, 1000.0, tenant.BalanceDue)
	require.Len(t, reg.Leases[0].Payments, 1)
	assert.Equal(t, Payment{Amount: 500, Date: "2024-02-01"}, reg.Leases[0].Payments[0])

	assert.False(t, reg.AddLeasePayment("999", 500, "2024-02-01"))
}

func TestRecordTenantPaymentUsesClock(t *testing.T) {
	reg := newTestRegistry()
	reg.AddTenant("Alice", "555-0100", "alice@example.com")

	message, ok := reg.RecordTenantPayment("Alice", 200)
	require.True(t, ok)
	assert.Equal(t, "Payment of $200 made. Remaining balance: $-200", message)

	tenant, _ := reg.FindTenant("Alice")
	require.Len(t, tenant.Payments, 1)
	assert.Equal(t, "2024-06-15", tenant.Payments[0].Date)

	_, ok = reg.RecordTenantPayment("Bob", 200)
	assert.False(t, ok)
}

func TestDeleteApartmentOrphansLease(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")
	_, err := reg.LeaseApartment("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	assert.Equal(t, "Apartment Unit 101 deleted.", reg.DeleteApartment("101"))
	assert.Empty(t, reg.Apartments)

	// The lease record survives and still renders from its stored unit number.
	require.Len(t, reg.Leases, 1)
	assert.Contains(t, reg.Leases[0].String(), "in 101")

	assert.Equal(t, "Apartment not found.", reg.DeleteApartment("101"))
}

func TestDeleteTenantOrphansLease(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")
	_, err := reg.LeaseApartment("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	assert.Equal(t, "Tenant Alice deleted.", reg.DeleteTenant("Alice"))
	assert.Empty(t, reg.Tenants)
	require.Len(t, reg.Leases, 1)

	// Orphaned leases keep the stored name but drop contact and balance.
	summary := reg.LeaseSummary("101")
	assert.Contains(t, summary, "Tenant: Alice")
	assert.Contains(t, summary, "Outstanding Balance: $0")

	assert.Equal(t, "Tenant not found.", reg.DeleteTenant("Alice"))
}

func TestFirstMatchWinsOnDuplicates(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddApartment("101", 3, 2, 2500)

	apartment, ok := reg.FindApartment("101")
	require.True(t, ok)
	assert.Equal(t, 1500.0, apartment.Rent)
}

func TestSubmitMaintenanceRequestDefaultsToPending(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("101", 2, 1, 1500)

	require.True(t, reg.SubmitMaintenanceRequest("101", "Leaky faucet"))
	apartment, _ := reg.FindApartment("101")
	require.Len(t, apartment.Requests, 1)
	assert.Equal(t, "Pending", apartment.Requests[0].Status)

	assert.False(t, reg.SubmitMaintenanceRequest("999", "Leaky faucet"))
}

func TestListsPreserveInsertionOrder(t *testing.T) {
	reg := newTestRegistry()
	reg.AddApartment("201", 1, 1, 1000)
	reg.AddApartment("102", 2, 1, 1500)
	reg.AddTenant("Bob", "555-0101", "bob@example.com")
	reg.AddTenant("Alice", "555-0100", "alice@example.com")

	apartments := reg.ListApartments()
	require.Len(t, apartments, 2)
	assert.Contains(t, apartments[0], "Unit 201")
	assert.Contains(t, apartments[1], "Unit 102")

	tenants := reg.ListTenants()
	require.Len(t, tenants, 2)
	assert.Contains(t, tenants[0], "Bob")
	assert.Contains(t, tenants[1], "Alice")
}
