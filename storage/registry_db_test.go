package storage

import (
	"testing"

	"landlord-cli/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddApartment("102", 3, 2, 2500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")
	reg.SubmitMaintenanceRequest("101", "Leaky faucet")
	reg.AssignMaintenanceStaff("101", "Dana")

	_, err := reg.LeaseApartment("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	require.True(t, reg.AddLeasePayment("101", 500, "2024-02-01"))
	return reg
}

func TestSaveAndLoadRegistry(t *testing.T) {
	db, err := OpenDBAt(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, SaveRegistry(db, seedRegistry(t)))

	loaded, err := LoadRegistry(db)
	require.NoError(t, err)

	require.Len(t, loaded.Apartments, 2)
	assert.Equal(t, "101", loaded.Apartments[0].UnitNumber)
	assert.False(t, loaded.Apartments[0].Available)
	assert.True(t, loaded.Apartments[1].Available)
	require.Len(t, loaded.Apartments[0].Requests, 1)
	assert.Equal(t, "Dana", loaded.Apartments[0].Requests[0].Staff)

	require.Len(t, loaded.Tenants, 1)
	assert.Equal(t, 1000.0, loaded.Tenants[0].BalanceDue)

	require.Len(t, loaded.Leases, 1)
	assert.Equal(t, "Alice", loaded.Leases[0].TenantName)
	require.Len(t, loaded.Leases[0].Payments, 1)
	assert.Equal(t, registry.Payment{Amount: 500, Date: "2024-02-01"}, loaded.Leases[0].Payments[0])

	// Reports still work against the reloaded state.
	assert.Contains(t, loaded.OccupancyReport(), "Occupancy Rate: 50.00%")
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	db, err := OpenDBAt(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, SaveRegistry(db, seedRegistry(t)))

	smaller := registry.New()
	smaller.AddApartment("201", 1, 1, 900)
	require.NoError(t, SaveRegistry(db, smaller))

	loaded, err := LoadRegistry(db)
	require.NoError(t, err)
	require.Len(t, loaded.Apartments, 1)
	assert.Equal(t, "201", loaded.Apartments[0].UnitNumber)
	assert.Empty(t, loaded.Tenants)
	assert.Empty(t, loaded.Leases)
}

func TestLoadFreshDatabase(t *testing.T) {
	db, err := OpenDBAt(":memory:")
	require.NoError(t, err)
	defer db.Close()

	loaded, err := LoadRegistry(db)
	require.NoError(t, err)
	assert.Empty(t, loaded.Apartments)
	assert.Empty(t, loaded.Tenants)
	assert.Empty(t, loaded.Leases)
}
