package storage

import (
	"path/filepath"
	"testing"

	"landlord-cli/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	reg := registry.New()
	reg.AddApartment("101", 2, 1, 1500)
	reg.AddTenant("Alice", "555-0100", "alice@example.com")
	_, err := reg.LeaseApartment("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	require.True(t, reg.AddLeasePayment("101", 500, "2024-02-01"))

	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, ExportRegistry(path, reg))

	loaded, err := ImportRegistry(path)
	require.NoError(t, err)

	require.Len(t, loaded.Apartments, 1)
	assert.False(t, loaded.Apartments[0].Available)
	require.Len(t, loaded.Tenants, 1)
	assert.Equal(t, 1000.0, loaded.Tenants[0].BalanceDue)
	require.Len(t, loaded.Leases, 1)
	assert.Equal(t, "Lease for Alice in 101: 2024-01-01 to 2024-12-31\nPayments:\n$500 on 2024-02-01",
		loaded.Leases[0].String())
}

func TestImportMissingFile(t *testing.T) {
	_, err := ImportRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestImportDirectory(t *testing.T) {
	_, err := ImportRegistry(t.TempDir())
	assert.Error(t, err)
}
