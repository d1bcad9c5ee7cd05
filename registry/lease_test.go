package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeaseParsesDates(t *testing.T) {
	lease, err := newLease("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), lease.StartDate)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), lease.EndDate)
}

func TestNewLeaseRejectsMalformedDates(t *testing.T) {
	for _, tc := range []struct {
		name  string
		start string
		end   string
	}{
		{"bad start", "01/01/2024", "2024-12-31"},
		{"bad end", "2024-01-01", "December 31"},
		{"empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newLease("Alice", "101", tc.start, tc.end)
			assert.Error(t, err)
		})
	}
}

func TestRemainingDays(t *testing.T) {
	lease, err := newLease("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	assert.Equal(t, 30, lease.RemainingDays(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, lease.RemainingDays(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, lease.RemainingDays(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestRemainingDaysIgnoresTimeOfDay(t *testing.T) {
	lease, err := newLease("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	afternoon := time.Date(2024, 12, 30, 15, 45, 0, 0, time.UTC)
	assert.Equal(t, 1, lease.RemainingDays(afternoon))
}

func TestOverdue(t *testing.T) {
	lease, err := newLease("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	assert.False(t, lease.Overdue(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)))
	assert.True(t, lease.Overdue(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLeaseString(t *testing.T) {
	lease, err := newLease("Alice", "101", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	lease.Payments = append(lease.Payments, Payment{Amount: 1500, Date: "2024-02-01"})

	assert.Equal(t, "Lease for Alice in 101: 2024-01-01 to 2024-12-31\nPayments:\n$1500 on 2024-02-01", lease.String())
}
