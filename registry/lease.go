package registry

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Lease references its tenant and apartment by identifier; the Registry
// resolves them. A lease left behind after its tenant or apartment is
// deleted keeps rendering from the stored identifiers.
type Lease struct {
	TenantName string    `json:"tenant_name"`
	UnitNumber string    `json:"unit_number"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Payments   []Payment `json:"payments,omitempty"`
}

func newLease(tenantName, unitNumber, start, end string) (*Lease, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	return &Lease{
		TenantName: tenantName,
		UnitNumber: unitNumber,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return parsed, nil
}

// RemainingDays counts whole days from today to the end date, never negative.
func (l *Lease) RemainingDays(today time.Time) int {
	day := dateOnly(today)
	if day.After(l.EndDate) {
		return 0
	}
	return int(l.EndDate.Sub(day).Hours() / 24)
}

func (l *Lease) Overdue(today time.Time) bool {
	return dateOnly(today).After(l.EndDate)
}

func (l *Lease) String() string {
	return fmt.Sprintf("Lease for %s in %s: %s to %s\nPayments:\n%s",
		l.TenantName, l.UnitNumber,
		l.StartDate.Format(dateLayout), l.EndDate.Format(dateLayout),
		strings.Join(paymentLines(l.Payments), "\n"))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
