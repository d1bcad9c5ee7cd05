package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"landlord-cli/registry"
)

// Snapshot is the JSON shape of an exported registry. Lease dates are kept
// as YYYY-MM-DD strings so exports stay hand-editable.
type Snapshot struct {
	Apartments []*registry.Apartment `json:"apartments"`
	Tenants    []*registry.Tenant    `json:"tenants"`
	Leases     []LeaseRecord         `json:"leases"`
}

type LeaseRecord struct {
	TenantName string             `json:"tenant_name"`
	UnitNumber string             `json:"unit_number"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	Payments   []registry.Payment `json:"payments,omitempty"`
}

func ExportRegistry(path string, reg *registry.Registry) error {
	leases := make([]LeaseRecord, 0, len(reg.Leases))
	for _, lease := range reg.Leases {
		leases = append(leases, LeaseRecord{
			TenantName: lease.TenantName,
			UnitNumber: lease.UnitNumber,
			StartDate:  lease.StartDate.Format("2006-01-02"),
			EndDate:    lease.EndDate.Format("2006-01-02"),
			Payments:   lease.Payments,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Snapshot{
		Apartments: reg.Apartments,
		Tenants:    reg.Tenants,
		Leases:     leases,
	})
}

func ImportRegistry(path string) (*registry.Registry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("import path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var snapshot Snapshot
	if err := json.NewDecoder(file).Decode(&snapshot); err != nil {
		return nil, err
	}

	reg := registry.New()
	reg.Apartments = snapshot.Apartments
	reg.Tenants = snapshot.Tenants
	for _, record := range snapshot.Leases {
		startDate, err := registry.ParseDate(record.StartDate)
		if err != nil {
			return nil, fmt.Errorf("import lease for %s: %w", record.UnitNumber, err)
		}
		endDate, err := registry.ParseDate(record.EndDate)
		if err != nil {
			return nil, fmt.Errorf("import lease for %s: %w", record.UnitNumber, err)
		}
		reg.Leases = append(reg.Leases, &registry.Lease{
			TenantName: record.TenantName,
			UnitNumber: record.UnitNumber,
			StartDate:  startDate,
			EndDate:    endDate,
			Payments:   record.Payments,
		})
	}
	return reg, nil
}
