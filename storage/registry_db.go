package storage

import (
	"database/sql"
	"fmt"

	"landlord-cli/registry"

	_ "github.com/mattn/go-sqlite3"
)

func OpenDB() (*sql.DB, error) {
	if _, err := ensureConfigDir(); err != nil {
		return nil, err
	}
	path, err := DBPath()
	if err != nil {
		return nil, err
	}
	return OpenDBAt(path)
}

func OpenDBAt(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS apartments (
  position INTEGER PRIMARY KEY,
  unit_number TEXT,
  bedrooms INTEGER,
  bathrooms INTEGER,
  rent REAL,
  available INTEGER
);`,
		`CREATE TABLE IF NOT EXISTS maintenance_requests (
  apartment_position INTEGER,
  position INTEGER,
  description TEXT,
  status TEXT,
  staff TEXT
);`,
		`CREATE TABLE IF NOT EXISTS tenants (
  position INTEGER PRIMARY KEY,
  name TEXT,
  phone TEXT,
  email TEXT,
  balance_due REAL
);`,
		`CREATE TABLE IF NOT EXISTS tenant_payments (
  tenant_position INTEGER,
  position INTEGER,
  amount REAL,
  date TEXT
);`,
		`CREATE TABLE IF NOT EXISTS leases (
  position INTEGER PRIMARY KEY,
  tenant_name TEXT,
  unit_number TEXT,
  start_date TEXT,
  end_date TEXT
);`,
		`CREATE TABLE IF NOT EXISTS lease_payments (
  lease_position INTEGER,
  position INTEGER,
  amount REAL,
  date TEXT
);`,
	}
	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// SaveRegistry replaces the stored snapshot with the registry's current
// state. Position columns preserve insertion order across reloads.
func SaveRegistry(db *sql.DB, reg *registry.Registry) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	tables := []string{
		"apartments", "maintenance_requests",
		"tenants", "tenant_payments",
		"leases", "lease_payments",
	}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, apartment := range reg.Apartments {
		_, err := tx.Exec(
			"INSERT INTO apartments (position, unit_number, bedrooms, bathrooms, rent, available) VALUES (?, ?, ?, ?, ?, ?)",
			i, apartment.UnitNumber, apartment.Bedrooms, apartment.Bathrooms, apartment.Rent, apartment.Available,
		)
		if err != nil {
			return fmt.Errorf("save apartment %s: %w", apartment.UnitNumber, err)
		}
		for j, request := range apartment.Requests {
			_, err := tx.Exec(
				"INSERT INTO maintenance_requests (apartment_position, position, description, status, staff) VALUES (?, ?, ?, ?, ?)",
				i, j, request.Description, request.Status, request.Staff,
			)
			if err != nil {
				return fmt.Errorf("save maintenance request for %s: %w", apartment.UnitNumber, err)
			}
		}
	}

	for i, tenant := range reg.Tenants {
		_, err := tx.Exec(
			"INSERT INTO tenants (position, name, phone, email, balance_due) VALUES (?, ?, ?, ?, ?)",
			i, tenant.Name, tenant.Phone, tenant.Email, tenant.BalanceDue,
		)
		if err != nil {
			return fmt.Errorf("save tenant %s: %w", tenant.Name, err)
		}
		for j, payment := range tenant.Payments {
			_, err := tx.Exec(
				"INSERT INTO tenant_payments (tenant_position, position, amount, date) VALUES (?, ?, ?, ?)",
				i, j, payment.Amount, payment.Date,
			)
			if err != nil {
				return fmt.Errorf("save payment for %s: %w", tenant.Name, err)
			}
		}
	}

	for i, lease := range reg.Leases {
		_, err := tx.Exec(
			"INSERT INTO leases (position, tenant_name, unit_number, start_date, end_date) VALUES (?, ?, ?, ?, ?)",
			i, lease.TenantName, lease.UnitNumber,
			lease.StartDate.Format("2006-01-02"), lease.EndDate.Format("2006-01-02"),
		)
		if err != nil {
			return fmt.Errorf("save lease for %s: %w", lease.UnitNumber, err)
		}
		for j, payment := range lease.Payments {
			_, err := tx.Exec(
				"INSERT INTO lease_payments (lease_position, position, amount, date) VALUES (?, ?, ?, ?)",
				i, j, payment.Amount, payment.Date,
			)
			if err != nil {
				return fmt.Errorf("save lease payment for %s: %w", lease.UnitNumber, err)
			}
		}
	}

	return tx.Commit()
}

// LoadRegistry rebuilds a registry from the stored snapshot. A fresh
// database yields an empty registry.
func LoadRegistry(db *sql.DB) (*registry.Registry, error) {
	reg := registry.New()

	rows, err := db.Query("SELECT position, unit_number, bedrooms, bathrooms, rent, available FROM apartments ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byPosition := map[int]*registry.Apartment{}
	for rows.Next() {
		var position int
		apartment := &registry.Apartment{}
		if err := rows.Scan(&position, &apartment.UnitNumber, &apartment.Bedrooms, &apartment.Bathrooms, &apartment.Rent, &apartment.Available); err != nil {
			return nil, err
		}
		byPosition[position] = apartment
		reg.Apartments = append(reg.Apartments, apartment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	requestRows, err := db.Query("SELECT apartment_position, description, status, staff FROM maintenance_requests ORDER BY apartment_position, position")
	if err != nil {
		return nil, err
	}
	defer requestRows.Close()
	for requestRows.Next() {
		var apartmentPosition int
		var request registry.MaintenanceRequest
		if err := requestRows.Scan(&apartmentPosition, &request.Description, &request.Status, &request.Staff); err != nil {
			return nil, err
		}
		if apartment, ok := byPosition[apartmentPosition]; ok {
			apartment.Requests = append(apartment.Requests, request)
		}
	}
	if err := requestRows.Err(); err != nil {
		return nil, err
	}

	tenantRows, err := db.Query("SELECT position, name, phone, email, balance_due FROM tenants ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer tenantRows.Close()
	tenantByPosition := map[int]*registry.Tenant{}
	for tenantRows.Next() {
		var position int
		tenant := &registry.Tenant{}
		if err := tenantRows.Scan(&position, &tenant.Name, &tenant.Phone, &tenant.Email, &tenant.BalanceDue); err != nil {
			return nil, err
		}
		tenantByPosition[position] = tenant
		reg.Tenants = append(reg.Tenants, tenant)
	}
	if err := tenantRows.Err(); err != nil {
		return nil, err
	}

	tenantPaymentRows, err := db.Query("SELECT tenant_position, amount, date FROM tenant_payments ORDER BY tenant_position, position")
	if err != nil {
		return nil, err
	}
	defer tenantPaymentRows.Close()
	for tenantPaymentRows.Next() {
		var tenantPosition int
		var payment registry.Payment
		if err := tenantPaymentRows.Scan(&tenantPosition, &payment.Amount, &payment.Date); err != nil {
			return nil, err
		}
		if tenant, ok := tenantByPosition[tenantPosition]; ok {
			tenant.Payments = append(tenant.Payments, payment)
		}
	}
	if err := tenantPaymentRows.Err(); err != nil {
		return nil, err
	}

	leaseRows, err := db.Query("SELECT position, tenant_name, unit_number, start_date, end_date FROM leases ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer leaseRows.Close()
	leaseByPosition := map[int]*registry.Lease{}
	for leaseRows.Next() {
		var position int
		var tenantName, unitNumber, start, end string
		if err := leaseRows.Scan(&position, &tenantName, &unitNumber, &start, &end); err != nil {
			return nil, err
		}
		startDate, err := registry.ParseDate(start)
		if err != nil {
			return nil, fmt.Errorf("load lease for %s: %w", unitNumber, err)
		}
		endDate, err := registry.ParseDate(end)
		if err != nil {
			return nil, fmt.Errorf("load lease for %s: %w", unitNumber, err)
		}
		lease := &registry.Lease{
			TenantName: tenantName,
			UnitNumber: unitNumber,
			StartDate:  startDate,
			EndDate:    endDate,
		}
		leaseByPosition[position] = lease
		reg.Leases = append(reg.Leases, lease)
	}
	if err := leaseRows.Err(); err != nil {
		return nil, err
	}

	leasePaymentRows, err := db.Query("SELECT lease_position, amount, date FROM lease_payments ORDER BY lease_position, position")
	if err != nil {
		return nil, err
	}
	defer leasePaymentRows.Close()
	for leasePaymentRows.Next() {
		var leasePosition int
		var payment registry.Payment
		if err := leasePaymentRows.Scan(&leasePosition, &payment.Amount, &payment.Date); err != nil {
			return nil, err
		}
		if lease, ok := leaseByPosition[leasePosition]; ok {
			lease.Payments = append(lease.Payments, payment)
		}
	}
	if err := leasePaymentRows.Err(); err != nil {
		return nil, err
	}

	return reg, nil
}
