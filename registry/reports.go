package registry

import (
	"fmt"
	"strings"
)

// OverduePayments lists tenants on overdue leases who still owe money. An
// empty slice means nothing is overdue.
func (r *Registry) OverduePayments() []string {
	today := r.now()
	overdue := []string{}
	for _, lease := range r.Leases {
		if !lease.Overdue(today) {
			continue
		}
		tenant, ok := r.FindTenant(lease.TenantName)
		if !ok {
			continue
		}
		if tenant.BalanceDue > 0 {
			overdue = append(overdue, fmt.Sprintf("%s owes $%s", tenant.Name, money(tenant.BalanceDue)))
		}
	}
	return overdue
}

func (r *Registry) TotalAnnualRent() float64 {
	total := 0.0
	for _, apartment := range r.Apartments {
		total += apartment.AnnualRent()
	}
	return total
}

func (r *Registry) LeaseSummary(unitNumber string) string {
	lease, ok := r.leaseForUnit(unitNumber)
	if !ok {
		return "No active lease found for the specified unit number."
	}
	tenant, ok := r.FindTenant(lease.TenantName)
	if !ok {
		tenant = &Tenant{Name: lease.TenantName}
	}
	apartment, ok := r.FindApartment(lease.UnitNumber)
	if !ok {
		apartment = &Apartment{UnitNumber: lease.UnitNumber}
	}
	return fmt.Sprintf("Lease Summary for Unit %s:\n"+
		"Tenant: %s\n"+
		"Contact: %s, %s\n"+
		"Apartment: %dBR/%dBA, $%s/month\n"+
		"Lease Period: %s to %s\n"+
		"Payments:\n%s\n"+
		"Outstanding Balance: $%s\n",
		unitNumber,
		tenant.Name,
		tenant.Phone, tenant.Email,
		apartment.Bedrooms, apartment.Bathrooms, money(apartment.Rent),
		lease.StartDate.Format(dateLayout), lease.EndDate.Format(dateLayout),
		strings.Join(paymentLines(lease.Payments), "\n"),
		money(tenant.BalanceDue))
}

func (r *Registry) MaintenanceRequests(unitNumber string) string {
	apartment, ok := r.FindApartment(unitNumber)
	if !ok {
		return "Apartment not found."
	}
	if len(apartment.Requests) == 0 {
		return fmt.Sprintf("No maintenance requests for Unit %s.", unitNumber)
	}
	lines := make([]string, 0, len(apartment.Requests))
	for _, request := range apartment.Requests {
		lines = append(lines, fmt.Sprintf("%s (Status: %s)", request.Description, request.Status))
	}
	return fmt.Sprintf("Maintenance Requests for Unit %s:\n%s", unitNumber, strings.Join(lines, "\n"))
}

// MonthlyReport mixes a period total (payments made in the given month)
// with a point-in-time total (every tenant's current balance).
func (r *Registry) MonthlyReport(year, month int) string {
	totalCollected := 0.0
	for _, lease := range r.Leases {
		for _, payment := range lease.Payments {
			paid, err := ParseDate(payment.Date)
			if err != nil {
				continue
			}
			if paid.Year() == year && int(paid.Month()) == month {
				totalCollected += payment.Amount
			}
		}
	}
	totalBalance := 0.0
	for _, tenant := range r.Tenants {
		totalBalance += tenant.BalanceDue
	}
	return fmt.Sprintf("Monthly Report for %d/%d\n"+
		"Total Rent Collected: $%s\n"+
		"Total Outstanding Balances: $%s",
		month, year, money(totalCollected), money(totalBalance))
}

func (r *Registry) OccupancyReport() string {
	total := len(r.Apartments)
	occupied := 0
	for _, apartment := range r.Apartments {
		if !apartment.Available {
			occupied++
		}
	}
	rate := 0.0
	if total > 0 {
		rate = float64(occupied) / float64(total) * 100
	}
	return fmt.Sprintf("Total Apartments: %d\n"+
		"Occupied Apartments: %d\n"+
		"Occupancy Rate: %.2f%%", total, occupied, rate)
}

func (r *Registry) TenantProfile(name string) string {
	tenant, ok := r.FindTenant(name)
	if !ok {
		return "Tenant not found."
	}
	leaseInfo := []string{}
	for _, lease := range r.Leases {
		if lease.TenantName == name {
			leaseInfo = append(leaseInfo, lease.String())
		}
	}
	return fmt.Sprintf("Profile for %s:\n"+
		"Contact: %s, %s\n"+
		"Balance Due: $%s\n"+
		"Leases:\n%s",
		name, tenant.Phone, tenant.Email, money(tenant.BalanceDue),
		strings.Join(leaseInfo, "\n"))
}

// AssignMaintenanceStaff assigns the staff member to every request still in
// Pending status for the unit.
func (r *Registry) AssignMaintenanceStaff(unitNumber, staffName string) string {
	apartment, ok := r.FindApartment(unitNumber)
	if !ok {
		return "Apartment not found."
	}
	if len(apartment.Requests) == 0 {
		return fmt.Sprintf("No pending maintenance requests for Unit %s.", unitNumber)
	}
	for i := range apartment.Requests {
		if apartment.Requests[i].Status == "Pending" {
			apartment.Requests[i].Staff = staffName
		}
	}
	return fmt.Sprintf("Staff %s assigned to pending requests for Unit %s.", staffName, unitNumber)
}

// ApplyLateFees adds the flat fee to every tenant currently owing money.
func (r *Registry) ApplyLateFees(lateFee float64) string {
	for _, tenant := range r.Tenants {
		if tenant.BalanceDue > 0 {
			tenant.BalanceDue += lateFee
		}
	}
	return fmt.Sprintf("Late fee of $%s applied to all tenants with outstanding balances.", money(lateFee))
}

func (r *Registry) TrackMaintenanceStatus() string {
	return r.maintenanceReport("Assigned", "None")
}

func (r *Registry) MaintenanceSummary() string {
	return r.maintenanceReport("Staff", "Unassigned")
}

// maintenanceReport backs both maintenance renderings; only the staff label
// and the unassigned placeholder differ.
func (r *Registry) maintenanceReport(staffLabel, unassigned string) string {
	lines := []string{}
	for _, apartment := range r.Apartments {
		for _, request := range apartment.Requests {
			staff := request.Staff
			if staff == "" {
				staff = unassigned
			}
			lines = append(lines, fmt.Sprintf("Unit %s: %s (Status: %s, %s: %s)",
				apartment.UnitNumber, request.Description, request.Status, staffLabel, staff))
		}
	}
	if len(lines) == 0 {
		return "No maintenance requests found."
	}
	return strings.Join(lines, "\n")
}

func (r *Registry) TrackOverdueLeases() string {
	today := r.now()
	overdue := []string{}
	for _, lease := range r.Leases {
		if lease.Overdue(today) {
			overdue = append(overdue, fmt.Sprintf("Lease for Unit %s (Tenant: %s) is overdue.",
				lease.UnitNumber, lease.TenantName))
		}
	}
	if len(overdue) == 0 {
		return "No overdue leases found."
	}
	return strings.Join(overdue, "\n")
}

func (r *Registry) OutstandingReport() string {
	report := []string{}
	for _, tenant := range r.Tenants {
		if tenant.BalanceDue > 0 {
			report = append(report, fmt.Sprintf("%s: $%s", tenant.Name, money(tenant.BalanceDue)))
		}
	}
	if len(report) == 0 {
		return "No outstanding balances found."
	}
	return strings.Join(report, "\n")
}

func (r *Registry) AverageRent() string {
	average := 0.0
	if len(r.Apartments) > 0 {
		total := 0.0
		for _, apartment := range r.Apartments {
			total += apartment.Rent
		}
		average = total / float64(len(r.Apartments))
	}
	return fmt.Sprintf("The average rent of all apartments is $%.2f.", average)
}

// RemainingLeaseDays reports whole days left on the unit's lease.
func (r *Registry) RemainingLeaseDays(unitNumber string) (int, bool) {
	lease, ok := r.leaseForUnit(unitNumber)
	if !ok {
		return 0, false
	}
	return lease.RemainingDays(r.now()), true
}
