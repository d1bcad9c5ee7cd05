package registry

import (
	"fmt"
	"strconv"
)

type Apartment struct {
	UnitNumber string               `json:"unit_number"`
	Bedrooms   int                  `json:"bedrooms"`
	Bathrooms  int                  `json:"bathrooms"`
	Rent       float64              `json:"rent"`
	Available  bool                 `json:"available"`
	Requests   []MaintenanceRequest `json:"maintenance_requests,omitempty"`
}

type MaintenanceRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
	Staff       string `json:"staff,omitempty"`
}

func NewApartment(unitNumber string, bedrooms, bathrooms int, rent float64) *Apartment {
	return &Apartment{
		UnitNumber: unitNumber,
		Bedrooms:   bedrooms,
		Bathrooms:  bathrooms,
		Rent:       rent,
		Available:  true,
	}
}

func (a *Apartment) AddMaintenanceRequest(request MaintenanceRequest) {
	a.Requests = append(a.Requests, request)
}

// UpdateRequestStatus ignores an out-of-range index.
func (a *Apartment) UpdateRequestStatus(index int, status string) {
	if index < 0 || index >= len(a.Requests) {
		return
	}
	a.Requests[index].Status = status
}

func (a *Apartment) AnnualRent() float64 {
	return a.Rent * 12
}

func (a *Apartment) String() string {
	status := "Available"
	if !a.Available {
		status = "Occupied"
	}
	return fmt.Sprintf("Unit %s: %dBR/%dBA, $%s/month, Status: %s",
		a.UnitNumber, a.Bedrooms, a.Bathrooms, money(a.Rent), status)
}

func money(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
