package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApartmentAnnualRent(t *testing.T) {
	apartment := NewApartment("101", 2, 1, 1500)
	assert.Equal(t, 18000.0, apartment.AnnualRent())
}

func TestApartmentString(t *testing.T) {
	apartment := NewApartment("101", 2, 1, 1500)
	assert.Equal(t, "Unit 101: 2BR/1BA, $1500/month, Status: Available", apartment.String())

	apartment.Available = false
	assert.Equal(t, "Unit 101: 2BR/1BA, $1500/month, Status: Occupied", apartment.String())
}

func TestApartmentStringFractionalRent(t *testing.T) {
	apartment := NewApartment("7B", 1, 1, 1250.5)
	assert.Equal(t, "Unit 7B: 1BR/1BA, $1250.5/month, Status: Available", apartment.String())
}

func TestUpdateRequestStatus(t *testing.T) {
	apartment := NewApartment("101", 2, 1, 1500)
	apartment.AddMaintenanceRequest(MaintenanceRequest{Description: "Leaky faucet", Status: "Pending"})
	apartment.AddMaintenanceRequest(MaintenanceRequest{Description: "Broken window", Status: "Pending"})

	apartment.UpdateRequestStatus(1, "Resolved")
	assert.Equal(t, "Pending", apartment.Requests[0].Status)
	assert.Equal(t, "Resolved", apartment.Requests[1].Status)
}

func TestUpdateRequestStatusOutOfRange(t *testing.T) {
	apartment := NewApartment("101", 2, 1, 1500)
	apartment.AddMaintenanceRequest(MaintenanceRequest{Description: "Leaky faucet", Status: "Pending"})

	apartment.UpdateRequestStatus(-1, "Resolved")
	apartment.UpdateRequestStatus(1, "Resolved")
	assert.Equal(t, "Pending", apartment.Requests[0].Status)
}
