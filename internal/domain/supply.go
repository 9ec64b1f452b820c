package domain

import "time"

type RequestStatus string

const (
	RequestStatusOpen   RequestStatus = "OPEN"
	RequestStatusClosed RequestStatus = "CLOSED"
)

type SupplyCategory string

const (
	CategoryEquipment          SupplyCategory = "EQUIPMENT"
	CategoryVehicleMaintenance SupplyCategory = "VEHICLE_MAINTENANCE"
	CategoryUniforms           SupplyCategory = "UNIFORMS"
	CategoryMedicalSupplies    SupplyCategory = "MEDICAL_SUPPLIES"
	CategoryServices           SupplyCategory = "SERVICES"
	CategoryOther              SupplyCategory = "OTHER"
)

func ValidCategory(c SupplyCategory) bool {
	switch c {
	case CategoryEquipment, CategoryVehicleMaintenance, CategoryUniforms,
		CategoryMedicalSupplies, CategoryServices, CategoryOther:
		return true
	}
	return false
}

// SupplyRequest is a procurement ask with a bidding window and an eventual
// single-supplier award. Once Closed (or once AssignedSupplierID is set) the
// request is immutable.
type SupplyRequest struct {
	ID                  int32          `json:"id"`
	Code                string         `json:"code"` // external business id
	OwnerID             int32          `json:"owner_id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Category            SupplyCategory `json:"category"`
	Quantity            int32          `json:"quantity"`
	Unit                string         `json:"unit"`
	Public              bool           `json:"public"`
	Status              RequestStatus  `json:"status"`
	ApplicationDeadline time.Time      `json:"application_deadline"`
	AssignedSupplierID  *int32         `json:"assigned_supplier_id,omitempty"`
	Bids                []Bid          `json:"bids"`
	CreatedOn           time.Time      `json:"created_on"`
	UpdatedOn           time.Time      `json:"updated_on"`
}

// Bid is a supplier's priced offer against an open request. At most one bid
// per supplier per request.
type Bid struct {
	ID          int32     `json:"id"`
	RequestID   int32     `json:"request_id"`
	SupplierID  int32     `json:"supplier_id"`
	OfferPrice  int64     `json:"offer_price"`
	Notes       string    `json:"notes"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// BidBy returns the supplier's bid on the request, or nil.
func (r *SupplyRequest) BidBy(supplierID int32) *Bid {
	for i := range r.Bids {
		if r.Bids[i].SupplierID == supplierID {
			return &r.Bids[i]
		}
	}
	return nil
}

// AwardedBid returns the winning bid of a closed, assigned request, or nil.
func (r *SupplyRequest) AwardedBid() *Bid {
	if r.AssignedSupplierID == nil {
		return nil
	}
	return r.BidBy(*r.AssignedSupplierID)
}
