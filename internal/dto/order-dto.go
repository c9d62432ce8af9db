package dto

import (
	"elaundry/internal/entities"
	"elaundry/internal/orderform"
)

// CreateOrderDTO is the JSON body of POST /api/orders. Checks are done by
// the order form, so there are no validate tags here.
type CreateOrderDTO struct {
	Name        string            `json:"name" form:"name"`
	Phone       string            `json:"phone" form:"phone"`
	Address     string            `json:"address" form:"address"`
	BranchID    entities.BranchID `json:"branchId" form:"branchId"`
	ServiceType string            `json:"serviceType" form:"serviceType"`
	Date        string            `json:"date" form:"date"`
	Time        string            `json:"time" form:"time"`
	Notes       string            `json:"notes" form:"notes"`
}

// Fields returns the body keyed by form field name.
func (d CreateOrderDTO) Fields() map[string]string {
	return map[string]string{
		orderform.FieldName:        d.Name,
		orderform.FieldPhone:       d.Phone,
		orderform.FieldAddress:     d.Address,
		orderform.FieldBranchID:    d.BranchID.String(),
		orderform.FieldServiceType: d.ServiceType,
		orderform.FieldDate:        d.Date,
		orderform.FieldTime:        d.Time,
		orderform.FieldNotes:       d.Notes,
	}
}

type OrderResultDTO struct {
	orderform.Result
	Draft entities.OrderDraft `json:"draft"`
}
