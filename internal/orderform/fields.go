package orderform

import (
	"fmt"
	"strings"

	"elaundry/internal/entities"
	apperrors "elaundry/pkg/errors"
)

// Field names match the form input names and the JSON keys of OrderDraft.
const (
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldBranchID    = "branchId"
	FieldServiceType = "serviceType"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldNotes       = "notes"
)

var Fields = []string{
	FieldName, FieldPhone, FieldAddress, FieldBranchID,
	FieldServiceType, FieldDate, FieldTime, FieldNotes,
}

func setField(d *entities.OrderDraft, field, value string) error {
	switch field {
	case FieldName:
		d.Name = value
	case FieldPhone:
		d.Phone = value
	case FieldAddress:
		d.Address = value
	case FieldBranchID:
		d.BranchID = entities.BranchID(strings.TrimSpace(value))
	case FieldServiceType:
		d.ServiceType = entities.ServiceType(strings.TrimSpace(value))
	case FieldDate:
		d.Date = value
	case FieldTime:
		d.Time = value
	case FieldNotes:
		d.Notes = value
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownField, field)
	}
	return nil
}

func knownField(field string) bool {
	for _, f := range Fields {
		if f == field {
			return true
		}
	}
	return false
}

// submission is the trimmed draft as it is checked on submit.
type submission struct {
	Name        string `json:"name" validate:"not_blank"`
	Phone       string `json:"phone" validate:"not_blank"`
	Address     string `json:"address" validate:"not_blank"`
	BranchID    string `json:"branchId" validate:"not_blank"`
	ServiceType string `json:"serviceType" validate:"not_blank,service_type"`
	Date        string `json:"date" validate:"omitempty,calendar_date"`
	Time        string `json:"time" validate:"omitempty,clock_time"`
}

func submissionOf(d entities.OrderDraft) submission {
	return submission{
		Name:        strings.TrimSpace(d.Name),
		Phone:       strings.TrimSpace(d.Phone),
		Address:     strings.TrimSpace(d.Address),
		BranchID:    strings.TrimSpace(string(d.BranchID)),
		ServiceType: strings.TrimSpace(string(d.ServiceType)),
		Date:        strings.TrimSpace(d.Date),
		Time:        strings.TrimSpace(d.Time),
	}
}
