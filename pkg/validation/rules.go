package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var serviceTypes = map[string]struct{}{
	"wash":      {},
	"iron":      {},
	"wash_iron": {},
	"dry_clean": {},
}

// registerRules registers the tags used in struct tags across the app.
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("not_blank", isNotBlank); err != nil {
		return err
	}
	if err := v.RegisterValidation("service_type", isServiceType); err != nil {
		return err
	}
	if err := v.RegisterValidation("calendar_date", isCalendarDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("clock_time", isClockTime); err != nil {
		return err
	}
	return nil
}

// isNotBlank rejects strings that are empty after trimming.
func isNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Ptr:
		return !field.IsNil() && strings.TrimSpace(field.Elem().String()) != ""
	}
	return true
}

// isServiceType: wash, iron, wash_iron, dry_clean
func isServiceType(fl validator.FieldLevel) bool {
	_, ok := serviceTypes[fl.Field().String()]
	return ok
}

// isCalendarDate - YYYY-MM-DD, as sent by <input type="date">
func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// isClockTime - HH:MM, as sent by <input type="time">
func isClockTime(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}
