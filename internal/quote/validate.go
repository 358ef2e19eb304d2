package quote

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field names used by the step-1 form.
const (
	FieldCustomerName  = "customer_name"
	FieldCustomerPhone = "customer_phone"
	FieldCustomerEmail = "customer_email"
	FieldEventDate     = "event_date"
	FieldEventTime     = "event_time"
	FieldEventAddress  = "event_address"
	FieldEventType     = "event_type"
	FieldTableCount    = "table_count"
	FieldGuestCount    = "guest_count"
	FieldNotes         = "notes"
)

// GatingFields is the fixed set checked before the wizard may leave step 1.
// customer_email and guest_count are validated per keystroke but never gate.
var GatingFields = []string{
	FieldCustomerName,
	FieldCustomerPhone,
	FieldEventDate,
	FieldEventTime,
	FieldEventAddress,
	FieldTableCount,
	FieldEventType,
}

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

const (
	minTableCount = 1
	maxTableCount = 200
	minGuestCount = 10
	maxGuestCount = 2000
)

// Validate checks a single field and returns an error message, or "" when
// the value is acceptable. Stateless and deterministic.
func Validate(field, raw string) string {
	switch field {
	case FieldCustomerName:
		// Rune count, not byte length: "Đ" is one character.
		if utf8.RuneCountInString(strings.TrimSpace(raw)) < 2 {
			return "customer name must be at least 2 characters"
		}
	case FieldCustomerPhone:
		digits := strings.Join(strings.Fields(raw), "")
		if digits == "" {
			return "phone number is required"
		}
		if !phonePattern.MatchString(digits) {
			return "phone number must be 10-11 digits"
		}
	case FieldCustomerEmail:
		if raw != "" && !emailPattern.MatchString(raw) {
			return "invalid email address"
		}
	case FieldEventDate:
		if raw == "" {
			return "event date is required"
		}
	case FieldEventTime:
		if raw == "" {
			return "event time is required"
		}
	case FieldEventAddress:
		if strings.TrimSpace(raw) == "" {
			return "event address is required"
		}
	case FieldEventType:
		if strings.TrimSpace(raw) == "" {
			return "event type is required"
		}
	case FieldTableCount:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return "table count is required"
		}
		if n < minTableCount || n > maxTableCount {
			return "table count must be between 1 and 200"
		}
	case FieldGuestCount:
		if raw == "" {
			return ""
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < minGuestCount || n > maxGuestCount {
			return "guest count must be between 10 and 2000"
		}
	}
	return ""
}

// FormFields is the step-1 form: raw values plus the transient error map and
// touched set used for inline error display.
type FormFields struct {
	Values  map[string]string
	Errors  map[string]string
	Touched map[string]bool
}

// NewFormFields creates an empty form.
func NewFormFields() *FormFields {
	return &FormFields{
		Values:  make(map[string]string),
		Errors:  make(map[string]string),
		Touched: make(map[string]bool),
	}
}

// Set stores a raw value and refreshes that field's error. Setting a field
// marks it touched.
func (f *FormFields) Set(field, raw string) {
	f.Values[field] = raw
	f.Touched[field] = true
	if msg := Validate(field, raw); msg != "" {
		f.Errors[field] = msg
	} else {
		delete(f.Errors, field)
	}
}

// ValidateAll runs Validate over the gating field set, marks every checked
// field touched, and returns the error map plus pass/fail. Marking touched
// is the only mutation this performs.
func (f *FormFields) ValidateAll() (map[string]string, bool) {
	errs := make(map[string]string)
	for _, field := range GatingFields {
		f.Touched[field] = true
		if msg := Validate(field, f.Values[field]); msg != "" {
			errs[field] = msg
			f.Errors[field] = msg
		} else {
			delete(f.Errors, field)
		}
	}
	return errs, len(errs) == 0
}
