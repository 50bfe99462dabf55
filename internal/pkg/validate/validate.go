// Package validate turns binding failures into the per-field error list
// the frontend renders under each form input. The messages are the exact
// copy the client-side schema shows, so server and client errors read
// identically.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError is a single field-level violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldMessages maps a JSON field name to its user-facing message.
// Fields that appear on more than one form (email, phone) share the same
// copy everywhere, so one table covers all three schemas.
var fieldMessages = map[string]string{
	"firstName": "First name must be at least 2 characters",
	"lastName":  "Last name must be at least 2 characters",
	"name":      "Name must be at least 2 characters",
	"email":     "Please enter a valid email address",
	"phone":     "Please enter a valid phone number",

	"moveType": "Please select a move type",
	"moveDate": "Please select a move date",

	"fromAddress": "Please enter a valid origin address",
	"fromCity":    "Please enter origin city",
	"fromState":   "Please enter origin state",
	"fromZip":     "Please enter valid ZIP code",
	"toAddress":   "Please enter a valid destination address",
	"toCity":      "Please enter destination city",
	"toState":     "Please enter destination state",
	"toZip":       "Please enter valid ZIP code",

	"homeSize": "Please select property size",

	"subject": "Subject must be at least 5 characters",
	"message": "Message must be at least 10 characters",

	"amount":        "Minimum payment amount is $50",
	"quoteId":       "Quote ID is required",
	"customerEmail": "Valid email is required",
	"customerName":  "Customer name is required",
}

// RegisterTagNames makes gin's validator report JSON field names instead
// of Go struct field names. Call once at startup (and from test setup).
func RegisterTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Details converts a ShouldBindJSON error into a non-empty list of
// field-level violations. Malformed bodies that never reach the
// validator are reported as a single body-level error.
func Details(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "Request body is malformed"}}
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return details
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
