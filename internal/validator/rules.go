package validator

import (
	"log"
	"regexp"

	"contacts_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// The permissive phone pattern and the simple email pattern the record
// schemas enforce. Password strength stays in internal/auth.
var (
	phoneRegex = regexp.MustCompile(`^(\+?\d{1,3})?[-.\s]?(\(?\d{2,4}\)?[-.\s]?)?(\d{2,4}[-.\s]?\d{2,4}[-.\s]?\d{2,4})$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidEmail reports whether s matches the application email pattern.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidPhone reports whether s matches the permissive phone pattern.
func ValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// registerCustomRules installs the application's custom validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'subscription': plan tier enum
	mustRegister("subscription", validateSubscription)

	// 'phone': permissive phone number format
	mustRegister("phone", validatePhone)

	// 'simple_email': the schema-level email pattern, looser than the RFC
	// check the builtin 'email' tag performs
	mustRegister("simple_email", validateSimpleEmail)
}

func validateSubscription(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are for 'required' to reject
	}
	return models.ValidSubscription(models.Subscription(value))
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phoneRegex.MatchString(value)
}

func validateSimpleEmail(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return emailRegex.MatchString(value)
}
