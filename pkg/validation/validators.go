package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailShapeRegex is deliberately permissive: non-whitespace/non-@ local part,
// "@", domain containing at least one dot. It rejects obviously malformed
// strings while accepting many undeliverable-but-shaped addresses (a@b.c).
// Do not tighten this to full RFC validation; the frontend relies on the
// loose check matching its own.
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("email_shape", EmailShape)
}

// EmailShape validates that a string looks like an email address.
func EmailShape(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}
