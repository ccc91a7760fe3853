package validator

import (
	"regexp"
	"unicode"

	validators "github.com/go-playground/validator/v10"
)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

var xHandlePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// New Validator func
func New() Validator {
	v := validators.New()
	// Registration errors only occur for blank tags or nil funcs.
	_ = v.RegisterValidation("xhandle", validXHandle)
	_ = v.RegisterValidation("strongpassword", validStrongPassword)
	return &validator{
		validator: v,
	}
}

// ValidateStruct func
func (v *validator) ValidateStruct(inf interface{}) error {

	return v.validator.Struct(inf)
}

// validXHandle - X usernames are letters, digits and underscores only
func validXHandle(fl validators.FieldLevel) bool {
	return xHandlePattern.MatchString(fl.Field().String())
}

// validStrongPassword - at least one upper, one lower, one digit, one special,
// no whitespace
func validStrongPassword(fl validators.FieldLevel) bool {
	var upper, lower, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}
