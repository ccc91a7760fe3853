package application

import (
	"errors"
	"fmt"

	"github.com/sopeal/AskYourFeed/internal/domain"

	validators "github.com/go-playground/validator/v10"
)

// fieldNames maps struct fields on the command DTOs to the form-field names
// errors attach to.
var fieldNames = map[string]string{
	"Email":                "email",
	"Password":             "password",
	"PasswordConfirmation": "password_confirmation",
	"XUsername":            "x_username",
	"Question":             "question",
	"DateFrom":             "date_from",
	"DateTo":               "date_to",
}

var fieldMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email address",
	"min":            "is too short",
	"max":            "is too long",
	"eqfield":        "does not match",
	"xhandle":        "may only contain letters, digits and underscores",
	"strongpassword": "must contain an upper-case letter, a lower-case letter, a digit and a special character",
}

// asValidationError converts a validator failure into the field-scoped local
// error the consumer attaches to an input. Local validation errors never
// reach the transport layer.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fieldNames[fe.StructField()]
		if field == "" {
			field = fe.StructField()
		}
		message := fieldMessages[fe.Tag()]
		if message == "" {
			message = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		return &domain.ValidationError{Field: field, Message: message}
	}

	return err
}
