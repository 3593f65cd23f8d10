package auth

import (
	"chat-sync/domain"
	"chat-sync/errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type SignUpRequest struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required,number"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,max=72"`
}

type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func ValidateSignUp(req SignUpRequest) error {
	if req.Name == "" || req.Phone == "" || req.Email == "" || req.Password == "" {
		return errors.New(errors.ErrValidation, "Please fill all the fields")
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}

func ValidateLogin(req LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.New(errors.ErrValidation, "Please fill all the fields")
	}
	return nil
}

// ValidatePhone accepts a non-empty, digits-only phone number.
func ValidatePhone(phone string) error {
	if err := validate.Var(phone, "required,number"); err != nil {
		return errors.New(errors.ErrValidation, "Field can have digits only")
	}
	return nil
}

// ValidateProfileFields checks the provided fields of a profile edit.
func ValidateProfileFields(fields domain.ProfileFields) error {
	if fields.DisplayName != nil && strings.TrimSpace(*fields.DisplayName) == "" {
		return errors.New(errors.ErrValidation, "Name can not be empty")
	}
	if fields.PhoneNumber != nil {
		return ValidatePhone(*fields.PhoneNumber)
	}
	return nil
}

// ValidateDecoded checks required fields of an entity mapped from a document.
func ValidateDecoded(entity any) error {
	if err := validate.Struct(entity); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDecode, err)
	}
	return nil
}
