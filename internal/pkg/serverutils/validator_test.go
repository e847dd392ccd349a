package serverutils

import (
	"testing"

	"dinedesk-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

func TestValidateRequest(t *testing.T) {
	err := ValidateRequest(signupForm{
		Email:           "nope",
		Password:        "abc",
		ConfirmPassword: "abd",
	})

	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t,
		"name is required; email must be a valid email; password must be at least 6; confirm_password must match password",
		err.Error())

	assert.NoError(t, ValidateRequest(signupForm{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}))
}
