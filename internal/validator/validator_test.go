package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,simple_email"`
	Password string `json:"password" validate:"required,min=8"`
}

type contactForm struct {
	Name  string `json:"name" validate:"required,min=3,max=30"`
	Email string `json:"email" validate:"required,simple_email"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

type subscriptionForm struct {
	Subscription string `json:"subscription" validate:"required,subscription"`
}

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&contactForm{
		Name:  "Allen Raymond",
		Email: "nulla.ante@vestibul.co.uk",
		Phone: "(992) 914-3792",
	})
	assert.NoError(t, err)
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&signupForm{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
}

func TestValidate_RequiredFields(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&signupForm{})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Len(t, vErr.Errors, 2)
}

func TestValidate_NameLength(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&contactForm{Name: "Al", Email: "a@b.co"})
	require.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "name")

	err = v.Validate(&contactForm{Name: "Abc", Email: "a@b.co"})
	assert.NoError(t, err)
}

func TestValidate_Phone(t *testing.T) {
	t.Parallel()

	v := New()

	for _, phone := range []string{"(992) 914-3792", "+7 777 123 4567", "212-252-8532", ""} {
		err := v.Validate(&contactForm{Name: "Allen", Email: "a@b.co", Phone: phone})
		assert.NoError(t, err, "phone %q should be accepted", phone)
	}

	err := v.Validate(&contactForm{Name: "Allen", Email: "a@b.co", Phone: "not a phone"})
	require.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "phone")
}

func TestValidate_Subscription(t *testing.T) {
	t.Parallel()

	v := New()

	for _, sub := range []string{"starter", "pro", "business"} {
		assert.NoError(t, v.Validate(&subscriptionForm{Subscription: sub}))
	}

	err := v.Validate(&subscriptionForm{Subscription: "premium"})
	require.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "subscription")
}

func TestEmailRegex(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidEmail("user@example.com"))
	assert.True(t, ValidEmail("a@b.co"))
	assert.False(t, ValidEmail("user@example"))
	assert.False(t, ValidEmail("user example@test.com"))
	assert.False(t, ValidEmail(""))
}
