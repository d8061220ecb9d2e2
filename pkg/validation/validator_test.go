package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name            string `form:"name" binding:"required,min=2"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
	District        string `form:"district" binding:"required"`
}

type scheduleForm struct {
	Date string `form:"donation_date" binding:"required,datetime=2006-01-02"`
	Time string `form:"donation_time" binding:"required,datetime=15:04"`
}

func TestFlattenUsesFormFieldNames(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(signupForm{
		Name:            "R",
		Email:           "not-an-email",
		Password:        "secret1",
		ConfirmPassword: "different",
	})
	require.Error(t, err)

	assert.Equal(t,
		"confirm_password must match password; district is required; "+
			"email must be a valid email; name must be at least 2 characters long",
		Flatten(err))
}

func TestFlattenDatetimeMessages(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(scheduleForm{Date: "10-09-2026", Time: "2pm"})
	require.Error(t, err)

	assert.Equal(t,
		"donation_date must be a date in YYYY-MM-DD format; "+
			"donation_time must be a time in HH:MM format",
		Flatten(err))
}

func TestFlattenNilError(t *testing.T) {
	assert.Equal(t, "", Flatten(nil))
}
