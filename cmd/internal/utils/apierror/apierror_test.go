package apierror

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func TestFromValidationErrorFieldNames(t *testing.T) {
	type payload struct {
		UserID   int    `json:"user_id" validate:"required,gt=0"`
		ExamType string `json:"exam_type" validate:"required"`
		Name     string `json:"name" validate:"required,max=60"`
	}

	err := newValidator().Struct(&payload{})
	require.Error(t, err)

	apierr := FromValidationError(err)
	assert.Equal(t, 400, apierr.Code())
	assert.Equal(t, "User ID is required; Exam type is required; Name is required", apierr.Error())
}

func TestFromValidationErrorBodyIsErrorList(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}

	apierr := FromValidationError(newValidator().Struct(&payload{}))

	body, err := json.Marshal(apierr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":["Name is required"]}`, string(body))
}

func TestFromValidationErrorNonValidatorFailure(t *testing.T) {
	apierr := FromValidationError(errors.New("boom"))
	assert.Equal(t, MalformedBodyError, apierr)
}

func TestSimpleErrorSerialization(t *testing.T) {
	apierr := NewNotFoundError("Pet")
	assert.Equal(t, 404, apierr.Code())

	body, err := json.Marshal(apierr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Pet not found"}`, string(body))
}
