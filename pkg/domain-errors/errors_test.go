package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	err := New(CodeDuplicate, "Contact already exists")
	assert.True(t, HasCode(err, CodeDuplicate))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeDuplicate))
}

func TestHasCodeThroughWrapping(t *testing.T) {
	inner := Wrap(errors.New("connection refused"), CodeInternal, "failed to check existing contact")
	err := fmt.Errorf("create contact: %w", inner)
	assert.True(t, HasCode(err, CodeInternal))
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("no documents")
	err := Wrap(cause, CodeNotFound, "Contact not found")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Contact not found: no documents", err.Error())
}

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeDuplicate, http.StatusBadRequest},
		{CodeInvalidPhone, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConfig, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
		{Code("unknown"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToHTTPStatus(tc.code), "code %q", tc.code)
	}
}
