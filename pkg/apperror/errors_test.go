package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_MessageAndUnwrap(t *testing.T) {
	err := Wrap(ErrConflict, "Already a member of this club")

	assert.EqualError(t, err, "Already a member of this club")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestWrap_EmptyMessageFallsBack(t *testing.T) {
	err := Wrap(ErrNotFound, "")

	assert.EqualError(t, err, ErrNotFound.Error())
}

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{ErrRateLimitExceeded, http.StatusTooManyRequests},
		{errors.New("boom"), http.StatusInternalServerError},
		{Wrap(ErrForbidden, "Not your announcement"), http.StatusForbidden},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MapErrorToStatus(tc.err), tc.err.Error())
	}
}
