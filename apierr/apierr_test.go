package apierr

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConstructorsMapToStatusCodes(t *testing.T) {
	cases := []struct {
		err  *Error
		code string
		want int
	}{
		{InvalidArgument("bad input"), "invalid_argument", http.StatusBadRequest},
		{Unauthenticated("no token"), "unauthenticated", http.StatusUnauthorized},
		{Forbidden("not yours"), "forbidden", http.StatusForbidden},
		{NotFound("missing"), "not_found", http.StatusNotFound},
		{Upstream("store down", errors.New("dial timeout")), "upstream_failure", http.StatusBadGateway},
		{Internal(errors.New("boom")), "internal", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.want, tc.err.StatusCode)
	}
}

func TestInternalHidesDetail(t *testing.T) {
	err := Internal(errors.New("pk violation on users_pkey"))

	assert.Equal(t, "something went wrong", err.Message)
	assert.Contains(t, err.Error(), "pk violation", "detail stays on the error for logging")
}

func TestFrom(t *testing.T) {
	notFound := NotFound("goal not found")
	assert.Same(t, notFound, From(notFound))

	wrapped := errors.Wrap(notFound, "fetching goal")
	assert.Same(t, notFound, From(wrapped), "From must see through wrapping")

	unknown := From(errors.New("surprise"))
	assert.Equal(t, http.StatusInternalServerError, unknown.StatusCode)
	assert.Equal(t, "something went wrong", unknown.Message)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dial timeout")
	err := Upstream("store down", cause)

	assert.True(t, errors.Is(err, cause))
}
