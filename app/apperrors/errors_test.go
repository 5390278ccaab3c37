package apperrors

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", BadRequest("nope"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("nope"), http.StatusUnauthorized},
		{"forbidden", Forbidden("nope"), http.StatusForbidden},
		{"not found", NotFound("nope"), http.StatusNotFound},
		// Duplicates surface as 400, not 409.
		{"conflict", Conflict("nope"), http.StatusBadRequest},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusCode(tc.err); got != tc.want {
				t.Errorf("StatusCode = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMessageOfNeverLeaksInternals(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:3306: connection refused")

	if got := MessageOf(Internal(cause)); got != "Server Error" {
		t.Errorf("internal error message = %q, want %q", got, "Server Error")
	}
	if got := MessageOf(cause); got != "Server Error" {
		t.Errorf("plain error message = %q, want %q", got, "Server Error")
	}
	if got := MessageOf(NotFound("Order not found")); got != "Order not found" {
		t.Errorf("typed error message = %q", got)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(Forbidden("no")) != KindForbidden {
		t.Error("KindOf lost the kind")
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Error("untyped errors should read as internal")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindInternal, "wrapped", cause)

	if !errors.Is(err, cause) {
		t.Error("Unwrap chain broken")
	}
}
