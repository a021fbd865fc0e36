package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", body)
	}

	s := NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	if s.HTTPStatus != http.StatusNotFound || s.Err != nil {
		t.Fatalf("unexpected simple error: %+v", s)
	}
	if s.Error() != "ESTIMATE_NOT_FOUND: Estimate not found" {
		t.Fatalf("unexpected error string: %s", s.Error())
	}
}
