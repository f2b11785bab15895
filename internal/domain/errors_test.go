package domain

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("restore: %w", NotFoundError{Resource: "product", Err: sql.ErrNoRows})
	if !IsNotFound(err) {
		t.Fatalf("expected wrapped NotFoundError to match")
	}
	if IsValidation(err) || IsConflict(err) || IsInternal(err) || IsUnauthorized(err) {
		t.Fatalf("NotFoundError matched another predicate")
	}
	if err.Error() != "restore: product not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestValidationErrorMessage(t *testing.T) {
	cases := map[string]ValidationError{
		"ids: at least two required": {Field: "ids", Msg: "at least two required"},
		"bad input":                  {Msg: "bad input"},
		"invalid id":                 {Field: "id"},
		"validation error":           {},
	}
	for want, e := range cases {
		if e.Error() != want {
			t.Fatalf("got %q want %q", e.Error(), want)
		}
	}
}
