package validator

import "testing"

type signupPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidate(t *testing.T) {
	if got := Validate(signupPayload{Email: "ada@example.com", Password: "longenough"}); got != nil {
		t.Fatalf("valid payload should pass, got %v", got)
	}

	got := Validate(signupPayload{Email: "not-an-email", Password: "short"})
	if got["Email"] != "email" {
		t.Fatalf("expected email rule, got %q", got["Email"])
	}
	if got["Password"] != "min=8" {
		t.Fatalf("expected min=8 rule with its bound, got %q", got["Password"])
	}
}
