package auth_test

import (
	"testing"
	"time"

	"feedbackhub/internal/auth"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	mgr := auth.NewManager("test-secret", time.Hour)

	tok, err := mgr.Issue(42, "E42", "e42@co.com", "employee")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := mgr.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 || claims.EmpID != "E42" || claims.Email != "e42@co.com" || claims.Role != "employee" {
		t.Fatalf("claims do not round-trip: %+v", claims)
	}
	if claims.JTI == "" {
		t.Fatal("expected a jti claim")
	}
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	mgr := auth.NewManager("test-secret", time.Hour)
	other := auth.NewManager("different-secret", time.Hour)

	tok, err := other.Issue(1, "E1", "e1@co.com", "employee")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := mgr.Verify(tok); err == nil {
		t.Fatal("expected token signed with another secret to fail")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	mgr := auth.NewManager("test-secret", -time.Minute)
	tok, err := mgr.Issue(1, "E1", "e1@co.com", "employee")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := mgr.Verify(tok); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	mgr := auth.NewManager("test-secret", time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "aaaa.bbbb.cccc"} {
		if _, err := mgr.Verify(tok); err == nil {
			t.Fatalf("expected garbage token %q to fail", tok)
		}
	}
}

func TestFromHeader(t *testing.T) {
	cases := []struct {
		header string
		ok     bool
	}{
		{"Bearer abc.def.ghi", true},
		{"", false},
		{"Bearer", false},
		{"Bearer ", false},
		{"Basic abc", false},
		{"abc.def.ghi", false},
	}
	for _, tc := range cases {
		_, err := auth.FromHeader(tc.header)
		if tc.ok && err != nil {
			t.Fatalf("header %q: unexpected error %v", tc.header, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("header %q: expected error", tc.header)
		}
	}
}
