package helpers

import (
	"net/http/httptest"
	"testing"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{"no header", "", "", false},
		{"wrong scheme", "Basic abc123", "", false},
		{"scheme only", "Bearer", "", false},
		{"empty token", "Bearer ", "", false},
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			got, ok := BearerToken(r)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("BearerToken = (%q, %v), want (%q, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ama@Example.COM "); got != "ama@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash := HashPassword("secret123")
	if hash == "" || hash == "secret123" {
		t.Fatalf("unexpected hash %q", hash)
	}
	if !PasswordCompare(hash, []byte("secret123")) {
		t.Error("correct password rejected")
	}
	if PasswordCompare(hash, []byte("wrong")) {
		t.Error("wrong password accepted")
	}
}
