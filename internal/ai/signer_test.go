package ai

import (
	"strings"
	"testing"
	"time"
)

// TestBuildAuthorizationGolden pins the signature for a fixed credential pair,
// payload, and timestamp. Any change to canonicalisation or key derivation
// shows up as a diff against this recorded value.
func TestBuildAuthorizationGolden(t *testing.T) {
	payload := []byte(`{"Model":"hunyuan-pro","Messages":[{"Role":"user","Content":"ping"}]}`)
	now := time.Unix(1700000000, 0).UTC()

	got, err := BuildAuthorization(
		"AKIDEXAMPLExxxxxxxxxxxxxxxxxxxxxxxxx",
		"Gu5t9xGARNpq86cd98joQYCN3EXAMPLE",
		"hunyuan.tencentcloudapi.com",
		"hunyuan",
		payload,
		now,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "TC3-HMAC-SHA256 Credential=AKIDEXAMPLExxxxxxxxxxxxxxxxxxxxxxxxx/2023-11-14/hunyuan/tc3_request, " +
		"SignedHeaders=content-type;host, " +
		"Signature=417c9313228fd7a23e402cc45c4719c49bdde3752d940b2b2d529c153e0a27e3"
	if got != want {
		t.Errorf("authorization mismatch\n got: %s\nwant: %s", got, want)
	}
}

// TestBuildAuthorizationDeterministic verifies repeated signing of identical
// inputs yields identical output.
func TestBuildAuthorizationDeterministic(t *testing.T) {
	payload := []byte(`{"Model":"hunyuan-pro","Messages":[]}`)
	now := time.Unix(1712345678, 0).UTC()

	first, err := BuildAuthorization("id", "key", "hunyuan.tencentcloudapi.com", "hunyuan", payload, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildAuthorization("id", "key", "hunyuan.tencentcloudapi.com", "hunyuan", payload, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("signing is not deterministic:\n%s\n%s", first, second)
	}
}

func TestBuildAuthorizationScopeUsesUTCDate(t *testing.T) {
	// 2023-11-15 07:00 in UTC+8 is still 2023-11-14 in UTC; the scope must
	// carry the UTC calendar date.
	loc := time.FixedZone("CST", 8*3600)
	now := time.Date(2023, 11, 15, 7, 0, 0, 0, loc)

	got, err := BuildAuthorization("id", "key", "hunyuan.tencentcloudapi.com", "hunyuan", []byte("{}"), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Credential=id/2023-11-14/hunyuan/tc3_request") {
		t.Errorf("expected UTC date 2023-11-14 in credential scope, got %s", got)
	}
}

func TestBuildAuthorizationMissingCredentials(t *testing.T) {
	cases := []struct {
		name      string
		id, key   string
	}{
		{"no id", "", "key"},
		{"no key", "id", ""},
		{"neither", "", ""},
	}
	for _, tc := range cases {
		if _, err := BuildAuthorization(tc.id, tc.key, "host", "hunyuan", []byte("{}"), time.Now()); err != ErrMissingCredentials {
			t.Errorf("%s: expected ErrMissingCredentials, got %v", tc.name, err)
		}
	}
}
