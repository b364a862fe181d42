package twitter

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

// Reference request from the platform's "Creating a signature" guide.
func TestSignatureReferenceVector(t *testing.T) {
	params := url.Values{
		"status":                 {"Hello Ladies + Gentlemen, a signed OAuth request!"},
		"include_entities":       {"true"},
		"oauth_consumer_key":     {"xvz1evFS4wEEPTGEFPHBog"},
		"oauth_nonce":            {"kYjzVBB8Y0ZFabxSWbWovY3uYSQ2pTgmZeNu2VS4cg"},
		"oauth_signature_method": {"HMAC-SHA1"},
		"oauth_timestamp":        {"1318622958"},
		"oauth_token":            {"370773112-GmHxMAgYyLbNEtIKZeRNFsMKPR9EyMZeS9weJAEb"},
		"oauth_version":          {"1.0"},
	}

	got := signature("post", "https://api.twitter.com/1.1/statuses/update.json", params,
		"kAcSOqF21Fu85e7zjz7ZN2U4ZRhfV3WpwPAoE3Z7kBw",
		"LswwdoUaIvS8ltyTt5jkRh4J50vUPVVHtR2YPi5kE")
	if want := "hCtSmYh+iHYCEqBWrE7C7hYmtUk="; got != want {
		t.Errorf("signature = %q, want %q", got, want)
	}
}

func TestPercentEncode(t *testing.T) {
	tests := map[string]string{
		"Ladies + Gentlemen": "Ladies%20%2B%20Gentlemen",
		"An encoded string!": "An%20encoded%20string%21",
		"Dogs, Cats & Mice":  "Dogs%2C%20Cats%20%26%20Mice",
		"☃":                  "%E2%98%83",
		"-._~":               "-._~",
	}
	for in, want := range tests {
		if got := percentEncode(in); got != want {
			t.Errorf("percentEncode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOAuthParamsAndHeader(t *testing.T) {
	now := time.Unix(1318622958, 0)
	a := oauthParams("key", "token", now)
	b := oauthParams("key", "token", now)

	if a["oauth_timestamp"] != "1318622958" {
		t.Errorf("timestamp = %q", a["oauth_timestamp"])
	}
	if a["oauth_nonce"] == "" || a["oauth_nonce"] == b["oauth_nonce"] {
		t.Errorf("nonces must be non-empty and unique: %q %q", a["oauth_nonce"], b["oauth_nonce"])
	}
	if strings.Contains(a["oauth_nonce"], "-") {
		t.Errorf("nonce %q contains dashes", a["oauth_nonce"])
	}

	header := authorizationHeader(a, "sig/+=")
	if !strings.HasPrefix(header, `OAuth oauth_consumer_key="key", oauth_nonce=`) {
		t.Errorf("header = %q", header)
	}
	if !strings.Contains(header, `oauth_signature="sig%2F%2B%3D"`) {
		t.Errorf("signature not encoded in %q", header)
	}
}
