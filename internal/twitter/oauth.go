package twitter

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// oauthParams returns the protocol parameters of an OAuth 1.0a request
// without the signature.
func oauthParams(consumerKey, token string, now time.Time) map[string]string {
	return map[string]string{
		"oauth_consumer_key":     consumerKey,
		"oauth_nonce":            strings.ReplaceAll(uuid.NewString(), "-", ""),
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_timestamp":        strconv.FormatInt(now.Unix(), 10),
		"oauth_token":            token,
		"oauth_version":          "1.0",
	}
}

// signature computes the HMAC-SHA1 signature of a request. params holds the
// query and body parameters together with the oauth_* parameters.
func signature(method, baseURL string, params url.Values, consumerSecret, tokenSecret string) string {
	pairs := make([]string, 0, len(params))
	for key, values := range params {
		for _, value := range values {
			pairs = append(pairs, percentEncode(key)+"="+percentEncode(value))
		}
	}
	sort.Strings(pairs)

	base := strings.ToUpper(method) + "&" + percentEncode(baseURL) + "&" + percentEncode(strings.Join(pairs, "&"))
	key := percentEncode(consumerSecret) + "&" + percentEncode(tokenSecret)

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// authorizationHeader renders the Authorization header for a signed request.
func authorizationHeader(oauth map[string]string, sig string) string {
	keys := make([]string, 0, len(oauth)+1)
	for key := range oauth {
		keys = append(keys, key)
	}
	keys = append(keys, "oauth_signature")
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := oauth[key]
		if key == "oauth_signature" {
			value = sig
		}
		parts = append(parts, percentEncode(key)+`="`+percentEncode(value)+`"`)
	}
	return "OAuth " + strings.Join(parts, ", ")
}

// percentEncode encodes s as RFC 3986 requires for OAuth.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
