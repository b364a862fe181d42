package twitter

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	logger "github.com/PolarWolf314/followscraper/internal/logging"
)

// rateLimitBackoff waits for the rate-limit window to reset on a 429 and
// falls back to the default exponential backoff otherwise.
func rateLimitBackoff(min, max time.Duration, attempt int, resp *http.Response) time.Duration {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		if reset, err := strconv.ParseInt(resp.Header.Get("x-rate-limit-reset"), 10, 64); err == nil {
			wait := time.Until(time.Unix(reset, 0)) + time.Second
			if wait < min {
				return min
			}
			if wait > max {
				return max
			}
			return wait
		}
	}
	return retryablehttp.DefaultBackoff(min, max, attempt, resp)
}

// leveledLogger routes retryablehttp's messages into the process logger.
type leveledLogger struct {
	log *logger.Logger
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Errorf("%s", line(msg, keysAndValues))
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warnf("%s", line(msg, keysAndValues))
}

// Info is demoted to debug: retryablehttp reports every request at info.
func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugf("%s", line(msg, keysAndValues))
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debugf("%s", line(msg, keysAndValues))
}

func line(msg string, keysAndValues []interface{}) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	return b.String()
}

// signingTransport signs each attempt with a fresh OAuth 1.0a nonce and
// timestamp. retryablehttp replays request headers on retry, so the
// signature cannot be attached before Do.
type signingTransport struct {
	base  http.RoundTripper
	creds Credentials
	now   func() time.Time
}

func (t *signingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	endpoint := *req.URL
	endpoint.RawQuery = ""
	endpoint.Fragment = ""

	params := url.Values{}
	for key, values := range req.URL.Query() {
		params[key] = append([]string(nil), values...)
	}
	oauth := oauthParams(t.creds.ConsumerKey, t.creds.AccessToken, t.now())
	for key, value := range oauth {
		params.Set(key, value)
	}
	sig := signature(req.Method, endpoint.String(), params, t.creds.ConsumerSecret, t.creds.AccessSecret)

	signed := req.Clone(req.Context())
	signed.Header.Set("Authorization", authorizationHeader(oauth, sig))
	return t.base.RoundTrip(signed)
}
