package twitter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/segmentio/encoding/json"

	kerrors "github.com/PolarWolf314/followscraper/internal/errors"
	logger "github.com/PolarWolf314/followscraper/internal/logging"
)

const (
	// DefaultBaseURL is the API host.
	DefaultBaseURL = "https://api.twitter.com"

	// FirstCursor starts a cursored listing; EndCursor marks its end.
	FirstCursor = "-1"
	EndCursor   = "0"

	pageSize = 5000
)

// Credentials selects the authentication scheme. A BearerToken is used as
// is. Otherwise, with AccessToken and AccessSecret set, every attempt of a
// request is signed with OAuth 1.0a user context. Otherwise a bearer token is obtained from
// the consumer key and secret.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
	BearerToken    string
}

// Page is one cursored page of user ids.
type Page struct {
	IDs        []string `json:"ids"`
	NextCursor string   `json:"next_cursor_str"`
}

// Done reports whether this is the last page.
func (p Page) Done() bool {
	return p.NextCursor == "" || p.NextCursor == EndCursor
}

// User is the subset of a user object the scraper records.
type User struct {
	ID         string `json:"id_str"`
	Name       string `json:"name"`
	ScreenName string `json:"screen_name"`
}

// Client talks to the v1.1 REST API.
type Client struct {
	baseURL string
	creds   Credentials
	http    *retryablehttp.Client
	log     *logger.Logger
	now     func() time.Time
	bearer  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithRetries sets the retry budget and the wait bounds between attempts.
func WithRetries(retries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.http.RetryMax = retries
		c.http.RetryWaitMin = waitMin
		c.http.RetryWaitMax = waitMax
	}
}

// New creates a Client. Transport activity is reported through log.
func New(creds Credentials, log *logger.Logger, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = leveledLogger{log: log}
	rc.RetryMax = 5
	rc.RetryWaitMin = time.Second
	rc.RetryWaitMax = 15 * time.Minute
	rc.Backoff = rateLimitBackoff
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		baseURL: DefaultBaseURL,
		creds:   creds,
		http:    rc,
		log:     log,
		now:     time.Now,
		bearer:  creds.BearerToken,
	}
	if c.userContext() {
		base := rc.HTTPClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		rc.HTTPClient.Transport = &signingTransport{
			base:  base,
			creds: creds,
			now:   func() time.Time { return c.now() },
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FollowerIDs returns one page of the ids following user.
func (c *Client) FollowerIDs(ctx context.Context, user, cursor string) (Page, error) {
	return c.ids(ctx, "/1.1/followers/ids.json", user, cursor)
}

// FollowingIDs returns one page of the ids user follows.
func (c *Client) FollowingIDs(ctx context.Context, user, cursor string) (Page, error) {
	return c.ids(ctx, "/1.1/friends/ids.json", user, cursor)
}

// User looks up a single user by id or screen name.
func (c *Client) User(ctx context.Context, user string) (User, error) {
	var u User
	err := c.get(ctx, "/1.1/users/show.json", userQuery(user), &u)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (c *Client) ids(ctx context.Context, path, user, cursor string) (Page, error) {
	if cursor == "" {
		cursor = FirstCursor
	}
	query := userQuery(user)
	query.Set("cursor", cursor)
	query.Set("count", fmt.Sprint(pageSize))
	query.Set("stringify_ids", "true")

	var page Page
	if err := c.get(ctx, path, query, &page); err != nil {
		return Page{}, err
	}
	return page, nil
}

// userQuery addresses user by user_id when it is numeric and by
// screen_name otherwise.
func userQuery(user string) url.Values {
	user = strings.TrimPrefix(strings.TrimSpace(user), "@")
	query := url.Values{}
	if user != "" && strings.Trim(user, "0123456789") == "" {
		query.Set("user_id", user)
	} else {
		query.Set("screen_name", user)
	}
	return query
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		closeBody(resp)
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, path); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", kerrors.ErrUnexpectedResponse, path, err)
	}
	return nil
}

func (c *Client) authorize(ctx context.Context, req *retryablehttp.Request) error {
	if c.userContext() {
		return nil
	}

	if c.bearer == "" {
		token, err := c.fetchBearer(ctx)
		if err != nil {
			return err
		}
		c.bearer = token
	}
	req.Header.Set("Authorization", "Bearer "+c.bearer)
	return nil
}

// userContext reports whether requests are signed with OAuth 1.0a instead
// of carrying a bearer token.
func (c *Client) userContext() bool {
	return c.creds.BearerToken == "" && c.creds.AccessToken != "" && c.creds.AccessSecret != ""
}

// fetchBearer exchanges the consumer key and secret for an app-only token.
func (c *Client) fetchBearer(ctx context.Context) (string, error) {
	if c.creds.ConsumerKey == "" || c.creds.ConsumerSecret == "" {
		return "", fmt.Errorf("%w: no bearer token and no consumer credentials", kerrors.ErrAuthFailed)
	}

	body := strings.NewReader("grant_type=client_credentials")
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth2/token", body)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(url.QueryEscape(c.creds.ConsumerKey), url.QueryEscape(c.creds.ConsumerSecret))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")

	resp, err := c.http.Do(req)
	if err != nil {
		closeBody(resp)
		return "", fmt.Errorf("POST /oauth2/token: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "/oauth2/token"); err != nil {
		return "", err
	}

	var token struct {
		TokenType   string `json:"token_type"`
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: decoding token: %v", kerrors.ErrUnexpectedResponse, err)
	}
	if !strings.EqualFold(token.TokenType, "bearer") || token.AccessToken == "" {
		return "", fmt.Errorf("%w: unexpected token type %q", kerrors.ErrAuthFailed, token.TokenType)
	}
	c.log.Debugf("obtained app-only bearer token")
	return token.AccessToken, nil
}

// closeBody releases a response handed back alongside an error.
func closeBody(resp *http.Response) {
	if resp != nil {
		resp.Body.Close()
	}
}

func checkStatus(resp *http.Response, path string) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(detail))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s returned %d: %s", kerrors.ErrAuthFailed, path, resp.StatusCode, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", kerrors.ErrUserNotFound, path)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", kerrors.ErrRateLimited, path)
	default:
		return fmt.Errorf("%w: %s returned %d: %s", kerrors.ErrUnexpectedResponse, path, resp.StatusCode, msg)
	}
}
