// Package twitter is a small client for the v1.1 REST endpoints the scraper
// needs: the cursored follower and following id lists and single user
// lookup.
//
// Requests go through go-retryablehttp. A 429 waits until the window named
// by the x-rate-limit-reset header reopens; other transient failures back
// off exponentially. The transport's own messages are written to the
// process logger.
//
// Authentication is one of an explicit bearer token, OAuth 1.0a user
// context signed with the access token pair, or an app-only bearer token
// exchanged from the consumer key and secret on first use.
package twitter
