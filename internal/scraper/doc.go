// Package scraper implements the followscraper tool on top of the lifecycle
// runner.
//
// Init checks the TWITTER and OUTPUT sections and creates the API client.
// Main walks the follower list and then the following list of TWITTER.ID,
// one cursored page at a time until the end cursor, resolves each id to a
// name and screen name and writes the two CSV files named by OUTPUT. Term
// logs the totals.
//
// Any error returned from a step reaches the runner, which logs it as
// critical and exits with status 8.
package scraper
