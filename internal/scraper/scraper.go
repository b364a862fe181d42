package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/followscraper/internal/configs"
	kerrors "github.com/PolarWolf314/followscraper/internal/errors"
	"github.com/PolarWolf314/followscraper/internal/lifecycle"
	logger "github.com/PolarWolf314/followscraper/internal/logging"
	"github.com/PolarWolf314/followscraper/internal/tabular"
	"github.com/PolarWolf314/followscraper/internal/twitter"
)

// Header is the column layout of both output files.
var Header = []string{"id", "name", "screen_name"}

// Source lists follower and following ids and resolves users.
// *twitter.Client implements it.
type Source interface {
	FollowerIDs(ctx context.Context, user, cursor string) (twitter.Page, error)
	FollowingIDs(ctx context.Context, user, cursor string) (twitter.Page, error)
	User(ctx context.Context, user string) (twitter.User, error)
}

// Record is one row of an output file.
type Record struct {
	ID         string
	Name       string
	ScreenName string
}

// Row returns the record's cells in Header order.
func (r Record) Row() []string {
	return []string{r.ID, r.Name, r.ScreenName}
}

// ProgressFunc receives the list being collected and the number of users
// resolved so far.
type ProgressFunc func(list string, n int)

// Tool collects the followers and followings of the configured account and
// writes them to the OUTPUT files. It is run by a lifecycle.Runner.
type Tool struct {
	lifecycle.NopHooks

	source   Source
	progress ProgressFunc

	target     string
	output     configs.OutputConfig
	followers  []Record
	followings []Record
	skipped    int
}

// Option configures a Tool.
type Option func(*Tool)

// WithSource replaces the API client built from the TWITTER section.
func WithSource(s Source) Option {
	return func(t *Tool) {
		t.source = s
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(t *Tool) {
		t.progress = fn
	}
}

// New creates a Tool.
func New(opts ...Option) *Tool {
	t := &Tool{progress: func(string, int) {}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init validates the TWITTER and OUTPUT sections and builds the API client.
func (t *Tool) Init(ctx context.Context, r *lifecycle.Runner) error {
	cfg := r.Config()
	if strings.TrimSpace(cfg.Twitter.ID) == "" {
		return fmt.Errorf("%w: TWITTER.ID", kerrors.ErrConfigFieldMissing)
	}
	if cfg.Output.Followers == "" {
		return fmt.Errorf("%w: OUTPUT.FOLLOWERS", kerrors.ErrNoOutputPath)
	}
	if cfg.Output.Followings == "" {
		return fmt.Errorf("%w: OUTPUT.FOLLOWINGS", kerrors.ErrNoOutputPath)
	}

	t.target = strings.TrimSpace(cfg.Twitter.ID)
	t.output = cfg.Output
	if t.source == nil {
		t.source = twitter.New(Credentials(cfg.Twitter), r.Logger())
	}

	r.Logger().Infof("scraping followers and followings of %s", t.target)
	return nil
}

// Main collects both lists and writes them.
func (t *Tool) Main(ctx context.Context, r *lifecycle.Runner) error {
	log := r.Logger()

	var err error
	if t.followers, err = t.collect(ctx, log, "followers", t.source.FollowerIDs); err != nil {
		return err
	}
	if t.followings, err = t.collect(ctx, log, "followings", t.source.FollowingIDs); err != nil {
		return err
	}

	if err := write(t.output.Followers, t.followers); err != nil {
		return err
	}
	log.Infof("wrote %d followers to %s", len(t.followers), t.output.Followers)

	if err := write(t.output.Followings, t.followings); err != nil {
		return err
	}
	log.Infof("wrote %d followings to %s", len(t.followings), t.output.Followings)
	return nil
}

// Term reports the totals.
func (t *Tool) Term(ctx context.Context, r *lifecycle.Runner) error {
	r.Logger().Infof("done followers=%d followings=%d skipped=%d",
		len(t.followers), len(t.followings), t.skipped)
	return nil
}

// Followers returns the records collected by Main.
func (t *Tool) Followers() []Record { return t.followers }

// Followings returns the records collected by Main.
func (t *Tool) Followings() []Record { return t.followings }

type listFunc func(ctx context.Context, user, cursor string) (twitter.Page, error)

// collect pages through list until the end cursor and resolves every id.
// Ids whose user no longer exists are skipped with a warning.
func (t *Tool) collect(ctx context.Context, log *logger.Logger, name string, list listFunc) ([]Record, error) {
	records := []Record{}
	cursor := twitter.FirstCursor

	for {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		page, err := list(ctx, t.target, cursor)
		if err != nil {
			return records, fmt.Errorf("listing %s: %w", name, err)
		}
		log.Debugf("%s page cursor=%s ids=%d next=%s", name, cursor, len(page.IDs), page.NextCursor)

		for _, id := range page.IDs {
			user, err := t.source.User(ctx, id)
			if errors.Is(err, kerrors.ErrUserNotFound) {
				log.Warnf("skipping %s id=%s: user not found", name, id)
				t.skipped++
				continue
			}
			if err != nil {
				return records, fmt.Errorf("resolving %s id=%s: %w", name, id, err)
			}

			records = append(records, Record{ID: id, Name: user.Name, ScreenName: user.ScreenName})
			t.progress(name, len(records))
		}

		if page.Done() {
			return records, nil
		}
		cursor = page.NextCursor
	}
}

func write(path string, records []Record) error {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = rec.Row()
	}
	if err := tabular.WriteFile(path, Header, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Credentials converts the TWITTER section for the API client.
func Credentials(c configs.TwitterConfig) twitter.Credentials {
	return twitter.Credentials{
		ConsumerKey:    c.ConsumerKey,
		ConsumerSecret: c.ConsumerSecret,
		AccessToken:    c.AccessToken,
		AccessSecret:   c.AccessSecret,
		BearerToken:    c.BearerToken,
	}
}
