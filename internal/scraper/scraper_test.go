package scraper

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/PolarWolf314/followscraper/internal/configs"
	kerrors "github.com/PolarWolf314/followscraper/internal/errors"
	"github.com/PolarWolf314/followscraper/internal/lifecycle"
	logger "github.com/PolarWolf314/followscraper/internal/logging"
	"github.com/PolarWolf314/followscraper/internal/twitter"
)

type fakeSource struct {
	mu         sync.Mutex
	followers  map[string]twitter.Page
	followings map[string]twitter.Page
	users      map[string]twitter.User
	listErr    error
	cursors    []string
}

func (f *fakeSource) page(pages map[string]twitter.Page, cursor string) (twitter.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursors = append(f.cursors, cursor)
	if f.listErr != nil {
		return twitter.Page{}, f.listErr
	}
	return pages[cursor], nil
}

func (f *fakeSource) FollowerIDs(ctx context.Context, user, cursor string) (twitter.Page, error) {
	return f.page(f.followers, cursor)
}

func (f *fakeSource) FollowingIDs(ctx context.Context, user, cursor string) (twitter.Page, error) {
	return f.page(f.followings, cursor)
}

func (f *fakeSource) User(ctx context.Context, id string) (twitter.User, error) {
	u, ok := f.users[id]
	if !ok {
		return twitter.User{}, kerrors.ErrUserNotFound
	}
	return u, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		followers: map[string]twitter.Page{
			"-1":  {IDs: []string{"1", "2"}, NextCursor: "100"},
			"100": {IDs: []string{"3", "404"}, NextCursor: "0"},
		},
		followings: map[string]twitter.Page{
			"-1": {IDs: []string{"2"}, NextCursor: "0"},
		},
		users: map[string]twitter.User{
			"1": {ID: "1", Name: "Alice", ScreenName: "alice"},
			"2": {ID: "2", Name: "Bob", ScreenName: "bob"},
			"3": {ID: "3", Name: "Carol, PhD", ScreenName: "carol"},
		},
	}
}

type harness struct {
	dir     string
	config  string
	logFile string
	codes   []int
}

func setup(t *testing.T, mutate func(*configs.Config)) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	logger.Teardown()

	h := &harness{dir: t.TempDir()}
	var console bytes.Buffer
	restoreConsole := logger.SetConsoleOutput(&console)
	restoreExit := logger.SetExitFunc(func(code int) { h.codes = append(h.codes, code) })
	t.Cleanup(func() {
		logger.Teardown()
		restoreExit()
		restoreConsole()
	})

	h.logFile = filepath.Join(h.dir, "log", "scraper.log")
	cfg := &configs.Config{
		Log:     configs.LogConfig{Level: "DEBUG", File: h.logFile, Stdout: "OFF"},
		Twitter: configs.TwitterConfig{BearerToken: "unused", ID: "gopher"},
		Output: configs.OutputConfig{
			Followers:  filepath.Join(h.dir, "out", "followers.csv"),
			Followings: filepath.Join(h.dir, "out", "followings.csv"),
		},
	}
	if mutate != nil {
		mutate(cfg)
	}

	h.config = filepath.Join(h.dir, "scraper.json")
	if err := configs.Save(h.config, cfg); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return h
}

func (h *harness) run(t *testing.T, tool *Tool) int {
	t.Helper()
	r := lifecycle.New(h.config, tool)
	if r == nil {
		t.Fatalf("lifecycle.New failed, exit codes %v", h.codes)
	}
	return r.Run(context.Background())
}

func (h *harness) logText(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(h.logFile)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	return string(data)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	return records
}

func joinRows(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, "|")
	}
	return strings.Join(lines, "\n")
}

func TestRunWritesBothLists(t *testing.T) {
	h := setup(t, nil)
	src := newFakeSource()

	status := h.run(t, New(WithSource(src)))
	if status != lifecycle.ExitOK {
		t.Fatalf("status = %d, want %d\n%s", status, lifecycle.ExitOK, h.logText(t))
	}

	followers := readCSV(t, filepath.Join(h.dir, "out", "followers.csv"))
	want := "id|name|screen_name\n1|Alice|alice\n2|Bob|bob\n3|Carol, PhD|carol"
	if got := joinRows(followers); got != want {
		t.Errorf("followers.csv:\n%s\nwant:\n%s", got, want)
	}

	followings := readCSV(t, filepath.Join(h.dir, "out", "followings.csv"))
	want = "id|name|screen_name\n2|Bob|bob"
	if got := joinRows(followings); got != want {
		t.Errorf("followings.csv:\n%s\nwant:\n%s", got, want)
	}

	if got := strings.Join(src.cursors, ","); got != "-1,100,-1" {
		t.Errorf("cursors = %s, want -1,100,-1", got)
	}

	text := h.logText(t)
	for _, want := range []string{
		"scraping followers and followings of gopher",
		"skipping followers id=404: user not found",
		"done followers=3 followings=1 skipped=1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("log missing %q:\n%s", want, text)
		}
	}
	if len(h.codes) != 0 {
		t.Errorf("unexpected exit %v", h.codes)
	}
}

func TestRunEmptyListsWriteHeaders(t *testing.T) {
	h := setup(t, nil)
	src := &fakeSource{
		followers:  map[string]twitter.Page{"-1": {NextCursor: "0"}},
		followings: map[string]twitter.Page{"-1": {NextCursor: "0"}},
	}

	if status := h.run(t, New(WithSource(src))); status != lifecycle.ExitOK {
		t.Fatalf("status = %d, want %d", status, lifecycle.ExitOK)
	}
	for _, name := range []string{"followers.csv", "followings.csv"} {
		rows := readCSV(t, filepath.Join(h.dir, "out", name))
		if got := joinRows(rows); got != "id|name|screen_name" {
			t.Errorf("%s = %q, want header only", name, got)
		}
	}
}

func TestInitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*configs.Config)
		want   string
	}{
		{
			name:   "missing id",
			mutate: func(c *configs.Config) { c.Twitter.ID = " " },
			want:   "TWITTER.ID",
		},
		{
			name:   "missing followers path",
			mutate: func(c *configs.Config) { c.Output.Followers = "" },
			want:   "OUTPUT.FOLLOWERS",
		},
		{
			name:   "missing followings path",
			mutate: func(c *configs.Config) { c.Output.Followings = "" },
			want:   "OUTPUT.FOLLOWINGS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setup(t, tt.mutate)
			src := newFakeSource()

			status := h.run(t, New(WithSource(src)))
			if status != lifecycle.ExitCritical {
				t.Errorf("status = %d, want %d", status, lifecycle.ExitCritical)
			}
			if len(src.cursors) != 0 {
				t.Errorf("source should not be used, cursors %v", src.cursors)
			}
			if text := h.logText(t); !strings.Contains(text, tt.want) {
				t.Errorf("log should name %s:\n%s", tt.want, text)
			}
		})
	}
}

func TestListFailureEscalates(t *testing.T) {
	h := setup(t, nil)
	src := newFakeSource()
	src.listErr = kerrors.ErrRateLimited

	status := h.run(t, New(WithSource(src)))
	if status != lifecycle.ExitCritical {
		t.Fatalf("status = %d, want %d", status, lifecycle.ExitCritical)
	}
	if len(h.codes) != 1 || h.codes[0] != lifecycle.ExitCritical {
		t.Errorf("exit codes = %v", h.codes)
	}

	text := h.logText(t)
	if !strings.Contains(text, "listing followers") || !strings.Contains(text, kerrors.ErrRateLimited.Error()) {
		t.Errorf("log should explain the failure:\n%s", text)
	}
	if _, err := os.Stat(filepath.Join(h.dir, "out", "followers.csv")); !os.IsNotExist(err) {
		t.Errorf("no output should be written, stat error %v", err)
	}
}

func TestProgress(t *testing.T) {
	h := setup(t, nil)

	var mu sync.Mutex
	var seen []string
	progress := func(list string, n int) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, fmt.Sprintf("%s:%d", list, n))
	}

	if status := h.run(t, New(WithSource(newFakeSource()), WithProgress(progress))); status != lifecycle.ExitOK {
		t.Fatalf("status = %d", status)
	}

	mu.Lock()
	defer mu.Unlock()
	if got := strings.Join(seen, ","); got != "followers:1,followers:2,followers:3,followings:1" {
		t.Errorf("progress = %s", got)
	}
}

func TestCollectStopsOnCancel(t *testing.T) {
	h := setup(t, nil)
	log := logger.Acquire(logger.Config{Level: logger.DebugLevel, File: h.logFile})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tool := New(WithSource(newFakeSource()))
	_, err := tool.collect(ctx, log, "followers", tool.source.FollowerIDs)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestCredentials(t *testing.T) {
	got := Credentials(configs.TwitterConfig{
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		AccessToken:    "at",
		AccessSecret:   "as",
		BearerToken:    "bt",
		ID:             "ignored",
	})
	want := twitter.Credentials{
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		AccessToken:    "at",
		AccessSecret:   "as",
		BearerToken:    "bt",
	}
	if got != want {
		t.Errorf("Credentials = %+v, want %+v", got, want)
	}
}
