package rider

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoSessionFile is returned when no Rider configuration directory exists
// under the home directory.
var ErrNoSessionFile = errors.New("no Rider session history found")

// DefaultWorkers bounds how many marker files are read at once.
const DefaultWorkers = 4

// Finder locates and reads the recent solutions of the newest Rider
// installation.
type Finder struct {
	Home        string
	Pattern     string
	SessionFile string
	IDPrefix    string
	Workers     int
	Logger      *zap.Logger
}

// NewFinder returns a Finder for home with default settings.
func NewFinder(home string) *Finder {
	return &Finder{
		Home:        home,
		Pattern:     DefaultPattern,
		SessionFile: DefaultSessionFile,
		IDPrefix:    DefaultIDPrefix,
		Workers:     DefaultWorkers,
		Logger:      zap.NewNop(),
	}
}

func (f *Finder) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

// Locate returns the session history file of the newest installation.
func (f *Finder) Locate() (string, error) {
	path, ok, err := LatestSessionFile(f.Home, f.Pattern, f.SessionFile)
	if err != nil {
		return "", fmt.Errorf("locating session history: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("%w: no %s directory in %s", ErrNoSessionFile, f.Pattern, f.Home)
	}
	f.logger().Debug("located session history", zap.String("path", path))
	return path, nil
}

// Find locates the newest session history and returns its solutions.
func (f *Finder) Find(ctx context.Context) (RecentSolutions, error) {
	path, err := f.Locate()
	if err != nil {
		return nil, err
	}
	return f.FindIn(ctx, path)
}

// FindIn returns the solutions listed in the given session history file
// whose paths exist as regular files, keyed by ID. When two entries share an
// ID the later one wins.
func (f *Finder) FindIn(ctx context.Context, sessionFile string) (RecentSolutions, error) {
	log := f.logger()

	stored, err := ParseSessionHistoryFile(sessionFile)
	if err != nil {
		return nil, fmt.Errorf("parsing session history %s: %w", sessionFile, err)
	}
	log.Debug("parsed session history", zap.String("path", sessionFile), zap.Int("entries", len(stored)))

	b := Builder{Home: f.Home, IDPrefix: f.IDPrefix}

	var paths []string
	for _, s := range stored {
		p := DisplayPath(s)
		if !b.Exists(p) {
			log.Debug("skipping missing solution", zap.String("path", p))
			continue
		}
		paths = append(paths, p)
	}

	solutions := make([]Solution, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	workers := f.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	g.SetLimit(workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := b.Build(p)
			if err != nil {
				return fmt.Errorf("reading solution %s: %w", p, err)
			}
			solutions[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recent := make(RecentSolutions, len(solutions))
	for _, s := range solutions {
		recent[s.ID] = s
	}
	return recent, nil
}
