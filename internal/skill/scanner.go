package skill

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/thoreinstein/skillmeta/internal/logging"
)

// Result is the outcome of loading one discovered skill directory.
type Result struct {
	Dir   string
	Skill *Skill
	Err   error
}

// Scanner finds skill directories under a root and loads each one.
type Scanner struct {
	loader *Loader
	logger *slog.Logger
}

// NewScanner creates a Scanner. A nil loader uses NewLoader defaults and a
// nil logger discards output.
func NewScanner(loader *Loader, logger *slog.Logger) *Scanner {
	if loader == nil {
		loader = NewLoader()
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Scanner{loader: loader, logger: logger}
}

// Scan returns the skills under root in FindDirs order. Skills that fail to
// load are logged and skipped; only a failure to walk root is returned.
func (s *Scanner) Scan(root string) ([]*Skill, error) {
	results, err := s.ScanResults(root)
	if err != nil {
		return nil, err
	}

	skills := make([]*Skill, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			s.logger.Warn("skipping skill",
				"dir", r.Dir,
				"error", r.Err)
			continue
		}
		skills = append(skills, r.Skill)
	}
	return skills, nil
}

// ScanResults returns one Result per skill directory under root, in
// FindDirs order, including the ones that failed to load.
func (s *Scanner) ScanResults(root string) ([]Result, error) {
	dirs, err := FindDirs(root)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("found skill directories", "root", root, "count", len(dirs))

	results := make([]Result, len(dirs))
	if len(dirs) == 0 {
		return results, nil
	}

	workers := min(runtime.GOMAXPROCS(0), len(dirs))
	work := make(chan int, len(dirs))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				sk, err := s.loader.Load(dirs[i])
				results[i] = Result{Dir: dirs[i], Skill: sk, Err: err}
			}
		}()
	}

	for i := range dirs {
		work <- i
	}
	close(work)
	wg.Wait()

	return results, nil
}
