// Package batch computes the statistics of many inputs concurrently.
package batch

import (
	"context"
	"github.com/janpfeifer/droplet/internal/droplet"
	"github.com/janpfeifer/droplet/internal/scan"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"runtime"
	"sync"
)

// Config for Run.
type Config struct {
	// CellSet configures the cell set implementation, see cellset.New.
	CellSet string

	// Parallelism is the maximum number of inputs processed at once. If <= 0, runtime.GOMAXPROCS(0) is used.
	Parallelism int

	// MaxCells limits the cells of the expanded bounds of each droplet, see droplet.WithMaxCells.
	// If <= 0, droplet.DefaultMaxCells is used.
	MaxCells int64
}

func (cfg Config) dropletOptions() []droplet.Option {
	opts := []droplet.Option{droplet.WithCellSet(cfg.CellSet)}
	if cfg.MaxCells > 0 {
		opts = append(opts, droplet.WithMaxCells(cfg.MaxCells))
	}
	return opts
}

// Result for one input.
type Result struct {
	Input       string
	Fingerprint uint64
	Stats       droplet.Stats

	// Cached is set if the Stats were computed for an earlier input with the same cubes.
	Cached bool
}

// memo holds the stats for each fingerprint already seen.
type memo struct {
	mu      sync.Mutex
	entries map[uint64]*memoEntry
}

type memoEntry struct {
	once  sync.Once
	stats droplet.Stats
	err   error
}

// get returns the entry for fingerprint, and whether it already existed.
func (m *memo) get(fingerprint uint64) (entry *memoEntry, found bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, found = m.entries[fingerprint]
	if !found {
		entry = &memoEntry{}
		m.entries[fingerprint] = entry
	}
	return entry, found
}

// Run reads each input (see scan.ReadFile) and computes its droplet.Stats. Results are returned in the order of
// the inputs. Inputs with the same set of cubes are computed only once.
//
// The first failing input cancels the remaining ones, and its error is returned. Cancellation of ctx is checked
// between inputs.
func Run(ctx context.Context, inputs []string, cfg Config) ([]Result, error) {
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(inputs))
	cache := &memo{entries: make(map[uint64]*memoEntry)}
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for inputIdx, input := range inputs {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := runInput(input, cfg, cache)
			if err != nil {
				return errors.WithMessagef(err, "input %q", input)
			}
			results[inputIdx] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "batch interrupted")
	}
	return results, nil
}

func runInput(input string, cfg Config, cache *memo) (Result, error) {
	cubes, err := scan.ReadFile(input)
	if err != nil {
		return Result{}, err
	}
	result := Result{Input: input, Fingerprint: scan.Fingerprint(cubes)}
	entry, found := cache.get(result.Fingerprint)
	entry.once.Do(func() {
		var d *droplet.Droplet
		d, entry.err = droplet.New(cubes, cfg.dropletOptions()...)
		if entry.err != nil {
			return
		}
		entry.stats, entry.err = d.Stats()
	})
	if entry.err != nil {
		return Result{}, entry.err
	}
	result.Stats, result.Cached = entry.stats, found
	klog.V(1).Infof("batch: %s: %d cubes, exterior area %d (cached=%v)",
		input, result.Stats.Cubes, result.Stats.ExteriorArea, found)
	return result, nil
}
