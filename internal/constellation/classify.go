package constellation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/litescript/ls-skygeom/internal/logging"
	"github.com/litescript/ls-skygeom/internal/sphere"
)

// Target is a named point to classify.
type Target struct {
	Name  string
	Point sphere.Point
	Mag   float64
}

// Result is the outcome of classifying one target. Exactly one of Entry and
// Err is set.
type Result struct {
	Target Target
	Entry  *Entry
	Err    error
}

// ID returns the matched constellation ID, or "" if the lookup failed.
func (r Result) ID() string {
	if r.Entry == nil {
		return ""
	}
	return r.Entry.ID()
}

// chunkSize is the number of targets each worker goroutine handles.
const chunkSize = 32

// Classify locates every target in reg using up to workers goroutines.
// Results are returned in target order. A failed lookup is logged and
// recorded in its Result; it does not stop the batch. Classify only returns
// an error if ctx is cancelled.
func Classify(ctx context.Context, reg *Registry, targets []Target, workers int, log *logging.Logger) ([]Result, error) {
	if log == nil {
		log = logging.Discard()
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(targets); start += chunkSize {
		end := min(start+chunkSize, len(targets))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				t := targets[i]
				e, err := reg.Locate(t.Point)
				results[i] = Result{Target: t, Entry: e, Err: err}
				if err != nil {
					log.Debug("%s %v: %v", t.Name, t.Point, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Info("classified %d targets, %d unresolved", len(targets), failed)
	return results, nil
}

// Tally counts results per constellation ID. Unresolved targets are counted
// under "".
func Tally(results []Result) map[string]int {
	counts := make(map[string]int)
	for _, r := range results {
		counts[r.ID()]++
	}
	return counts
}
