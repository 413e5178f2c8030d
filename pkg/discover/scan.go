package discover

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/ganzhi"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

// ScanOptions configures [Discoverer.Scan].
type ScanOptions struct {
	// Transits selects the sequences consulted for every year.
	Transits transit.Options

	// Workers bounds the goroutines running relation searches. Zero means
	// GOMAXPROCS.
	Workers int
}

// Scan computes [Discoverer.Year] for count consecutive years starting at
// from. Years not covered by the selected transits are left out, so the
// results may be shorter than count; they are in year order.
//
// Transit lookups run on the calling goroutine since the table is not safe
// for concurrent use. The relation searches run in parallel, so discovery
// hooks must be safe for concurrent use.
func (d *Discoverer) Scan(ctx context.Context, from, count int, opts ScanOptions) ([]Result, error) {
	if count < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "negative year count %d", count)
	}
	if !opts.Transits.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidOptions, "invalid transit options %d", uint8(opts.Transits))
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type job struct {
		year    int
		entries []transit.Entry
	}
	jobs := make([]job, 0, count)
	for year := from; year < from+count; year++ {
		es, err := d.table.Entries(year, opts.Transits)
		if errors.Is(err, errors.ErrCodeUnsupported) {
			continue
		}
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job{year: year, entries: es})
	}

	atBirth := d.AtBirth()
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ps := make([]ganzhi.Pillar, len(j.entries))
			for k, e := range j.entries {
				ps[k] = e.Pillar
			}
			results[i] = Result{
				Year:     j.year,
				Entries:  j.entries,
				AtBirth:  atBirth,
				Transits: d.transitsOnly(j.year, ps),
				Mutual:   d.mutual(j.year, ps),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
