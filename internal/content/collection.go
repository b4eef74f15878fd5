package content

import (
	"context"
	"sort"
	"sync"
)

// collect resolves every slug of kind known in any locale under the
// requested locale, drops absences and sorts the rest newest first. The
// first read, parse or render failure cancels outstanding work and fails the
// whole listing.
func (s *service) collect(ctx context.Context, kind Kind, requested string) ([]resolution, error) {
	slugs, err := s.store.ListSlugsAllLocales(ctx, kind.String())
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolveConcurrently(ctx, kind, slugs, requested)
	if err != nil {
		s.logger.Error("content.collect.failed", "content_kind", kind.String(), "locale", requested, "error", err)
		return nil, err
	}

	found := make([]resolution, 0, len(resolved))
	for _, res := range resolved {
		if res.found {
			found = append(found, res)
		}
	}
	sortNewestFirst(found)
	return found, nil
}

func (s *service) resolveConcurrently(ctx context.Context, kind Kind, slugs []string, requested string) ([]resolution, error) {
	results := make([]resolution, len(slugs))
	if len(slugs) == 0 {
		return results, nil
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < s.effectiveWorkerCount(len(slugs)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				res, err := s.resolve(workCtx, kind, slugs[idx], requested)
				if err != nil {
					fail(err)
					continue
				}
				results[idx] = res
			}
		}()
	}

dispatch:
	for idx := range slugs {
		select {
		case <-workCtx.Done():
			break dispatch
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// sortNewestFirst orders by parsed date descending. Undated entries go last
// and ties keep their slug order.
func sortNewestFirst(items []resolution) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].at, items[j].at
		if a.IsZero() != b.IsZero() {
			return !a.IsZero()
		}
		return a.After(b)
	})
}
