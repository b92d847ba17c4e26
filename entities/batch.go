package entities

import (
	"context"

	"golang.org/x/sync/errgroup"

	"echo-analytics/logger"
)

// ProcessBatches runs the extractor over messages in fixed-size chunks fanned
// out to a bounded worker pool. Results come back in input order. A chunk
// whose extraction errors leaves nil maps for its rows instead of failing the
// run; callers drop those rows before committing.
func ProcessBatches(ctx context.Context, ex Extractor, messages []string, batchSize, workers int) []EntityMap {
	if batchSize <= 0 {
		batchSize = 50
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]EntityMap, len(messages))

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for start := 0; start < len(messages); start += batchSize {
		end := start + batchSize
		if end > len(messages) {
			end = len(messages)
		}
		start, end := start, end

		g.Go(func() error {
			for i := start; i < end; i++ {
				m, err := ex.Extract(ctx, messages[i])
				if err != nil {
					logger.Log.Errorf("entity extraction failed for batch %d-%d: %v", start, end, err)
					// Null out the whole chunk; partial results from an
					// erroring batch are not trusted.
					for j := start; j < end; j++ {
						results[j] = nil
					}
					return nil
				}
				results[i] = m
			}
			return nil
		})
	}
	// Workers never return an error; Wait is only the join point.
	_ = g.Wait()

	return results
}
