package qphase

import (
	"context"
	"math/rand"
	"sync"
)

// SweepRequest describes one independent estimation in a batch. A zero Seed
// leaves the estimator time-seeded.
type SweepRequest struct {
	ID            string
	BitsPrecision int
	Oracle        Oracle
	Eigenstate    *Register
	Seed          int64
}

// SweepResult holds the outcome for the request at the same index
type SweepResult struct {
	ID       string
	Estimate float64
	Error    error
}

/*
Sweep runs a batch of mutually independent estimations concurrently. Each
invocation owns a private estimator, ancilla and random source, so no locking
is needed across them; results are returned in request order.

Cancellation applies between invocations only: a single estimation is never
interrupted mid-run, since a partial estimate is not meaningful. Requests not
yet started when the context is cancelled carry the context error.
*/
func Sweep(ctx context.Context, requests []SweepRequest, maxWorkers int) []SweepResult {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]SweepResult, len(requests))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				req := requests[idx]
				results[idx].ID = req.ID

				if err := ctx.Err(); err != nil {
					results[idx].Error = err
					continue
				}

				estimator := NewEstimator(sweepConfig(req.Seed))
				estimate, err := estimator.Estimate(req.BitsPrecision, req.Oracle, req.Eigenstate)
				results[idx].Estimate = estimate
				results[idx].Error = err
			}
		}()
	}

feed:
	for idx := range requests {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			for rest := idx; rest < len(requests); rest++ {
				results[rest].ID = requests[rest].ID
				results[rest].Error = ctx.Err()
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func sweepConfig(seed int64) *Config {
	if seed == 0 {
		return NewConfig()
	}
	return &Config{Rand: rand.New(rand.NewSource(seed))}
}
