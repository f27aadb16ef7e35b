package orchestrator

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/user/storeshots/pkg/pipeline"
)

// BatchResult is the outcome of one request of a batch.
type BatchResult struct {
	Index   int
	Request pipeline.AssetRequest
	Result  AssetResult
	Err     error
}

// Failed reports whether the request failed.
func (r BatchResult) Failed() bool {
	return r.Err != nil
}

// RunBatch runs every request with a pool of workers. A failing request never
// stops the others. Results are returned in submission order. When ctx is
// cancelled no new request is started; requests still queued get ctx.Err().
func (o *Orchestrator) RunBatch(ctx context.Context, requests []pipeline.AssetRequest, numWorkers int) []BatchResult {
	if len(requests) == 0 {
		return []BatchResult{}
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(requests) {
		numWorkers = len(requests)
	}

	o.logger.Info("Processing %d assets with %d workers", len(requests), numWorkers)

	jobs := make(chan int, len(requests))
	results := make(chan BatchResult, len(requests))

	// Start workers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go o.worker(ctx, &wg, requests, jobs, results)
	}

	// Send jobs
	for i := range requests {
		jobs <- i
	}
	close(jobs)

	// Wait for workers to finish
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results
	collected := make([]BatchResult, 0, len(requests))
	for result := range results {
		collected = append(collected, result)
	}

	// Sort by index to maintain order
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Index < collected[j].Index
	})

	failed := 0
	for _, r := range collected {
		if r.Failed() {
			failed++
		}
	}
	o.logger.Info("Batch finished: %d succeeded, %d failed", len(collected)-failed, failed)

	return collected
}

// worker processes requests from the jobs channel.
func (o *Orchestrator) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	requests []pipeline.AssetRequest,
	jobs <-chan int,
	results chan<- BatchResult,
) {
	defer wg.Done()

	for idx := range jobs {
		req := requests[idx]

		select {
		case <-ctx.Done():
			results <- BatchResult{Index: idx, Request: req, Err: ctx.Err()}
			continue
		default:
		}

		result, err := o.Run(ctx, req)
		results <- BatchResult{Index: idx, Request: req, Result: result, Err: err}
	}
}
