package filter

import (
	"context"
	"runtime"
	"sync"

	"github.com/s0up4200/torrentapi/torrentapi"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.workerCount = workers
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator implements both Evaluator and BatchEvaluator interfaces
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
	pool        WorkerPool
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.workerCount <= 0 {
		e.workerCount = 1
	}

	e.pool = NewWorkerPool(e.workerCount)

	return e
}

// Evaluate evaluates a single filter against all torrents, preserving order
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, torrents []torrentapi.Torrent) ([]torrentapi.Torrent, error) {
	if len(torrents) == 0 {
		return []torrentapi.Torrent{}, nil
	}

	// A single result page is small, don't bother with concurrency
	if len(torrents) <= e.batchSize || !filter.IsThreadSafe() {
		return evaluateSequential(filter, torrents), nil
	}

	return e.evaluateConcurrent(ctx, filter, torrents)
}

// EvaluateBatch evaluates multiple filters against torrents concurrently.
// Filters interrupted by ctx are left out of the result.
func (e *ConcurrentEvaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, torrents []torrentapi.Torrent) (map[string][]torrentapi.Torrent, error) {
	results := make(map[string][]torrentapi.Torrent, len(filters))
	if len(filters) == 0 {
		return results, nil
	}

	resultChan := make(chan BatchResult, len(filters))

	var wg sync.WaitGroup
	for name, filter := range filters {
		wg.Add(1)

		err := e.pool.Submit(func() {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				resultChan <- BatchResult{FilterName: name, Error: err}
				return
			}

			// Workers never submit to their own pool
			resultChan <- BatchResult{
				FilterName: name,
				Matches:    evaluateSequential(filter, torrents),
			}
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for result := range resultChan {
		if result.Error != nil {
			continue
		}
		results[result.FilterName] = result.Matches
	}

	return results, ctx.Err()
}

func evaluateSequential(filter CompiledFilter, torrents []torrentapi.Torrent) []torrentapi.Torrent {
	matches := make([]torrentapi.Torrent, 0, len(torrents))
	for _, torrent := range torrents {
		if filter.Evaluate(torrent) {
			matches = append(matches, torrent)
		}
	}
	return matches
}

// evaluateConcurrent evaluates a filter against chunks of torrents using the worker pool
func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, torrents []torrentapi.Torrent) ([]torrentapi.Torrent, error) {
	chunkSize := max(len(torrents)/e.workerCount, e.batchSize)
	chunkCount := (len(torrents) + chunkSize - 1) / chunkSize

	// Each chunk writes its own slot, so no locking is needed
	chunks := make([][]torrentapi.Torrent, chunkCount)

	var wg sync.WaitGroup
	for i := range chunkCount {
		start := i * chunkSize
		end := min(start+chunkSize, len(torrents))

		wg.Add(1)
		err := e.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			chunks[i] = evaluateSequential(filter, torrents[start:end])
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	matches := make([]torrentapi.Torrent, 0, total)
	for _, c := range chunks {
		matches = append(matches, c...)
	}
	return matches, nil
}

// Stop gracefully stops the evaluator's worker pool
func (e *ConcurrentEvaluator) Stop(ctx context.Context) error {
	return e.pool.Stop(ctx)
}
