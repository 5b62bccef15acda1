package verify

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

// BatchItem is the outcome of one submission in a batch.
type BatchItem struct {
	Index  int
	Result Result
	Err    error
}

// VerifyAll verifies subs on up to workers goroutines and returns one item
// per submission in input order. workers <= 0 uses one per CPU. Once ctx is
// cancelled the remaining submissions fail with ctx.Err().
func (s *Service) VerifyAll(ctx context.Context, subs []Submission, workers int) []BatchItem {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(subs) {
		workers = len(subs)
	}

	items := make([]BatchItem, len(subs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := s.Verify(ctx, subs[i])
				items[i] = BatchItem{Index: i, Result: res, Err: err}
			}
		}()
	}

	for i := range subs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return items
}

// LoadSubmissions reads a YAML list of submissions from path.
func LoadSubmissions(path string) ([]Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions %s: %w", path, err)
	}
	var subs []Submission
	if err := yaml.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("failed to parse submissions %s: %w", path, err)
	}
	return subs, nil
}
