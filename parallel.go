package godelta

import (
	"encoding/json"
	"sync"
)

// Pair is one (current, previous) pair of raw content values in a batch
// comparison.
type Pair struct {
	Current  string
	Previous string
}

// batchParallelThreshold is the minimum batch size that triggers parallel
// cache lookups; smaller batches run sequentially.
const batchParallelThreshold = 5

// batchWorkers bounds the goroutines computing cache misses in a batch.
const batchWorkers = 8

// ParallelCacheLookup checks the cache for every key concurrently. Returns
// decoded summaries keyed by input index, and the indices of the misses in
// input order. An entry that fails to decode counts as a miss.
func ParallelCacheLookup(cache DiffCache, keys []string) (map[int]*DiffResult, []int) {
	if cache == nil || len(keys) == 0 {
		misses := make([]int, len(keys))
		for i := range keys {
			misses[i] = i
		}
		return make(map[int]*DiffResult), misses
	}

	type lookupResult struct {
		idx    int
		result *DiffResult
	}

	results := make(chan lookupResult, len(keys))
	var wg sync.WaitGroup

	for i, key := range keys {
		wg.Add(1)
		go func(idx int, k string) {
			defer wg.Done()
			if cached, ok := cache.Get(k); ok {
				var r DiffResult
				if err := json.Unmarshal([]byte(cached), &r); err == nil {
					results <- lookupResult{idx: idx, result: &r}
					return
				}
			}
			results <- lookupResult{idx: idx}
		}(i, key)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	hits := make(map[int]*DiffResult)
	for r := range results {
		if r.result != nil {
			hits[r.idx] = r.result
		}
	}

	// Build the miss slice in input order.
	var misses []int
	for i := range keys {
		if _, ok := hits[i]; !ok {
			misses = append(misses, i)
		}
	}

	return hits, misses
}

// CompareBatch computes summaries for a slice of pairs, preserving input
// order. A feed page renders many items at once; batching lets cache lookups
// run concurrently and bounds the goroutines spent computing misses. Each
// comparison is independent, so results are identical to calling Compare in
// a loop.
func (e *Engine) CompareBatch(pairs []Pair) []*DiffResult {
	results := make([]*DiffResult, len(pairs))
	if len(pairs) == 0 {
		return results
	}

	// Sequential path for small batches or no cache.
	if e.cache == nil || len(pairs) < batchParallelThreshold {
		for i, p := range pairs {
			results[i] = e.Compare(p.Current, p.Previous)
		}
		return results
	}

	type job struct {
		currentText  string
		previousText string
		key          string
	}

	jobs := make([]job, len(pairs))
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		cur := e.extractText(p.Current)
		prev := e.extractText(p.Previous)
		key := e.cacheKey(cur, prev)
		jobs[i] = job{currentText: cur, previousText: prev, key: key}
		keys[i] = key
	}

	hits, misses := ParallelCacheLookup(e.cache, keys)
	for idx, r := range hits {
		results[idx] = r
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, batchWorkers)

	for _, idx := range misses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			j := jobs[i]
			r := e.compute(j.currentText, j.previousText)
			results[i] = r

			if data, err := json.Marshal(r); err == nil {
				_ = e.cache.Set(j.key, string(data)) // Ignore cache set errors
			}
		}(idx)
	}

	wg.Wait()
	return results
}
