// Package parallel provides the chunked fork/join helper the evaluator uses
// to fan a row-indexed computation out across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Chunks splits [0,n) into contiguous ranges and runs work on each range in
// its own goroutine, blocking until every goroutine has returned. work
// receives the inclusive start and exclusive end of its range and the
// (0-based) index of the chunk, mirroring the start/end signature used
// throughout the teacher's prove.go for its own chunked loops.
//
// Chunks never re-orders or retries work: if n is 0 it returns immediately,
// and a panic inside work propagates to the caller once all goroutines have
// been joined (via the first observed panic).
func Chunks(n int, work func(start, end, chunkIdx int)) {
	if n <= 0 {
		return
	}

	numChunks := runtime.GOMAXPROCS(0)
	if numChunks > n {
		numChunks = n
	}
	chunkSize := (n + numChunks - 1) / numChunks

	var wg sync.WaitGroup
	var panicOnce sync.Once
	var recovered interface{}

	for chunkIdx, start := 0, 0; start < n; chunkIdx, start = chunkIdx+1, start+chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end, chunkIdx int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { recovered = r })
				}
			}()
			work(start, end, chunkIdx)
		}(start, end, chunkIdx)
	}
	wg.Wait()

	if recovered != nil {
		panic(recovered)
	}
}
