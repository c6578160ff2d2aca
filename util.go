package pixtone

import (
	"math"
	"runtime"
	"sync"
)

var (
	maxParallelWorkers = 0
	workerSemOnce      sync.Once
	workerSem          chan struct{}
)

// truncToByte saturates v to [0, 255] and drops the fraction.
func truncToByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= maxSample {
		return maxSample
	}
	return uint8(v)
}

// parallelFor splits [0, total) into contiguous chunks processed concurrently.
// Chunks never overlap, fn must only write to its own range.
func parallelFor(total int, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	capacity := runtime.GOMAXPROCS(0)
	if maxParallelWorkers > 0 && capacity > maxParallelWorkers {
		capacity = maxParallelWorkers
	}
	workerSemOnce.Do(func() {
		workerSem = make(chan struct{}, capacity)
	})
	workers := min(capacity, cap(workerSem), total)
	if workers <= 1 {
		fn(0, total)
		return
	}
	step := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < total; start += step {
		end := min(start+step, total)
		workerSem <- struct{}{}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			defer func() { <-workerSem }()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

var float64Pool = sync.Pool{
	New: func() any {
		buf := make([]float64, 0)
		return &buf
	},
}

func getFloat64(n int) []float64 {
	bufPtr := float64Pool.Get().(*[]float64)
	buf := *bufPtr
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}

func putFloat64(buf []float64) {
	if buf == nil {
		return
	}
	clear(buf)
	buf = buf[:0]
	float64Pool.Put(&buf)
}
