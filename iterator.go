package fractal

import (
	"fmt"

	"github.com/gogpu/fractal/internal/parallel"
)

// minParallelRows is the smallest per-copy row count worth splitting
// across workers.
const minParallelRows = 4096

// Iterator applies an IFS on a worker pool. Its output is identical, row for
// row, to IFS.Iterate; only the work is spread over goroutines.
//
// An Iterator must be closed to release its workers.
type Iterator struct {
	sys  IFS
	pool *parallel.WorkerPool
}

// NewIterator returns an Iterator for sys using the given number of
// workers. If workers is 0 or negative, GOMAXPROCS is used.
func NewIterator(sys IFS, workers int) *Iterator {
	pool := parallel.NewWorkerPool(workers)
	Logger().Debug("ifs iterator started", "operators", sys.Len(), "workers", pool.Workers())
	return &Iterator{sys: sys, pool: pool}
}

// System returns the IFS being applied.
func (it *Iterator) System() IFS { return it.sys }

// Of is the parallel form of IFS.Of.
func (it *Iterator) Of(sprite Sprite) (Sprite, error) {
	ops := it.sys.ops
	if len(ops) == 0 {
		return Sprite{}, wrapEmpty("ifs", "empty system cannot be applied")
	}
	n := len(sprite.rows)
	out := make([][3]float64, n*len(ops))
	it.pool.ForEach(n*len(ops), minParallelRows, func(lo, hi int) {
		for lo < hi {
			op := lo / n
			end := min(hi, (op+1)*n)
			transformRows(out[lo:end], sprite.rows[lo-op*n:end-op*n], ops[op])
			lo = end
		}
	})
	return Sprite{rows: out}, nil
}

// Iterate is the parallel form of IFS.Iterate.
func (it *Iterator) Iterate(n int, seed Sprite) (Sprite, error) {
	if n < 0 {
		return Sprite{}, invalidOperand("iterate", fmt.Sprintf("negative iteration count %d", n))
	}
	if n == 0 {
		return seed, nil
	}
	if _, err := it.sys.ExpectedRows(n, seed.Len()); err != nil {
		return Sprite{}, err
	}
	cur := seed
	for round := range n {
		next, err := it.Of(cur)
		if err != nil {
			return Sprite{}, err
		}
		Logger().Debug("ifs round", "round", round+1, "operators", it.sys.Len(), "rows", next.Len(), "parallel", true)
		cur = next
	}
	return cur, nil
}

// Close releases the worker goroutines.
func (it *Iterator) Close() {
	it.pool.Close()
}
