package utils

import (
	"runtime"
	"sync"
)

// ParallelThreshold is the batch size below which ParallelFor runs inline.
const ParallelThreshold = 4096

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	var (
		k1, k2 = pm.GetBucketRange(bn)
	)
	kMax = k2 - k1
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// This routine splits one dimension into pm.ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// ParallelFor calls fn over disjoint index ranges covering [0, n). Batches
// under ParallelThreshold run in the calling goroutine.
func ParallelFor(n int, fn func(kMin, kMax int)) {
	if n < ParallelThreshold {
		fn(0, n)
		return
	}
	var (
		pm = NewPartitionMap(runtime.NumCPU(), n)
		wg sync.WaitGroup
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		kMin, kMax := pm.GetBucketRange(np)
		if kMin == kMax {
			continue
		}
		wg.Add(1)
		go func(kMin, kMax int) {
			defer wg.Done()
			fn(kMin, kMax)
		}(kMin, kMax)
	}
	wg.Wait()
}
