package llm

import (
	"golang.org/x/sync/semaphore"
)

const DefaultTextWeight = int64(5)

func newTextSem(weight int64) *semaphore.Weighted {
	if weight <= 0 {
		weight = DefaultTextWeight
	}
	return semaphore.NewWeighted(weight)
}
