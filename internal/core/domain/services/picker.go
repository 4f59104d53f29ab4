package services

import (
	"math/rand/v2"
	"sync"
)

// picker makes random choices from an injected source. *rand.Rand is not safe for
// concurrent use, so every draw holds the mutex.
type picker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newPicker(src rand.Source) *picker {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &picker{rnd: rand.New(src)}
}

func (p *picker) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return pool[p.rnd.IntN(len(pool))]
}
