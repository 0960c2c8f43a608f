package catalog

import "math/rand/v2"

// Pool is the queue of names left to show in one level. It is not safe for
// concurrent use; the game controller serializes access.
type Pool struct {
	cat     *Catalog
	rng     *rand.Rand
	items   []string
	refills int
}

// NewPool returns a pool holding a fresh permutation of the whole catalog.
func NewPool(cat *Catalog, rng *rand.Rand) *Pool {
	p := &Pool{cat: cat, rng: rng}
	p.items = cat.Shuffled(rng)
	return p
}

// Next removes and returns one name. An exhausted pool is reshuffled from the
// full catalog first.
func (p *Pool) Next() string {
	if len(p.items) == 0 {
		p.items = p.cat.Shuffled(p.rng)
		p.refills++
	}
	last := len(p.items) - 1
	item := p.items[last]
	p.items = p.items[:last]
	return item
}

// Remaining is the number of names left before the next reshuffle.
func (p *Pool) Remaining() int {
	return len(p.items)
}

// refillCount counts how many times the pool ran dry and was reshuffled.
func (p *Pool) refillCount() int {
	return p.refills
}
