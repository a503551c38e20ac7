package museum

import (
	"math/rand"
	"sync"
	"time"
)

// LikeSource supplies the synthetic like counts shown on remote artworks.
type LikeSource interface {
	RandomLikes() int
}

// RandLikes draws counts uniformly from [0, 100).
type RandLikes struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandLikes returns a generator seeded with seed; 0 seeds from the clock.
func NewRandLikes(seed int64) *RandLikes {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandLikes{r: rand.New(rand.NewSource(seed))}
}

func (l *RandLikes) RandomLikes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(100)
}

// FixedLikes always returns the same count.
type FixedLikes int

func (f FixedLikes) RandomLikes() int { return int(f) }
