package noise

import (
	"time"

	"golang.org/x/exp/rand"
)

// seeder hands out random sources which are either seeded
// with a fixed seed or with the current time.
type seeder struct {
	seed  uint64
	fixed bool
}

func (s *seeder) source() rand.Source {
	if s.fixed {
		return rand.NewSource(s.seed)
	}
	return rand.NewSource(uint64(time.Now().UnixNano()))
}
