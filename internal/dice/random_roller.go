package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
)

// randomRoller implements Roller over its own pseudo-random source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from crypto/rand
func NewRandomRoller() Roller {
	return NewSeededRoller(NewSeed())
}

// NewSeededRoller creates a roller whose sequence is fully determined by seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewSeed returns a high-entropy seed, falling back to a fixed value if the
// system source is unavailable.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 1
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, cairnerr.InvalidArgument("invalid dice count")
	}
	if sides < 1 {
		return nil, cairnerr.InvalidArgument("invalid dice size")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	rawTotal := 0
	for i := range rolls {
		rolls[i] = r.rng.Intn(sides) + 1
		rawTotal += rolls[i]
	}

	return &RollResult{
		Total:    rawTotal + bonus,
		RawTotal: rawTotal,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
	}, nil
}
