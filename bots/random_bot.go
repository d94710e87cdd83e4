package bots

import (
	"math/rand"
	"sync"
	"time"

	"checkersGo/board"
)

// RandomBot plays a uniformly random turn. It is safe for concurrent use.
type RandomBot struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomBot() *RandomBot {
	return NewSeededRandomBot(time.Now().UnixNano())
}

func NewSeededRandomBot(seed int64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestTurn(pos board.Board) ([]board.Move, error) {
	if err := checkPlayable(&pos); err != nil {
		return nil, err
	}
	turns := Turns(pos)

	b.mu.Lock()
	i := b.rng.Intn(len(turns))
	b.mu.Unlock()
	return turns[i].Moves, nil
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
