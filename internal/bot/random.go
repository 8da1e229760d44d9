package bot

import (
	"math/rand/v2"

	"belote-engine/internal/game"
	"belote-engine/internal/shared"
)

// Random plays a random legal card and takes now and then.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: shared.NewSeededShuffler(seed)}
}

func (r *Random) DecidePhase1(shared.Hand, shared.Card, []game.Bid) game.Response {
	if r.rng.IntN(4) == 0 {
		return game.Accept()
	}
	return game.Pass()
}

func (r *Random) DecidePhase2(_ shared.Hand, forbidden shared.Suit, _ []game.Bid) game.Response {
	if r.rng.IntN(3) != 0 {
		return game.Pass()
	}
	s := shared.Suits[r.rng.IntN(len(shared.Suits))]
	if s == forbidden {
		s = (s + 1) % shared.Suit(len(shared.Suits))
	}
	return game.Name(s)
}

func (r *Random) DecidePlay(_ shared.Hand, _ *shared.Trick, _ shared.Suit, legal shared.Hand) shared.Card {
	return legal[r.rng.IntN(len(legal))]
}
