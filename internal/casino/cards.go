package casino

import "fmt"

type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

var suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// Rank runs 1 (ace) through 13 (king).
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

var rankNames = map[Rank]string{Ace: "A", Jack: "J", Queen: "Q", King: "K"}

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	if n, ok := rankNames[c.Rank]; ok {
		return n + string(c.Suit)
	}
	return fmt.Sprintf("%d%s", c.Rank, c.Suit)
}

func (c Card) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

type Hand []Card

// Deck holds the undealt cards of one round. Cards are dealt without
// replacement and the deck is never reused across rounds.
type Deck struct {
	cards []Card
}

// NewShuffledDeck builds the 52-card deck and Fisher-Yates shuffles it
// with the given source, so each permutation is equally likely.
func NewShuffledDeck(rng RNG) *Deck {
	cards := make([]Card, 0, 52)
	for _, s := range suits {
		for r := Ace; r <= King; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return &Deck{cards: cards}
}

// Draw removes and returns the top card.
func (d *Deck) Draw() Card {
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// BlackjackValue scores a hand with aces at 11, demoting one ace at a
// time to 1 while the total is over 21. A returned value over 21 is a
// bust.
func BlackjackValue(h Hand) int {
	total, aces := 0, 0
	for _, c := range h {
		switch {
		case c.Rank == Ace:
			total += 11
			aces++
		case c.Rank >= 10:
			total += 10
		default:
			total += int(c.Rank)
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// BaccaratValue scores a hand mod 10: tens and faces count zero, aces
// one. Always in [0,9].
func BaccaratValue(h Hand) int {
	total := 0
	for _, c := range h {
		if c.Rank < 10 {
			total += int(c.Rank)
		}
	}
	return total % 10
}
