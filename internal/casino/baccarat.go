package casino

type baccaratRound struct {
	player Hand
	banker Hand
	winner Side // empty on a tie
}

// playBaccaratRound deals both hands and applies the third-card tableau:
// the player draws on a two-card total of five or less; the banker then
// follows the standard rule table keyed on its own total and, when the
// player drew, the player's third-card value.
func playBaccaratRound(deck *Deck) baccaratRound {
	round := baccaratRound{
		player: Hand{deck.Draw(), deck.Draw()},
		banker: Hand{deck.Draw(), deck.Draw()},
	}

	playerThird := -1
	if BaccaratValue(round.player) <= 5 {
		c := deck.Draw()
		round.player = append(round.player, c)
		playerThird = BaccaratValue(Hand{c})
	}

	if bankerDraws(BaccaratValue(round.banker), playerThird) {
		round.banker = append(round.banker, deck.Draw())
	}

	pv, bv := BaccaratValue(round.player), BaccaratValue(round.banker)
	switch {
	case pv > bv:
		round.winner = SidePlayer
	case bv > pv:
		round.winner = SideBanker
	}
	return round
}

// bankerDraws is the standard third-card table. playerThird is -1 when
// the player stood, in which case the banker simply draws on 0-5.
func bankerDraws(banker, playerThird int) bool {
	if playerThird < 0 {
		return banker <= 5
	}
	switch banker {
	case 0, 1, 2:
		return true
	case 3:
		return playerThird != 8
	case 4:
		return playerThird >= 2 && playerThird <= 7
	case 5:
		return playerThird >= 4 && playerThird <= 7
	case 6:
		return playerThird == 6 || playerThird == 7
	}
	return false
}
