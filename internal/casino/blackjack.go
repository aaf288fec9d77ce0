package casino

import "github.com/shopspring/decimal"

type Action string

const (
	ActionHit    Action = "hit"
	ActionDouble Action = "double"
	ActionStand  Action = "stand"
)

// DecisionSource supplies the player's choice at each decision point, so
// the resolver itself performs no I/O. The dealer's hole card is not
// shown to it.
type DecisionSource interface {
	NextAction(player Hand, dealerUp Card) (Action, error)
}

// ScriptedDecisions replays a fixed action list and stands once it runs
// out. The HTTP handler and the tests both drive rounds with it.
type ScriptedDecisions struct {
	actions []Action
	next    int
}

func NewScriptedDecisions(actions ...Action) *ScriptedDecisions {
	return &ScriptedDecisions{actions: actions}
}

func (s *ScriptedDecisions) NextAction(Hand, Card) (Action, error) {
	if s.next >= len(s.actions) {
		return ActionStand, nil
	}
	a := s.actions[s.next]
	s.next++
	return a, nil
}

type blackjackRound struct {
	player  Hand
	dealer  Hand
	outcome Outcome
	doubled bool
}

// playBlackjackRound runs one round against an already-shuffled deck.
// tryDouble commits the extra stake; when it fails the double is refused
// and the source is asked again, so the committed stake always reaches a
// settlement. A failing decision source settles as a stand for the same
// reason.
func playBlackjackRound(deck *Deck, decisions DecisionSource, tryDouble func() error) blackjackRound {
	round := blackjackRound{
		player: Hand{deck.Draw(), deck.Draw()},
		dealer: Hand{deck.Draw(), deck.Draw()},
	}

	if BlackjackValue(round.player) == 21 {
		round.outcome = OutcomeBlackjack
		return round
	}

	for {
		act, err := decisions.NextAction(round.player, round.dealer[0])
		if err != nil {
			act = ActionStand
		}

		switch act {
		case ActionHit:
			round.player = append(round.player, deck.Draw())
			if BlackjackValue(round.player) > 21 {
				round.outcome = OutcomeLoss
				return round
			}
			continue
		case ActionDouble:
			if round.doubled || tryDouble() != nil {
				continue
			}
			round.doubled = true
			round.player = append(round.player, deck.Draw())
			if BlackjackValue(round.player) > 21 {
				round.outcome = OutcomeLoss
				return round
			}
		case ActionStand:
		default:
			continue
		}
		break
	}

	// Dealer draws to 17 or better, then settles against the player.
	for BlackjackValue(round.dealer) < 17 {
		round.dealer = append(round.dealer, deck.Draw())
	}

	pv, dv := BlackjackValue(round.player), BlackjackValue(round.dealer)
	switch {
	case dv > 21 || pv > dv:
		round.outcome = OutcomeWin
	case pv == dv:
		round.outcome = OutcomePush
	default:
		round.outcome = OutcomeLoss
	}
	return round
}

// blackjackPayout maps a settled round to the amount credited back. A
// natural pays 2.5x the original stake; a plain win returns double the
// committed stake, which includes any accepted double; a push returns
// the committed stake.
func blackjackPayout(outcome Outcome, stake, committed decimal.Decimal) decimal.Decimal {
	switch outcome {
	case OutcomeBlackjack:
		return stake.Mul(decimal.NewFromFloat(2.5))
	case OutcomeWin:
		return committed.Mul(decimal.NewFromInt(2))
	case OutcomePush:
		return committed
	}
	return decimal.Zero
}
