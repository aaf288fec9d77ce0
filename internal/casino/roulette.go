package casino

// Standard European layout reds; black is every other non-zero number.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

func validRouletteBet(bet RouletteBet) bool {
	if bet.Number != nil {
		return *bet.Number >= 0 && *bet.Number <= 36 && bet.Category == ""
	}
	switch bet.Category {
	case BetEven, BetOdd, BetLow, BetHigh,
		BetFirstDozen, BetSecondDozen, BetThirdDozen,
		BetFirstCol, BetSecondCol, BetThirdCol,
		BetRed, BetBlack:
		return true
	}
	return false
}

// rouletteMultiplier returns the payout multiplier for a winning bet
// against the drawn ball, zero on a miss. Zero is excluded from every
// even-money category; only a straight bet covers it.
func rouletteMultiplier(ball int, bet RouletteBet) int {
	if bet.Number != nil {
		if *bet.Number == ball {
			return 36
		}
		return 0
	}

	if matchCategory(ball, bet.Category) {
		switch bet.Category {
		case BetFirstDozen, BetSecondDozen, BetThirdDozen,
			BetFirstCol, BetSecondCol, BetThirdCol:
			return 3
		default:
			return 2
		}
	}
	return 0
}

func matchCategory(ball int, cat RouletteCategory) bool {
	if ball == 0 {
		return false
	}
	switch cat {
	case BetEven:
		return ball%2 == 0
	case BetOdd:
		return ball%2 == 1
	case BetLow:
		return ball <= 18
	case BetHigh:
		return ball >= 19
	case BetFirstDozen:
		return ball <= 12
	case BetSecondDozen:
		return ball >= 13 && ball <= 24
	case BetThirdDozen:
		return ball >= 25
	case BetFirstCol:
		return ball%3 == 1
	case BetSecondCol:
		return ball%3 == 2
	case BetThirdCol:
		return ball%3 == 0
	case BetRed:
		return redNumbers[ball]
	case BetBlack:
		return !redNumbers[ball]
	}
	return false
}
