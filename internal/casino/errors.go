package casino

import "errors"

var (
	ErrMaxBet    = errors.New("stake exceeds the table maximum")
	ErrBadBet    = errors.New("unknown bet selection")
	ErrBadSide   = errors.New("side must be player or banker")
	ErrBadAction = errors.New("unknown blackjack action")
)
