package casino

import "github.com/shopspring/decimal"

type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeLoss      Outcome = "loss"
	OutcomePush      Outcome = "push"
	OutcomeBlackjack Outcome = "blackjack"
)

// Side is the baccarat selection, chosen before any card is dealt.
type Side string

const (
	SidePlayer Side = "player"
	SideBanker Side = "banker"
)

// RouletteBet is either a straight number (Number set, 0-36) or one of
// the named categories.
type RouletteBet struct {
	Number   *int             `json:"number,omitempty"`
	Category RouletteCategory `json:"category,omitempty"`
}

type RouletteCategory string

const (
	BetEven        RouletteCategory = "even"
	BetOdd         RouletteCategory = "odd"
	BetLow         RouletteCategory = "1-18"
	BetHigh        RouletteCategory = "19-36"
	BetFirstDozen  RouletteCategory = "1st-dozen"
	BetSecondDozen RouletteCategory = "2nd-dozen"
	BetThirdDozen  RouletteCategory = "3rd-dozen"
	BetFirstCol    RouletteCategory = "1st-column"
	BetSecondCol   RouletteCategory = "2nd-column"
	BetThirdCol    RouletteCategory = "3rd-column"
	BetRed         RouletteCategory = "red"
	BetBlack       RouletteCategory = "black"
)

// Result is the settlement report handed back to the caller: what the
// round resolved to, what came back, and where the balance landed.
type Result struct {
	Number  int64           `json:"account_number"`
	Game    string          `json:"game"`
	Outcome Outcome         `json:"outcome"`
	Stake   decimal.Decimal `json:"stake"`
	Payout  decimal.Decimal `json:"payout"`
	Balance decimal.Decimal `json:"balance"`

	Grid  *Grid           `json:"grid,omitempty"`
	Score int             `json:"score,omitempty"`
	Ball  *int            `json:"ball,omitempty"`
	Hands map[string]Hand `json:"hands,omitempty"`

	ServerSeedHash string `json:"server_seed_hash"`
	Nonce          int    `json:"nonce"`
}
