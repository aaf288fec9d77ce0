// Package casino settles wagers against the ledger: the stake is
// withdrawn before any randomness is drawn, and every committed stake
// runs to a determined outcome.
package casino

import (
	"sync"

	"github.com/shopspring/decimal"

	"bankroll/internal/event"
	"bankroll/internal/ledger"
	"bankroll/internal/monitoring"
)

type Service struct {
	ledger *ledger.Service
	bus    *event.Bus
	seeds  *SeedManager
	risk   *RiskEngine
	rtp    *RTPTracker
	board  *Leaderboard

	mu     sync.Mutex
	nonces map[int64]int
}

func New(l *ledger.Service, bus *event.Bus) *Service {
	return &Service{
		ledger: l,
		bus:    bus,
		seeds:  NewSeedManager(),
		risk:   NewRisk(),
		rtp:    NewRTP(),
		board:  NewLeaderboard(),
		nonces: make(map[int64]int),
	}
}

func (s *Service) PlaySlots(number int64, stake decimal.Decimal, clientSeed string) (*Result, error) {
	roller, nonce, err := s.begin(number, stake, clientSeed)
	if err != nil {
		return nil, err
	}

	grid := drawGrid(roller)
	score := scoreGrid(grid)

	res := &Result{
		Number: number, Game: "slots", Outcome: OutcomeLoss,
		Stake: stake, Payout: decimal.Zero,
		Grid: &grid, Score: score, Nonce: nonce,
	}
	if score > 0 {
		res.Outcome = OutcomeWin
		res.Payout = stake.Mul(decimal.NewFromInt(int64(score + 1)))
	}
	return s.settle(res)
}

func (s *Service) PlayBlackjack(number int64, stake decimal.Decimal, clientSeed string, decisions DecisionSource) (*Result, error) {
	roller, nonce, err := s.begin(number, stake, clientSeed)
	if err != nil {
		return nil, err
	}

	deck := NewShuffledDeck(roller)
	round := playBlackjackRound(deck, decisions, func() error {
		_, derr := s.ledger.Withdraw(number, stake)
		return derr
	})

	committed := stake
	if round.doubled {
		committed = stake.Mul(decimal.NewFromInt(2))
	}

	res := &Result{
		Number: number, Game: "blackjack", Outcome: round.outcome,
		Stake: committed, Payout: decimal.Zero, Nonce: nonce,
		Hands: map[string]Hand{"player": round.player, "dealer": round.dealer},
	}
	res.Payout = blackjackPayout(round.outcome, stake, committed)
	return s.settle(res)
}

func (s *Service) PlayRoulette(number int64, stake decimal.Decimal, clientSeed string, bet RouletteBet) (*Result, error) {
	if !validRouletteBet(bet) {
		return nil, ErrBadBet
	}
	roller, nonce, err := s.begin(number, stake, clientSeed)
	if err != nil {
		return nil, err
	}

	ball := roller.Intn(37)
	mult := rouletteMultiplier(ball, bet)

	res := &Result{
		Number: number, Game: "roulette", Outcome: OutcomeLoss,
		Stake: stake, Payout: decimal.Zero,
		Ball: &ball, Nonce: nonce,
	}
	if mult > 0 {
		res.Outcome = OutcomeWin
		res.Payout = stake.Mul(decimal.NewFromInt(int64(mult)))
	}
	return s.settle(res)
}

func (s *Service) PlayBaccarat(number int64, stake decimal.Decimal, clientSeed string, side Side) (*Result, error) {
	if side != SidePlayer && side != SideBanker {
		return nil, ErrBadSide
	}
	roller, nonce, err := s.begin(number, stake, clientSeed)
	if err != nil {
		return nil, err
	}

	deck := NewShuffledDeck(roller)
	round := playBaccaratRound(deck)

	res := &Result{
		Number: number, Game: "baccarat", Outcome: OutcomeLoss,
		Stake: stake, Payout: decimal.Zero, Nonce: nonce,
		Hands: map[string]Hand{"player": round.player, "banker": round.banker},
	}
	switch round.winner {
	case side:
		res.Outcome = OutcomeWin
		res.Payout = stake.Mul(decimal.NewFromInt(2))
	case "":
		res.Outcome = OutcomePush
		res.Payout = stake
	}
	return s.settle(res)
}

// Seeds exposes the seed manager so it can run as a background job.
func (s *Service) Seeds() *SeedManager {
	return s.seeds
}

func (s *Service) Leaderboard(n int) []LeaderboardEntry {
	return s.board.Top(n)
}

// Fairness exposes the published server-seed hash and the running RTP.
func (s *Service) Fairness() (seedHash string, rtp decimal.Decimal) {
	_, hash := s.seeds.Current()
	return hash, s.rtp.ReturnToPlayer()
}

// begin validates the bet, commits the stake and only then builds the
// roll stream. A failed withdrawal aborts the round with no randomness
// drawn and no state changed.
func (s *Service) begin(number int64, stake decimal.Decimal, clientSeed string) (*Roller, int, error) {
	if err := s.risk.Validate(stake); err != nil {
		return nil, 0, err
	}
	s.seeds.MaybeRotate()

	if _, err := s.ledger.Withdraw(number, stake); err != nil {
		return nil, 0, err
	}

	s.mu.Lock()
	nonce := s.nonces[number]
	s.nonces[number]++
	s.mu.Unlock()

	seed, _ := s.seeds.Current()
	return NewRoller(seed, clientSeed, nonce), nonce, nil
}

func (s *Service) settle(res *Result) (*Result, error) {
	if res.Payout.Sign() > 0 {
		bal, err := s.ledger.Deposit(res.Number, res.Payout)
		if err != nil {
			return nil, err
		}
		res.Balance = bal
	} else {
		bal, err := s.ledger.Balance(res.Number)
		if err != nil {
			return nil, err
		}
		res.Balance = bal
	}

	_, hash := s.seeds.Current()
	res.ServerSeedHash = hash

	s.rtp.Record(res.Stake, res.Payout)
	s.board.Record(res.Number, res.Payout.Sub(res.Stake))

	monitoring.GamesPlayed.WithLabelValues(res.Game, string(res.Outcome)).Inc()
	stakeF, _ := res.Stake.Float64()
	payoutF, _ := res.Payout.Float64()
	monitoring.StakeVolume.Add(stakeF)
	monitoring.PayoutVolume.Add(payoutF)

	s.bus.Publish(event.EventGameSettled, res)
	return res, nil
}
