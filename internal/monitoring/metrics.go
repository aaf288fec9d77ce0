package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	BalanceUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_balance_updates_total",
			Help: "Total ledger balance mutations",
		},
	)

	GamesPlayed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_rounds_total",
			Help: "Total casino rounds settled",
		},
		[]string{"game", "outcome"},
	)

	StakeVolume = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "casino_stake_volume",
			Help: "Total stake wagered across all games",
		},
	)

	PayoutVolume = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "casino_payout_volume",
			Help: "Total payouts returned across all games",
		},
	)
)

func Init() {
	prometheus.MustRegister(BalanceUpdates)
	prometheus.MustRegister(GamesPlayed)
	prometheus.MustRegister(StakeVolume)
	prometheus.MustRegister(PayoutVolume)
}
