package casino

import (
	"fmt"

	"bankroll/internal/event"
)

type Audit interface {
	Log(number int64, action, metadata string)
}

// RegisterConsumers wires settlement events into the audit trail.
func RegisterConsumers(bus *event.Bus, audit Audit) {
	bus.Subscribe(event.EventGameSettled, func(payload any) {
		res, ok := payload.(*Result)
		if !ok {
			return
		}
		audit.Log(res.Number, "casino_"+res.Game,
			fmt.Sprintf("outcome=%s stake=%s payout=%s", res.Outcome, res.Stake, res.Payout))
	})
}
