package event

const (
	EventAccountCreated    = "account.created"
	EventTransferCompleted = "transfer.completed"
	EventGameSettled       = "casino.settled"
)
