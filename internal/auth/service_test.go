package auth

import (
	"errors"
	"testing"
	"time"

	"bankroll/internal/account"
	"bankroll/internal/event"
)

func TestRegisterHashesPassword(t *testing.T) {
	repo := account.NewRepo()
	svc := New(repo, nil, event.NewBus())

	acc, err := svc.Register("alice", "hunter2")
	if err != nil {
		t.Fatal(err)
	}

	stored, _ := repo.Get(acc.Number)
	if stored.PasswordHash == "hunter2" || stored.PasswordHash == "" {
		t.Fatal("password stored in the clear")
	}
	if err := comparePassword(stored.PasswordHash, "hunter2"); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
	if err := comparePassword(stored.PasswordHash, "wrong"); err == nil {
		t.Fatal("wrong password verified")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := account.NewRepo()
	svc := New(repo, nil, event.NewBus())

	if _, err := svc.Register("alice", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register("alice", "pw"); !errors.Is(err, account.ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterPublishesAccountCreated(t *testing.T) {
	repo := account.NewRepo()
	bus := event.NewBus()

	created := make(chan any, 1)
	bus.Subscribe(event.EventAccountCreated, func(payload any) {
		created <- payload
	})

	svc := New(repo, nil, bus)
	acc, err := svc.Register("alice", "pw")
	if err != nil {
		t.Fatal(err)
	}

	select {
	case payload := <-created:
		number, ok := payload.(int64)
		if !ok {
			t.Fatalf("payload = %T, want int64", payload)
		}
		if number != acc.Number {
			t.Fatalf("published number %d, want %d", number, acc.Number)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no account.created event published")
	}
}
