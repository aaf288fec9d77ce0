package audit

import (
	"database/sql"
	"time"
)

type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Log(number int64, action, metadata string) {
	s.db.Exec(`
	INSERT INTO audit_logs(account_number, action, metadata, created_at)
	VALUES (?, ?, ?, ?)
	`, number, action, metadata, time.Now().Unix())
}
