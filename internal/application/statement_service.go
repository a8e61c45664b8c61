package application

import (
	"time"

	"github.com/a11yscan/a11yscan/internal/domain"
	"github.com/a11yscan/a11yscan/internal/domain/report"
)

// StatementService turns a completed audit into accessibility-statement data.
// The clock is injected so tests get reproducible dates.
type StatementService struct {
	now func() time.Time
}

func NewStatementService() *StatementService {
	return &StatementService{now: time.Now}
}

// NewStatementServiceAt pins the clock, for tests.
func NewStatementServiceAt(now func() time.Time) *StatementService {
	return &StatementService{now: now}
}

func (s *StatementService) Build(audit *domain.Audit, org domain.StatementConfig) *report.Statement {
	return report.BuildStatement(audit, org, s.now())
}
