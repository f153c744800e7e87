package alert

import (
	"context"

	"github.com/mindwell/assessment-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector logs alerts instead of delivering them; used when the
// webhook is disabled or in local runs.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

func (c *MockConnector) SendAlert(_ context.Context, record *entity.AssessmentRecord) error {
	c.logger.Info("mock counselor alert",
		zap.Int64("record_id", record.ID),
		zap.String("risk_level", string(record.RiskLevel)),
		zap.Bool("safety_flag", record.SafetyFlag),
	)
	return nil
}
