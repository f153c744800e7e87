package alert

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/mindwell/assessment-backend/internal/config"
	"github.com/mindwell/assessment-backend/internal/entity"
	pkghttp "github.com/mindwell/assessment-backend/pkg/http"
	"go.uber.org/zap"
)

// Event is the webhook payload posted to the counselor endpoint when an
// assessment needs human follow-up.
type Event struct {
	RecordID       int64              `json:"record_id"`
	Type           entity.SessionMode `json:"type"`
	Date           time.Time          `json:"date"`
	CompositeScore int                `json:"composite_score"`
	RiskLevel      entity.RiskLevel   `json:"risk_level"`
	SafetyFlag     bool               `json:"safety_flag"`
	Timestamp      string             `json:"timestamp"`
}

// Connector delivers high-risk and safety-flag alerts over HTTP.
type Connector struct {
	config    config.AlertConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.AlertConnectorConfig, logger *zap.Logger) *Connector {
	connCfg := &pkghttp.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	return &Connector{
		config: cfg,
		connector: pkghttp.NewConnector(
			connCfg,
			pkghttp.WithRequestTimeout(cfg.RequestTimeout),
			pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
			pkghttp.WithClientKeepAlive(cfg.KeepAlive),
			pkghttp.WithIdleConnTimeout(cfg.IdleConnTimeout),
			pkghttp.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
			pkghttp.WithRequestLogging(),
			pkghttp.WithAuthToken(cfg.Token),
		),
		logger: logger,
	}
}

// SendAlert posts the event, retrying within the configured bounds.
// Delivery failures are reported to the caller but are never fatal to the
// session that triggered them.
func (c *Connector) SendAlert(ctx context.Context, record *entity.AssessmentRecord) error {
	event := &Event{
		RecordID:       record.ID,
		Type:           record.Type,
		Date:           record.Date,
		CompositeScore: record.CompositeScore,
		RiskLevel:      record.RiskLevel,
		SafetyFlag:     record.SafetyFlag,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}

	ctxzap.Debug(ctx, "sending counselor alert",
		zap.Int64("record_id", event.RecordID),
		zap.String("risk_level", string(event.RiskLevel)),
		zap.Bool("safety_flag", event.SafetyFlag),
	)

	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.AlertEndpoint, event, nil)
	}, append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...)
	if err != nil {
		return fmt.Errorf("send counselor alert for record %d: %w", record.ID, err)
	}

	ctxzap.Info(ctx, "counselor alert sent",
		zap.Int64("record_id", event.RecordID),
		zap.String("risk_level", string(event.RiskLevel)),
	)
	return nil
}
