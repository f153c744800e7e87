package assessment

import (
	"context"

	"github.com/mindwell/assessment-backend/internal/entity"
)

// AlertConnector delivers a notification for records that warrant
// clinician attention.
type AlertConnector interface {
	SendAlert(ctx context.Context, record *entity.AssessmentRecord) error
}
