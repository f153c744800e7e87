package validator

import (
	"fmt"

	"github.com/mindwell/assessment-backend/internal/entity"
)

// Validator validates incoming API requests before they reach a usecase.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateStartSession validates StartSessionRequest
func (v *Validator) ValidateStartSession(req *entity.StartSessionRequest) error {
	if req.Mode == "" {
		return fmt.Errorf("%w: mode", entity.ErrMissingField)
	}
	if err := req.Mode.Validate(); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
	}
	return nil
}

// ValidateSubmitAnswer validates answer submission
func (v *Validator) ValidateSubmitAnswer(req *entity.SubmitAnswerRequest) error {
	if req.Value == nil {
		return fmt.Errorf("%w: value", entity.ErrMissingField)
	}
	return nil
}

// ValidateReportFormat validates the report format query parameter;
// an empty format defaults to markdown.
func (v *Validator) ValidateReportFormat(format entity.ReportFormat) (entity.ReportFormat, error) {
	if format == "" {
		return entity.FormatMarkdown, nil
	}
	if err := format.Validate(); err != nil {
		return "", err
	}
	return format, nil
}
