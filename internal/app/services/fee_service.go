package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostelhive/hostelhive/internal/app/models"
	"github.com/hostelhive/hostelhive/internal/app/state"
	"github.com/hostelhive/hostelhive/internal/pkg/apperrors"
	"github.com/hostelhive/hostelhive/internal/pkg/metrics"
)

// FeeService handles fee status transitions. Both directions (Paid to Due
// and back) are always permitted, no history is retained, and room state is
// never touched.
type FeeService struct {
	container *state.Container
	recorder  *metrics.Recorder
	logger    zerolog.Logger
}

// NewFeeService creates a new fee service instance
func NewFeeService(container *state.Container, recorder *metrics.Recorder, logger zerolog.Logger) *FeeService {
	return &FeeService{
		container: container,
		recorder:  recorder,
		logger:    logger,
	}
}

// SetStatus replaces the fee status of the matching student and returns the
// updated record.
func (s *FeeService) SetStatus(id string, status string) (models.Student, error) {
	start := time.Now()

	feeStatus := models.FeeStatus(status)
	if !feeStatus.Valid() {
		s.recorder.Observe("fee_set_status", false, time.Since(start))
		return models.Student{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidFeeStatus, status)
	}

	if !s.container.SetFeeStatus(id, feeStatus) {
		s.recorder.Observe("fee_set_status", false, time.Since(start))
		return models.Student{}, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, id)
	}

	student, _ := s.container.FindStudent(id)
	s.recorder.Observe("fee_set_status", true, time.Since(start))
	s.logger.Info().Str("studentId", id).Str("feeStatus", status).Msg("Fee status changed")
	return student, nil
}
