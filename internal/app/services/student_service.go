package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostelhive/hostelhive/internal/app/models"
	"github.com/hostelhive/hostelhive/internal/app/models/dto"
	"github.com/hostelhive/hostelhive/internal/app/state"
	"github.com/hostelhive/hostelhive/internal/pkg/apperrors"
	"github.com/hostelhive/hostelhive/internal/pkg/metrics"
	"github.com/hostelhive/hostelhive/internal/pkg/validation"
)

// Fee filter values accepted by List.
const (
	FeeFilterAll = "all"
)

// StudentService handles student registry operations. Every successful
// mutation goes through the state container, which reconciles room state
// before the change becomes visible.
type StudentService struct {
	container *state.Container
	recorder  *metrics.Recorder
	logger    zerolog.Logger
	now       func() time.Time
}

// NewStudentService creates a new student service instance
func NewStudentService(container *state.Container, recorder *metrics.Recorder, logger zerolog.Logger) *StudentService {
	return &StudentService{
		container: container,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns the current student collection, optionally restricted by fee
// status. Filter values: "" or "all" for everyone, "Paid", "Due".
func (s *StudentService) List(filter string) ([]models.Student, error) {
	students := s.container.Students()
	if filter == "" || filter == FeeFilterAll {
		return students, nil
	}

	status := models.FeeStatus(filter)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown fee filter %q", apperrors.ErrValidationFailed, filter)
	}

	filtered := make([]models.Student, 0, len(students))
	for _, student := range students {
		if student.FeeStatus == status {
			filtered = append(filtered, student)
		}
	}
	return filtered, nil
}

// Add validates and registers a new student. The ID is assigned by the
// container; a missing check-in date defaults to today.
func (s *StudentService) Add(req dto.CreateStudentRequest) (models.Student, error) {
	start := s.now()

	student, err := s.buildStudent(req.Name, req.StudentID, req.RoomNumber, req.Phone, req.CheckInDate, req.FeeStatus)
	if err != nil {
		s.recorder.Observe("student_add", false, s.now().Sub(start))
		return models.Student{}, err
	}

	created := s.container.AddStudent(student)
	s.recorder.Observe("student_add", true, s.now().Sub(start))
	s.logger.Info().Str("studentId", created.ID).Int("roomNumber", created.RoomNumber).Msg("Student registered")
	return created, nil
}

// Update replaces the full record with the given ID, preserving the ID.
// Unlike delete, a missing ID is surfaced as ErrStudentNotFound.
func (s *StudentService) Update(id string, req dto.UpdateStudentRequest) (models.Student, error) {
	start := s.now()

	student, err := s.buildStudent(req.Name, req.StudentID, req.RoomNumber, req.Phone, req.CheckInDate, req.FeeStatus)
	if err != nil {
		s.recorder.Observe("student_update", false, s.now().Sub(start))
		return models.Student{}, err
	}
	student.ID = id

	if !s.container.UpdateStudent(student) {
		s.recorder.Observe("student_update", false, s.now().Sub(start))
		return models.Student{}, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, id)
	}

	s.recorder.Observe("student_update", true, s.now().Sub(start))
	s.logger.Info().Str("studentId", id).Int("roomNumber", student.RoomNumber).Msg("Student updated")
	return student, nil
}

// Delete removes the record with the given ID. A missing ID is a silent
// no-op: the record is absent afterwards either way.
func (s *StudentService) Delete(id string) error {
	start := s.now()

	if !s.container.DeleteStudent(id) {
		s.logger.Debug().Str("studentId", id).Msg("Delete of unknown student ignored")
	}
	s.recorder.Observe("student_delete", true, s.now().Sub(start))
	return nil
}

// buildStudent validates the shared add/update fields and assembles the
// record. Room numbers must reference an existing room at assignment time;
// capacity overflow is not rejected.
func (s *StudentService) buildStudent(name, studentID string, roomNumber int, phone, checkInDate, feeStatus string) (models.Student, error) {
	if !validation.NewStringValidation(name).WithMinLength(validation.NameMinLength).WithMaxLength(validation.NameMaxLength).Validate() {
		return models.Student{}, fmt.Errorf("%w: name must be %d-%d characters", apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}
	if !validation.NewStringValidation(studentID).Validate() {
		return models.Student{}, fmt.Errorf("%w: studentId cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.NewStringValidation(phone).Validate() {
		return models.Student{}, fmt.Errorf("%w: phone cannot be empty", apperrors.ErrValidationFailed)
	}

	// studentId and phone are free text by design; shape mismatches are
	// only worth a warning.
	if !validation.CompiledPatterns.StudentCode.MatchString(studentID) {
		s.logger.Warn().Str("studentCode", studentID).Msg("Student code does not match the expected pattern")
	}
	if !validation.CompiledPatterns.Phone.MatchString(phone) {
		s.logger.Warn().Str("phone", phone).Msg("Phone number does not match the expected pattern")
	}

	if roomNumber <= 0 {
		return models.Student{}, fmt.Errorf("%w", apperrors.ErrRoomNumberZero)
	}
	if _, ok := s.container.FindRoom(roomNumber); !ok {
		return models.Student{}, fmt.Errorf("%w: %d", apperrors.ErrRoomNotFound, roomNumber)
	}

	if checkInDate == "" {
		checkInDate = s.now().Format(validation.CheckInDateLayout)
	} else if _, err := time.Parse(validation.CheckInDateLayout, checkInDate); err != nil {
		return models.Student{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCheckIn, checkInDate)
	}

	status := models.FeeStatus(feeStatus)
	if !status.Valid() {
		return models.Student{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidFeeStatus, feeStatus)
	}

	return models.Student{
		Name:        name,
		StudentID:   studentID,
		RoomNumber:  roomNumber,
		Phone:       phone,
		CheckInDate: checkInDate,
		FeeStatus:   status,
	}, nil
}
