package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hostelhive/hostelhive/internal/app/models"
	"github.com/hostelhive/hostelhive/internal/pkg/apperrors"
)

func TestSetStatusBothDirections(t *testing.T) {
	container := newTestContainer()
	svc := NewFeeService(container, nil, zerolog.Nop())

	student, err := svc.SetStatus("3", "Paid")
	if err != nil {
		t.Fatalf("SetStatus to Paid returned error: %v", err)
	}
	if student.FeeStatus != models.FeePaid {
		t.Fatalf("expected Paid, got %q", student.FeeStatus)
	}

	student, err = svc.SetStatus("3", "Due")
	if err != nil {
		t.Fatalf("SetStatus back to Due returned error: %v", err)
	}
	if student.FeeStatus != models.FeeDue {
		t.Fatalf("expected Due, got %q", student.FeeStatus)
	}
}

func TestSetStatusLeavesRoomsAlone(t *testing.T) {
	container := newTestContainer()
	svc := NewFeeService(container, nil, zerolog.Nop())

	before := container.Rooms()
	if _, err := svc.SetStatus("1", "Due"); err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	after := container.Rooms()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("fee transition changed room state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestSetStatusErrors(t *testing.T) {
	svc := NewFeeService(newTestContainer(), nil, zerolog.Nop())

	if _, err := svc.SetStatus("1", "Pending"); !errors.Is(err, apperrors.ErrInvalidFeeStatus) {
		t.Fatalf("expected ErrInvalidFeeStatus, got %v", err)
	}
	if _, err := svc.SetStatus("does-not-exist", "Paid"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
