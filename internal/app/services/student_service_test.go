package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostelhive/hostelhive/internal/app/models"
	"github.com/hostelhive/hostelhive/internal/app/models/dto"
	"github.com/hostelhive/hostelhive/internal/app/state"
	"github.com/hostelhive/hostelhive/internal/pkg/apperrors"
	"github.com/hostelhive/hostelhive/internal/seed"
)

func sequentialIDs() state.IDGenerator {
	next := 100
	return func() string {
		next++
		return fmt.Sprintf("id-%d", next)
	}
}

func newTestContainer() *state.Container {
	return state.NewContainer(seed.Students(), seed.Rooms(), state.WithIDGenerator(sequentialIDs()))
}

func newStudentService(container *state.Container) *StudentService {
	svc := NewStudentService(container, nil, zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestListFeeFilters(t *testing.T) {
	svc := newStudentService(newTestContainer())

	all, err := svc.List("")
	if err != nil {
		t.Fatalf("List(\"\") returned error: %v", err)
	}
	if len(all) != 8 {
		t.Fatalf("expected 8 students, got %d", len(all))
	}

	explicitAll, err := svc.List("all")
	if err != nil {
		t.Fatalf("List(all) returned error: %v", err)
	}
	if len(explicitAll) != len(all) {
		t.Fatalf("List(all) returned %d students, want %d", len(explicitAll), len(all))
	}

	due, err := svc.List("Due")
	if err != nil {
		t.Fatalf("List(Due) returned error: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 students with dues, got %d", len(due))
	}
	for _, s := range due {
		if s.FeeStatus != models.FeeDue {
			t.Fatalf("student %s leaked into Due filter with status %q", s.ID, s.FeeStatus)
		}
	}

	paid, err := svc.List("Paid")
	if err != nil {
		t.Fatalf("List(Paid) returned error: %v", err)
	}
	if len(paid)+len(due) != len(all) {
		t.Fatalf("filters do not partition the collection: %d paid + %d due != %d", len(paid), len(due), len(all))
	}

	if _, err := svc.List("Overdue"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed for unknown filter, got %v", err)
	}
}

func TestAddAssignsIDAndReconciles(t *testing.T) {
	container := newTestContainer()
	svc := newStudentService(container)

	created, err := svc.Add(dto.CreateStudentRequest{
		Name:        "Divya Nair",
		StudentID:   "S2024009",
		RoomNumber:  203,
		Phone:       "9876543218",
		CheckInDate: "2024-08-18",
		FeeStatus:   "Paid",
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.ID != "id-101" {
		t.Fatalf("expected generated ID id-101, got %q", created.ID)
	}

	room, _ := container.FindRoom(203)
	if room.Occupants != 1 || room.Status != models.RoomOccupied {
		t.Fatalf("room 203 not reconciled after add: %+v", room)
	}
}

func TestAddDefaultsCheckInDate(t *testing.T) {
	svc := newStudentService(newTestContainer())

	created, err := svc.Add(dto.CreateStudentRequest{
		Name:       "Divya Nair",
		StudentID:  "S2024009",
		RoomNumber: 203,
		Phone:      "9876543218",
		FeeStatus:  "Due",
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.CheckInDate != "2024-08-20" {
		t.Fatalf("expected default check-in date 2024-08-20, got %q", created.CheckInDate)
	}
}

func TestAddValidation(t *testing.T) {
	svc := newStudentService(newTestContainer())

	base := dto.CreateStudentRequest{
		Name:        "Divya Nair",
		StudentID:   "S2024009",
		RoomNumber:  203,
		Phone:       "9876543218",
		CheckInDate: "2024-08-18",
		FeeStatus:   "Paid",
	}

	req := base
	req.RoomNumber = 0
	if _, err := svc.Add(req); !errors.Is(err, apperrors.ErrRoomNumberZero) {
		t.Fatalf("expected ErrRoomNumberZero, got %v", err)
	}

	req = base
	req.RoomNumber = 999
	if _, err := svc.Add(req); !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound for unknown room, got %v", err)
	}

	req = base
	req.CheckInDate = "18-08-2024"
	if _, err := svc.Add(req); !errors.Is(err, apperrors.ErrInvalidCheckIn) {
		t.Fatalf("expected ErrInvalidCheckIn, got %v", err)
	}

	req = base
	req.FeeStatus = "Pending"
	if _, err := svc.Add(req); !errors.Is(err, apperrors.ErrInvalidFeeStatus) {
		t.Fatalf("expected ErrInvalidFeeStatus, got %v", err)
	}

	req = base
	req.Name = ""
	if _, err := svc.Add(req); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed for empty name, got %v", err)
	}
}

func TestUpdateMovesRooms(t *testing.T) {
	container := newTestContainer()
	svc := newStudentService(container)

	_, err := svc.Update("3", dto.UpdateStudentRequest{
		Name:        "Rohan Gupta",
		StudentID:   "S2024003",
		RoomNumber:  203,
		Phone:       "9876543212",
		CheckInDate: "2024-07-05",
		FeeStatus:   "Due",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	from, _ := container.FindRoom(101)
	if from.Occupants != 1 || from.Status != models.RoomOccupied {
		t.Fatalf("room 101 not reconciled after move: %+v", from)
	}
	to, _ := container.FindRoom(203)
	if to.Occupants != 1 || to.Status != models.RoomOccupied {
		t.Fatalf("room 203 not reconciled after move: %+v", to)
	}
}

func TestUpdateUnknownStudent(t *testing.T) {
	svc := newStudentService(newTestContainer())

	_, err := svc.Update("does-not-exist", dto.UpdateStudentRequest{
		Name:        "Nobody Here",
		StudentID:   "S2024099",
		RoomNumber:  203,
		Phone:       "9876543299",
		CheckInDate: "2024-08-18",
		FeeStatus:   "Paid",
	})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestDeleteVacatesRoom(t *testing.T) {
	container := newTestContainer()
	svc := newStudentService(container)

	// Room 101 starts with Arjun (1) and Rohan (3).
	if err := svc.Delete("1"); err != nil {
		t.Fatalf("first delete returned error: %v", err)
	}
	room, _ := container.FindRoom(101)
	if room.Occupants != 1 || room.Status != models.RoomOccupied {
		t.Fatalf("room 101 after first delete: %+v", room)
	}

	if err := svc.Delete("3"); err != nil {
		t.Fatalf("second delete returned error: %v", err)
	}
	room, _ = container.FindRoom(101)
	if room.Occupants != 0 || room.Status != models.RoomVacant {
		t.Fatalf("room 101 after second delete: %+v", room)
	}
}

func TestDeleteUnknownStudentIsNoOp(t *testing.T) {
	container := newTestContainer()
	svc := newStudentService(container)

	before := container.Students()
	if err := svc.Delete("does-not-exist"); err != nil {
		t.Fatalf("delete of unknown ID returned error: %v", err)
	}
	after := container.Students()
	if len(before) != len(after) {
		t.Fatalf("delete of unknown ID changed the collection: %d -> %d", len(before), len(after))
	}
}
