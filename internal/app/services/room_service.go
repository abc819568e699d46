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

// RoomService exposes room views and the single out-of-band room mutation,
// the maintenance flag. Rooms themselves are provisioned at seed time and
// never created or deleted here.
type RoomService struct {
	container *state.Container
	recorder  *metrics.Recorder
	logger    zerolog.Logger
}

// NewRoomService creates a new room service instance
func NewRoomService(container *state.Container, recorder *metrics.Recorder, logger zerolog.Logger) *RoomService {
	return &RoomService{
		container: container,
		recorder:  recorder,
		logger:    logger,
	}
}

// List returns the current room collection.
func (s *RoomService) List() []models.Room {
	return s.container.Rooms()
}

// Available returns the rooms that can be offered for an assignment: vacant,
// or occupied below capacity. Rooms under maintenance are never offered.
// When current is a valid room number (editing an existing student), that
// room is always included so the student is not orphaned by the selection,
// even if it is nominally full.
func (s *RoomService) Available(current int) []models.Room {
	rooms := s.container.Rooms()
	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.HasSpace() || (current > 0 && room.RoomNumber == current) {
			available = append(available, room)
		}
	}
	return available
}

// SetMaintenance sets or clears the maintenance flag on a room and returns
// the room's state after reconciliation.
func (s *RoomService) SetMaintenance(number int, maintenance bool) (models.Room, error) {
	start := time.Now()

	if !s.container.SetRoomMaintenance(number, maintenance) {
		s.recorder.Observe("room_set_maintenance", false, time.Since(start))
		return models.Room{}, fmt.Errorf("%w: %d", apperrors.ErrRoomNotFound, number)
	}

	room, _ := s.container.FindRoom(number)
	s.recorder.Observe("room_set_maintenance", true, time.Since(start))
	s.logger.Info().Int("roomNumber", number).Bool("maintenance", maintenance).Msg("Room maintenance flag changed")
	return room, nil
}
