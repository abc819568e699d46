package services

import (
	"github.com/rs/zerolog"

	"github.com/hostelhive/hostelhive/internal/app/state"
	"github.com/hostelhive/hostelhive/internal/pkg/metrics"
)

// Services bundles the application services around a shared state container.
type Services struct {
	Students  *StudentService
	Fees      *FeeService
	Rooms     *RoomService
	Dashboard *DashboardService
}

// NewServices wires all services against the given container.
func NewServices(container *state.Container, recorder *metrics.Recorder, logger zerolog.Logger) *Services {
	return &Services{
		Students:  NewStudentService(container, recorder, logger),
		Fees:      NewFeeService(container, recorder, logger),
		Rooms:     NewRoomService(container, recorder, logger),
		Dashboard: NewDashboardService(container),
	}
}
