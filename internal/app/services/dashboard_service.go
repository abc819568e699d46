package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/hostelhive/hostelhive/internal/app/models"
	"github.com/hostelhive/hostelhive/internal/app/models/dto"
	"github.com/hostelhive/hostelhive/internal/app/state"
	"github.com/hostelhive/hostelhive/internal/pkg/validation"
)

// recentCheckInLimit caps the dashboard's recent check-in table.
const recentCheckInLimit = 5

// DashboardService computes the summary metrics shown on the dashboard.
// Everything is recomputed on demand from the live collections; nothing is
// cached.
type DashboardService struct {
	container *state.Container
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(container *state.Container) *DashboardService {
	return &DashboardService{container: container}
}

// Metrics returns the current dashboard summary.
func (s *DashboardService) Metrics() dto.DashboardMetrics {
	students := s.container.Students()
	rooms := s.container.Rooms()

	occupied := 0
	for _, room := range rooms {
		if room.Status == models.RoomOccupied {
			occupied++
		}
	}

	feesDue := 0
	for _, student := range students {
		if student.FeeStatus == models.FeeDue {
			feesDue++
		}
	}

	rate := "0%"
	if len(rooms) > 0 {
		rate = fmt.Sprintf("%.1f%%", float64(occupied)/float64(len(rooms))*100)
	}

	return dto.DashboardMetrics{
		TotalStudents:  len(students),
		OccupiedRooms:  occupied,
		TotalRooms:     len(rooms),
		OccupancyRate:  rate,
		FeesDue:        feesDue,
		RecentCheckIns: recentCheckIns(students),
	}
}

// recentCheckIns returns the most recently checked-in students, newest
// first. The sort is stable so ties keep their collection order.
func recentCheckIns(students []models.Student) []models.Student {
	recent := append([]models.Student(nil), students...)
	sort.SliceStable(recent, func(i, j int) bool {
		return checkInTime(recent[i]).After(checkInTime(recent[j]))
	})
	if len(recent) > recentCheckInLimit {
		recent = recent[:recentCheckInLimit]
	}
	return recent
}

// checkInTime parses a student's check-in date; malformed dates sort last.
func checkInTime(student models.Student) time.Time {
	t, err := time.Parse(validation.CheckInDateLayout, student.CheckInDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
