package dto

import "github.com/hostelhive/hostelhive/internal/app/models"

// DashboardMetrics is the computed summary shown on the dashboard page.
// OccupancyRate is pre-formatted with one decimal place ("60.0%"); it is
// "0%" when no rooms exist.
type DashboardMetrics struct {
	TotalStudents  int              `json:"totalStudents" example:"8"`
	OccupiedRooms  int              `json:"occupiedRooms" example:"6"`
	TotalRooms     int              `json:"totalRooms" example:"10"`
	OccupancyRate  string           `json:"occupancyRate" example:"60.0%"`
	FeesDue        int              `json:"feesDue" example:"2"`
	RecentCheckIns []models.Student `json:"recentCheckIns"`
}
