package dto

// SetMaintenanceRequest sets or clears a room's out-of-band maintenance flag
type SetMaintenanceRequest struct {
	Maintenance *bool `json:"maintenance" binding:"required"`
}
