package models

// RoomStatus defines the occupancy state of a room
type RoomStatus string

const (
	RoomOccupied    RoomStatus = "Occupied"
	RoomVacant      RoomStatus = "Vacant"
	RoomMaintenance RoomStatus = "Maintenance"
)

// Room represents a hostel room. Rooms are provisioned at seed time and are
// never created or deleted by the application.
//
// Occupants and the Occupied/Vacant half of Status are derived state: they
// are recomputed from the student collection by the occupancy reconciler and
// must never be set directly by callers. Maintenance is an out-of-band
// administrative flag the reconciler never overrides.
type Room struct {
	RoomNumber int        `json:"roomNumber" example:"101"`
	Capacity   int        `json:"capacity" example:"2"`
	Occupants  int        `json:"occupants" example:"1"`
	Status     RoomStatus `json:"status" example:"Occupied"`
}

// HasSpace reports whether the room can be offered for a new assignment:
// vacant, or occupied below capacity. Rooms under maintenance are never
// offered.
func (r Room) HasSpace() bool {
	switch r.Status {
	case RoomVacant:
		return true
	case RoomOccupied:
		return r.Occupants < r.Capacity
	default:
		return false
	}
}
