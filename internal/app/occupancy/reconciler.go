// Package occupancy derives room state from the student collection.
//
// The reconciler is the single source of truth for Room.Occupants and for
// the Occupied/Vacant status transition: every mutation of the student
// collection is followed by a full recomputation over all rooms. Fee-status
// changes do not go through here since they cannot affect room membership.
package occupancy

import "github.com/hostelhive/hostelhive/internal/app/models"

// Reconcile recomputes occupant counts and statuses for every room from the
// current student collection. It is a pure function: the inputs are not
// modified and the result is a full replacement room slice, whether or not
// any individual room changed.
//
// Student room numbers that match no room are tallied but produce no output;
// they are dropped, not errored. A room in Maintenance keeps that status
// regardless of its occupant count, but its occupant count is still updated.
func Reconcile(rooms []models.Room, students []models.Student) []models.Room {
	counts := make(map[int]int, len(rooms))
	for _, student := range students {
		counts[student.RoomNumber]++
	}

	out := make([]models.Room, len(rooms))
	for i, room := range rooms {
		room.Occupants = counts[room.RoomNumber]
		if room.Status != models.RoomMaintenance {
			if room.Occupants > 0 {
				room.Status = models.RoomOccupied
			} else {
				room.Status = models.RoomVacant
			}
		}
		out[i] = room
	}
	return out
}
