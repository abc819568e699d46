// Package seed holds the fixed dataset loaded at process start. There is no
// persistence layer: every run begins from these records. The functions
// return fresh slices so tests can substitute or mutate their own copies.
package seed

import "github.com/hostelhive/hostelhive/internal/app/models"

// Students returns the initial student records.
func Students() []models.Student {
	return []models.Student{
		{ID: "1", Name: "Arjun Kumar", StudentID: "S2024001", RoomNumber: 101, Phone: "9876543210", CheckInDate: "2024-07-01", FeeStatus: models.FeePaid},
		{ID: "2", Name: "Priya Sharma", StudentID: "S2024002", RoomNumber: 102, Phone: "9876543211", CheckInDate: "2024-07-03", FeeStatus: models.FeePaid},
		{ID: "3", Name: "Rohan Gupta", StudentID: "S2024003", RoomNumber: 101, Phone: "9876543212", CheckInDate: "2024-07-05", FeeStatus: models.FeeDue},
		{ID: "4", Name: "Sneha Patel", StudentID: "S2024004", RoomNumber: 103, Phone: "9876543213", CheckInDate: "2024-07-10", FeeStatus: models.FeePaid},
		{ID: "5", Name: "Vikram Singh", StudentID: "S2024005", RoomNumber: 104, Phone: "9876543214", CheckInDate: "2024-07-12", FeeStatus: models.FeePaid},
		{ID: "6", Name: "Anjali Verma", StudentID: "S2024006", RoomNumber: 102, Phone: "9876543215", CheckInDate: "2024-07-15", FeeStatus: models.FeeDue},
		{ID: "7", Name: "Karan Malhotra", StudentID: "S2024007", RoomNumber: 201, Phone: "9876543216", CheckInDate: "2024-08-01", FeeStatus: models.FeePaid},
		{ID: "8", Name: "Meera Desai", StudentID: "S2024008", RoomNumber: 202, Phone: "9876543217", CheckInDate: "2024-08-02", FeeStatus: models.FeePaid},
	}
}

// Rooms returns the initial room records. Occupants and the Occupied/Vacant
// statuses listed here are only hints; the state container reconciles them
// against the student records at construction. The Maintenance flag on room
// 204 is authoritative.
func Rooms() []models.Room {
	return []models.Room{
		{RoomNumber: 101, Capacity: 2, Occupants: 2, Status: models.RoomOccupied},
		{RoomNumber: 102, Capacity: 2, Occupants: 2, Status: models.RoomOccupied},
		{RoomNumber: 103, Capacity: 2, Occupants: 1, Status: models.RoomOccupied},
		{RoomNumber: 104, Capacity: 2, Occupants: 1, Status: models.RoomOccupied},
		{RoomNumber: 201, Capacity: 3, Occupants: 1, Status: models.RoomOccupied},
		{RoomNumber: 202, Capacity: 3, Occupants: 1, Status: models.RoomOccupied},
		{RoomNumber: 203, Capacity: 3, Occupants: 0, Status: models.RoomVacant},
		{RoomNumber: 204, Capacity: 3, Occupants: 0, Status: models.RoomMaintenance},
		{RoomNumber: 301, Capacity: 1, Occupants: 0, Status: models.RoomVacant},
		{RoomNumber: 302, Capacity: 1, Occupants: 0, Status: models.RoomVacant},
	}
}
