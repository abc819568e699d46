package models

// FeeStatus defines a student's fee payment state
type FeeStatus string

const (
	FeePaid FeeStatus = "Paid"
	FeeDue  FeeStatus = "Due"
)

// Valid reports whether the value is one of the known fee states.
func (s FeeStatus) Valid() bool {
	return s == FeePaid || s == FeeDue
}

// Student represents a resident student record.
//
// ID is assigned by the state container at creation and is immutable
// afterwards. RoomNumber references Room.RoomNumber and is validated against
// the current room set on add/update. CheckInDate is an ISO 8601 date string
// (YYYY-MM-DD).
type Student struct {
	ID          string    `json:"id" example:"6f1c7a0e-9f4b-4f6a-a3c7-2d1f6b5e8a90"`
	Name        string    `json:"name" example:"Arjun Kumar"`
	StudentID   string    `json:"studentId" example:"S2024001"` // institution-assigned code
	RoomNumber  int       `json:"roomNumber" example:"101"`
	Phone       string    `json:"phone" example:"9876543210"`
	CheckInDate string    `json:"checkInDate" example:"2024-07-01"`
	FeeStatus   FeeStatus `json:"feeStatus" example:"Paid"`
}
