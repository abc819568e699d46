package dto

// CreateStudentRequest represents student creation data. CheckInDate is
// optional; when omitted the service defaults it to today's date.
type CreateStudentRequest struct {
	Name        string `json:"name" binding:"required"`
	StudentID   string `json:"studentId" binding:"required"`
	RoomNumber  int    `json:"roomNumber" binding:"required,gt=0"`
	Phone       string `json:"phone" binding:"required"`
	CheckInDate string `json:"checkInDate"`
	FeeStatus   string `json:"feeStatus" binding:"required,oneof=Paid Due"`
}

// UpdateStudentRequest represents a full-record replacement. The target ID
// comes from the URL path, never from the body.
type UpdateStudentRequest struct {
	Name        string `json:"name" binding:"required"`
	StudentID   string `json:"studentId" binding:"required"`
	RoomNumber  int    `json:"roomNumber" binding:"required,gt=0"`
	Phone       string `json:"phone" binding:"required"`
	CheckInDate string `json:"checkInDate" binding:"required"`
	FeeStatus   string `json:"feeStatus" binding:"required,oneof=Paid Due"`
}

// SetFeeStatusRequest represents a fee status transition
type SetFeeStatusRequest struct {
	FeeStatus string `json:"feeStatus" binding:"required,oneof=Paid Due"`
}
