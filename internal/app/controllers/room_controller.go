package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hostelhive/hostelhive/internal/app/models/dto"
	"github.com/hostelhive/hostelhive/internal/app/services"
	"github.com/hostelhive/hostelhive/internal/middleware"
)

// RoomController handles room views and the maintenance flag
type RoomController struct {
	roomService *services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

// GetAllRooms retrieves the room collection
// @Summary Get all rooms
// @Description Retrieves every room with its reconciled occupancy and status
// @Tags rooms
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Rooms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [get]
func (c *RoomController) GetAllRooms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.roomService.List(),
		Timestamp: time.Now(),
	})
}

// GetAvailableRooms retrieves rooms that can accept an assignment
// @Summary Get available rooms
// @Description Retrieves rooms with free space; pass current to keep a student's existing room in the list while editing
// @Tags rooms
// @Accept json
// @Produce json
// @Param current query int false "Room number to always include"
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Available rooms retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid current room number"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/available [get]
func (c *RoomController) GetAvailableRooms(ctx *gin.Context) {
	current := 0
	if raw := ctx.Query("current"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid current room number")
			errorDetail = errorDetail.WithDetails("current must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		current = parsed
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.roomService.Available(current),
		Timestamp: time.Now(),
	})
}

// SetMaintenance sets or clears a room's maintenance flag
// @Summary Set room maintenance
// @Description Sets or clears the maintenance flag; cleared rooms are reconciled back to Occupied or Vacant
// @Tags rooms
// @Accept json
// @Produce json
// @Param roomNumber path int true "Room number"
// @Param request body dto.SetMaintenanceRequest true "Maintenance flag"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Maintenance flag updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{roomNumber}/maintenance [put]
func (c *RoomController) SetMaintenance(ctx *gin.Context) {
	number, err := strconv.Atoi(ctx.Param("roomNumber"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room number")
		errorDetail = errorDetail.WithDetails("Room number must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SetMaintenanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	room, err := c.roomService.SetMaintenance(number, *req.Maintenance)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      room,
		Timestamp: time.Now(),
	})
}
