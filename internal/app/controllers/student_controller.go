package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hostelhive/hostelhive/internal/app/models/dto"
	"github.com/hostelhive/hostelhive/internal/app/services"
	"github.com/hostelhive/hostelhive/internal/middleware"
)

// StudentController handles student registry operations
type StudentController struct {
	studentService *services.StudentService
	feeService     *services.FeeService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, feeService *services.FeeService) *StudentController {
	return &StudentController{
		studentService: studentService,
		feeService:     feeService,
	}
}

// GetAllStudents retrieves the student collection
// @Summary Get all students
// @Description Retrieves the full student list, optionally filtered by fee status
// @Tags students
// @Accept json
// @Produce json
// @Param feeStatus query string false "Fee status filter" Enums(all, Paid, Due)
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid fee status filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx.Query("feeStatus"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// CreateStudent registers a new student
// @Summary Register a student
// @Description Registers a new student and assigns them to a room
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Add(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UpdateStudent replaces an existing student record
// @Summary Update a student
// @Description Replaces the full student record with the provided information
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student record ID"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Update(ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes a student record
// @Summary Delete a student
// @Description Removes the student record; deleting an unknown ID is a no-op
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student record ID"
// @Success 204 "Student deleted successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetFeeStatus changes a student's fee status
// @Summary Set fee status
// @Description Sets the student's fee status to Paid or Due
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student record ID"
// @Param request body dto.SetFeeStatusRequest true "New fee status"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Fee status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid fee status"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/fee-status [put]
func (c *StudentController) SetFeeStatus(ctx *gin.Context) {
	var req dto.SetFeeStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.feeService.SetStatus(ctx.Param("id"), req.FeeStatus)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}
