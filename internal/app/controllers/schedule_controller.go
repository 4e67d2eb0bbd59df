package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/services"
	"github.com/rao756/utms-backend/internal/middleware"
)

// ScheduleController handles bus timetable endpoints
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService}
}

// CreateSchedule publishes a timetable entry
// @Summary Add a schedule
// @Description Creates a timetable entry. A busId, a driverId and at least one stop are required; each stop needs a name, arrival time and departure time.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScheduleCreateRequest true "Schedule with its ordered stops"
// @Success 201 {object} map[string]interface{} "Schedule created"
// @Failure 400 {object} dto.ErrorResponse "Missing bus, driver or invalid stops"
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req dto.ScheduleCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.scheduleService.CreateSchedule(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Schedule added successfully", "schedule": schedule})
}

// GetSchedules lists every timetable entry
// @Summary List schedules
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "All schedules, newest first"
// @Router /schedules [get]
func (c *ScheduleController) GetSchedules(ctx *gin.Context) {
	schedules, err := c.scheduleService.GetSchedules(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// UpdateSchedule applies a partial update addressed by schedule id
// @Summary Update a schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scheduleId path string true "Public schedule ID"
// @Param request body dto.ScheduleUpdateRequest true "Fields to change; stops replace the stored list"
// @Success 200 {object} map[string]interface{} "Updated schedule"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{scheduleId} [patch]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	scheduleID := ctx.Param("scheduleId")

	var req dto.ScheduleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.scheduleService.UpdateSchedule(ctx, scheduleID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Schedule updated successfully", "schedule": schedule})
}

// DeleteSchedule removes a timetable entry
// @Summary Remove a schedule
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param scheduleId path string true "Public schedule ID"
// @Success 200 {object} dto.SuccessResponse "Schedule removed"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{scheduleId} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	scheduleID := ctx.Param("scheduleId")

	if err := c.scheduleService.DeleteSchedule(ctx, scheduleID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Schedule removed successfully"})
}
