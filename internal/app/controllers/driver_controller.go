package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/services"
	"github.com/rao756/utms-backend/internal/middleware"
)

// DriverController handles fleet driver endpoints
type DriverController struct {
	driverService *services.DriverService
}

// NewDriverController creates a new DriverController
func NewDriverController(driverService *services.DriverService) *DriverController {
	return &DriverController{driverService: driverService}
}

// CreateDriver registers a new driver
// @Summary Add a driver
// @Tags drivers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Driver true "Driver details"
// @Success 201 {object} map[string]interface{} "Driver created"
// @Failure 409 {object} dto.ErrorResponse "License already registered"
// @Router /drivers [post]
func (c *DriverController) CreateDriver(ctx *gin.Context) {
	var driver models.Driver
	if err := ctx.ShouldBindJSON(&driver); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	created, err := c.driverService.CreateDriver(ctx, &driver)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Driver added successfully", "driver": created})
}

// GetDrivers lists active drivers
// @Summary List drivers
// @Tags drivers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Active drivers"
// @Router /drivers [get]
func (c *DriverController) GetDrivers(ctx *gin.Context) {
	drivers, err := c.driverService.GetDrivers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"drivers": drivers})
}

// UpdateDriver applies a partial update
// @Summary Update a driver
// @Tags drivers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Driver ID"
// @Param request body dto.DriverUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Updated driver"
// @Failure 404 {object} dto.ErrorResponse "Driver not found"
// @Router /drivers/{id} [put]
func (c *DriverController) UpdateDriver(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Driver ID must be a number")))
		return
	}

	var req dto.DriverUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	driver, err := c.driverService.UpdateDriver(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Driver updated successfully", "driver": driver})
}

// DeleteDriver deactivates a driver
// @Summary Remove a driver
// @Tags drivers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Driver ID"
// @Success 200 {object} dto.SuccessResponse "Driver removed"
// @Failure 404 {object} dto.ErrorResponse "Driver not found"
// @Router /drivers/{id} [delete]
func (c *DriverController) DeleteDriver(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Driver ID must be a number")))
		return
	}

	if err := c.driverService.DeleteDriver(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Driver removed successfully"})
}
