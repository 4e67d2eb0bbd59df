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

// BusController handles fleet bus endpoints
type BusController struct {
	busService *services.BusService
}

// NewBusController creates a new BusController
func NewBusController(busService *services.BusService) *BusController {
	return &BusController{busService: busService}
}

// CreateBus registers a new bus
// @Summary Add a bus
// @Tags buses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Bus true "Bus details"
// @Success 201 {object} map[string]interface{} "Bus created"
// @Failure 409 {object} dto.ErrorResponse "Bus number already registered"
// @Router /buses [post]
func (c *BusController) CreateBus(ctx *gin.Context) {
	var bus models.Bus
	if err := ctx.ShouldBindJSON(&bus); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	created, err := c.busService.CreateBus(ctx, &bus)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Bus added successfully", "bus": created})
}

// GetBuses lists active buses
// @Summary List buses
// @Tags buses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Active buses"
// @Router /buses [get]
func (c *BusController) GetBuses(ctx *gin.Context) {
	buses, err := c.busService.GetBuses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"buses": buses})
}

// UpdateBus applies a partial update
// @Summary Update a bus
// @Tags buses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bus ID"
// @Param request body dto.BusUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Updated bus"
// @Failure 404 {object} dto.ErrorResponse "Bus not found"
// @Router /buses/{id} [put]
func (c *BusController) UpdateBus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Bus ID must be a number")))
		return
	}

	var req dto.BusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	bus, err := c.busService.UpdateBus(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Bus updated successfully", "bus": bus})
}

// DeleteBus deactivates a bus
// @Summary Remove a bus
// @Tags buses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bus ID"
// @Success 200 {object} dto.SuccessResponse "Bus removed"
// @Failure 404 {object} dto.ErrorResponse "Bus not found"
// @Router /buses/{id} [delete]
func (c *BusController) DeleteBus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Bus ID must be a number")))
		return
	}

	if err := c.busService.DeleteBus(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Bus removed successfully"})
}
