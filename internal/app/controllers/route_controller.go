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

// RouteController handles bus route endpoints
type RouteController struct {
	routeService *services.RouteService
}

// NewRouteController creates a new RouteController
func NewRouteController(routeService *services.RouteService) *RouteController {
	return &RouteController{routeService: routeService}
}

// CreateRoute registers a new route
// @Summary Add a route
// @Tags routes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Route true "Route details"
// @Success 201 {object} map[string]interface{} "Route created"
// @Failure 409 {object} dto.ErrorResponse "Route ID already registered"
// @Router /routes [post]
func (c *RouteController) CreateRoute(ctx *gin.Context) {
	var route models.Route
	if err := ctx.ShouldBindJSON(&route); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	created, err := c.routeService.CreateRoute(ctx, &route)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Route added successfully", "route": created})
}

// GetRoutes lists active routes
// @Summary List routes
// @Tags routes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Active routes"
// @Router /routes [get]
func (c *RouteController) GetRoutes(ctx *gin.Context) {
	routes, err := c.routeService.GetRoutes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"routes": routes})
}

// UpdateRoute applies a partial update
// @Summary Update a route
// @Tags routes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Route ID"
// @Param request body dto.RouteUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Updated route"
// @Failure 404 {object} dto.ErrorResponse "Route not found"
// @Router /routes/{id} [put]
func (c *RouteController) UpdateRoute(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Route ID must be a number")))
		return
	}

	var req dto.RouteUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	route, err := c.routeService.UpdateRoute(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Route updated successfully", "route": route})
}

// DeleteRoute deactivates a route
// @Summary Remove a route
// @Tags routes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Route ID"
// @Success 200 {object} dto.SuccessResponse "Route removed"
// @Failure 404 {object} dto.ErrorResponse "Route not found"
// @Router /routes/{id} [delete]
func (c *RouteController) DeleteRoute(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Route ID must be a number")))
		return
	}

	if err := c.routeService.DeleteRoute(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Route removed successfully"})
}
