package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/services"
	"github.com/rao756/utms-backend/internal/middleware"
)

// AdminChallanController handles challan configuration endpoints
type AdminChallanController struct {
	configService services.AdminChallanService
}

// NewAdminChallanController creates a new AdminChallanController
func NewAdminChallanController(configService services.AdminChallanService) *AdminChallanController {
	return &AdminChallanController{configService: configService}
}

// GetConfig returns the effective configuration, seeding the default one
// on first read
// @Summary Get challan configuration
// @Tags admin-challan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "The configuration"
// @Router /admin-challan [get]
func (c *AdminChallanController) GetConfig(ctx *gin.Context) {
	config, err := c.configService.GetConfig(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"adminChallan": config})
}

// CreateConfig stores the initial configuration
// @Summary Create challan configuration
// @Tags admin-challan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminChallanRequest true "Configuration values; omitted fields take defaults"
// @Success 201 {object} map[string]interface{} "Created configuration"
// @Failure 409 {object} dto.ErrorResponse "Configuration already exists"
// @Router /admin-challan [post]
func (c *AdminChallanController) CreateConfig(ctx *gin.Context) {
	var req dto.AdminChallanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	config, err := c.configService.CreateConfig(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Challan configuration created", "adminChallan": config})
}

// UpdateConfig applies a partial update to the latest configuration
// @Summary Update challan configuration
// @Tags admin-challan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminChallanRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Updated configuration"
// @Failure 400 {object} dto.ErrorResponse "Invalid maxChallan value"
// @Router /admin-challan [put]
func (c *AdminChallanController) UpdateConfig(ctx *gin.Context) {
	var req dto.AdminChallanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	config, err := c.configService.UpdateConfig(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Challan configuration updated", "adminChallan": config})
}

// UpdateConfigByID applies a partial update to one configuration row
// @Summary Update a challan configuration by id
// @Tags admin-challan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Configuration ID"
// @Param request body dto.AdminChallanRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Updated configuration"
// @Failure 400 {object} dto.ErrorResponse "Invalid maxChallan value or unknown id"
// @Router /admin-challan/{id} [put]
func (c *AdminChallanController) UpdateConfigByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Configuration ID must be a number")))
		return
	}

	var req dto.AdminChallanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	config, err := c.configService.UpdateConfigByID(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Challan configuration updated", "adminChallan": config})
}
