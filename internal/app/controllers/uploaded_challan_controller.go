package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/services"
	"github.com/rao756/utms-backend/internal/middleware"
)

// UploadedChallanController handles payment proof endpoints
type UploadedChallanController struct {
	uploadedService *services.UploadedChallanService
}

// NewUploadedChallanController creates a new UploadedChallanController
func NewUploadedChallanController(uploadedService *services.UploadedChallanService) *UploadedChallanController {
	return &UploadedChallanController{uploadedService: uploadedService}
}

// Upload stores a paid challan image for the authenticated student
// @Summary Upload challan proof
// @Description Stores a proof-of-payment image for the logged-in student; the review starts in the pending state
// @Tags uploaded-challans
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Scanned or photographed paid challan"
// @Success 201 {object} map[string]interface{} "Stored submission"
// @Failure 400 {object} dto.ErrorResponse "Missing image"
// @Router /uploaded-challans [post]
func (c *UploadedChallanController) Upload(ctx *gin.Context) {
	image, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Challan image is required").WithField("image")))
		return
	}

	userID := ctx.GetInt64(middleware.ContextUserID)
	rollNo := ctx.GetString(middleware.ContextRollNo)

	upload, err := c.uploadedService.Upload(ctx, userID, rollNo, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Challan uploaded successfully", "uploadedChallan": upload})
}

// GetUploads lists active submissions with the submitting user's profile
// @Summary List challan uploads
// @Tags uploaded-challans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Active submissions, newest first"
// @Router /uploaded-challans [get]
func (c *UploadedChallanController) GetUploads(ctx *gin.Context) {
	uploads, err := c.uploadedService.GetUploads(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"uploadedChallans": uploads})
}

// ReviewUpload moves a submission to Paid or Not Paid
// @Summary Review a challan upload
// @Tags uploaded-challans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Upload ID"
// @Param request body dto.UploadedChallanStatusRequest true "Review decision"
// @Success 200 {object} map[string]interface{} "Updated submission"
// @Failure 404 {object} dto.ErrorResponse "Upload not found"
// @Router /uploaded-challans/{id} [put]
func (c *UploadedChallanController) ReviewUpload(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Upload ID must be a number")))
		return
	}

	var req dto.UploadedChallanStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	upload, err := c.uploadedService.ReviewUpload(ctx, id, req.ChallanStatus)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Challan status updated", "uploadedChallan": upload})
}

// DeleteUpload deactivates a submission
// @Summary Remove a challan upload
// @Tags uploaded-challans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Upload ID"
// @Success 200 {object} dto.SuccessResponse "Upload removed"
// @Failure 404 {object} dto.ErrorResponse "Upload not found"
// @Router /uploaded-challans/{id} [delete]
func (c *UploadedChallanController) DeleteUpload(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Upload ID must be a number")))
		return
	}

	if err := c.uploadedService.DeleteUpload(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Upload removed successfully"})
}
