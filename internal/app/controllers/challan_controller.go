package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/services"
	"github.com/rao756/utms-backend/internal/middleware"
)

// ChallanController handles fee challan endpoints
type ChallanController struct {
	challanService services.ChallanService
}

// NewChallanController creates a new ChallanController
func NewChallanController(challanService services.ChallanService) *ChallanController {
	return &ChallanController{challanService: challanService}
}

// IssueChallan issues a fee challan to a student
// @Summary Issue a challan
// @Description Issues a fee challan if the student does not already hold one and neither the global nor the per-route quota is exhausted
// @Tags challans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChallanCreateRequest true "Student and route details"
// @Success 201 {object} map[string]interface{} "Issued challan with its serial number"
// @Failure 400 {object} dto.ErrorResponse "Duplicate roll number or quota exhausted"
// @Router /challans [post]
func (c *ChallanController) IssueChallan(ctx *gin.Context) {
	var req dto.ChallanCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	if req.RollNo == "" {
		// The authenticated student's own roll number is the default target
		req.RollNo = ctx.GetString(middleware.ContextRollNo)
	}
	if req.RollNo == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Roll number is required").WithField("rollNo")))
		return
	}

	challan, err := c.challanService.IssueChallan(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Challan generated successfully", "challan": challan})
}

// IssueChallanForRollNo issues a challan with the roll number taken from
// the path, the form the legacy dashboard posts
// @Summary Issue a challan for a roll number
// @Tags challans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rollNo path string true "Roll number"
// @Param request body dto.ChallanCreateRequest true "Student and route details"
// @Success 201 {object} map[string]interface{} "Issued challan with its serial number"
// @Failure 400 {object} dto.ErrorResponse "Duplicate roll number or quota exhausted"
// @Router /challans/{rollNo} [post]
func (c *ChallanController) IssueChallanForRollNo(ctx *gin.Context) {
	var req dto.ChallanCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	req.RollNo = ctx.Param("rollNo")

	challan, err := c.challanService.IssueChallan(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Challan generated successfully", "challan": challan})
}

// GetChallans lists every issued challan
// @Summary List challans
// @Tags challans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Issued challans in serial order"
// @Router /challans [get]
func (c *ChallanController) GetChallans(ctx *gin.Context) {
	challans, err := c.challanService.GetChallans(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"challans": challans})
}

// GetChallanByRollNo returns the challan held by one student
// @Summary Get a student's challan
// @Tags challans
// @Produce json
// @Security BearerAuth
// @Param rollNo path string true "Roll number"
// @Success 200 {object} map[string]interface{} "The challan"
// @Failure 404 {object} dto.ErrorResponse "No challan for this roll number"
// @Router /challans/{rollNo} [get]
func (c *ChallanController) GetChallanByRollNo(ctx *gin.Context) {
	rollNo := ctx.Param("rollNo")

	challan, err := c.challanService.GetChallanByRollNo(ctx, rollNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"challan": challan})
}

// MarkDownloaded flags a challan as downloaded without streaming the PDF,
// used when the dashboard renders the voucher itself
// @Summary Mark a challan downloaded
// @Tags challans
// @Produce json
// @Security BearerAuth
// @Param rollNo path string true "Roll number"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "No challan for this roll number"
// @Router /challans/{rollNo} [patch]
func (c *ChallanController) MarkDownloaded(ctx *gin.Context) {
	rollNo := ctx.Param("rollNo")

	if err := c.challanService.MarkChallanDownloaded(ctx, rollNo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Challan marked as downloaded"})
}

// DownloadChallanPDF streams the printable bank voucher
// @Summary Download a challan as PDF
// @Description Renders the three-copy bank voucher and marks the challan downloaded
// @Tags challans
// @Produce application/pdf
// @Security BearerAuth
// @Param rollNo path string true "Roll number"
// @Success 200 {file} file "The voucher PDF"
// @Failure 404 {object} dto.ErrorResponse "No challan for this roll number"
// @Router /challans/{rollNo}/pdf [get]
func (c *ChallanController) DownloadChallanPDF(ctx *gin.Context) {
	rollNo := ctx.Param("rollNo")

	pdfBytes, err := c.challanService.GenerateChallanPDF(ctx, rollNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=challan-%s.pdf", rollNo))
	ctx.Data(http.StatusOK, "application/pdf", pdfBytes)
}
