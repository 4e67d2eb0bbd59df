package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/services"
	"github.com/rao756/utms-backend/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles student registration
// @Summary Register a new student
// @Description Creates a student account from a multipart form. The account stays inactive until an admin approves it. An optional profile image may be attached under the "image" field.
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param userName formData string false "Student name"
// @Param fatherName formData string false "Father name"
// @Param rollNo formData string false "University roll number"
// @Param email formData string true "Email address"
// @Param password formData string true "Password (min 6 characters)"
// @Param departmentName formData string false "Department"
// @Param semester formData string false "Semester"
// @Param routeName formData string false "Assigned route"
// @Param pickupStop formData string false "Pickup stop"
// @Param image formData file false "Profile image"
// @Success 201 {object} map[string]interface{} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var form dto.RegisterForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// Image is optional; FormFile errors just mean it was not attached
	image, _ := ctx.FormFile("image")

	user, err := c.authService.Register(ctx, &form, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful, awaiting admin approval",
		"success": true,
		"user":    user,
	})
}

// Login handles student login
// @Summary Student login
// @Description Verifies credentials and issues a session token. Only approved accounts can log in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account awaiting approval"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AdminLogin handles admin login
// @Summary Admin login
// @Description Verifies credentials against an admin account and issues an admin session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Not an admin account"
// @Router /auth/admin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.AdminLogin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ResetPassword changes a password after verifying the current one
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Password change payload"
// @Success 200 {object} dto.SuccessResponse "Password updated"
// @Failure 401 {object} dto.ErrorResponse "Current password incorrect"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.authService.ResetPassword(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Password updated successfully"})
}

// RegisterAdmin creates an admin account
// @Summary Register an admin
// @Description Creates a user account together with its admin row
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterAdminRequest true "Admin details"
// @Success 201 {object} map[string]interface{} "Admin created"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /admins [post]
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	admin, err := c.authService.RegisterAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Admin registered successfully",
		"success": true,
		"admin":   admin,
	})
}

// PromoteAdmin grants admin access to an existing user
// @Summary Promote a user to admin
// @Description Creates an admin row for an existing user account. The body is optional; the role defaults to department_admin.
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.PromoteAdminRequest false "Role and department overrides"
// @Success 201 {object} map[string]interface{} "Admin created"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "User is already an admin"
// @Router /admins/{id} [post]
func (c *AuthController) PromoteAdmin(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "User ID must be a number")))
		return
	}

	var req dto.PromoteAdminRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
	}

	admin, err := c.authService.PromoteUser(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User promoted to admin",
		"success": true,
		"admin":   admin,
	})
}
