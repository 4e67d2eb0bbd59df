package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
	"github.com/rao756/utms-backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respondWith(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return recorder, &body
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"resource not found", apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"inactive account", apperrors.ErrAccountInactive, http.StatusForbidden, dto.ErrorCodeAccountInactive},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate bus number", apperrors.ErrBusNumberExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"bad challan config", apperrors.ErrChallanConfigInvalid, http.StatusBadRequest, dto.ErrorCodeChallanConfigInvalid},
		{"missing challan config", apperrors.ErrChallanConfigNotFound, http.StatusBadRequest, dto.ErrorCodeChallanConfigInvalid},
		{"existing challan config", apperrors.ErrChallanConfigExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate challan", apperrors.ErrChallanRollNoExists, http.StatusBadRequest, dto.ErrorCodeChallanDuplicate},
		{"global quota full", apperrors.ErrChallanQuotaExceeded, http.StatusBadRequest, dto.ErrorCodeChallanQuotaFull},
		{"route quota full", apperrors.ErrRouteQuotaExceeded, http.StatusBadRequest, dto.ErrorCodeRouteQuotaFull},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder, body := respondWith(t, tc.err)
			if recorder.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tc.wantStatus)
			}
			if body.Error == nil {
				t.Fatal("response carries no error detail")
			}
			if body.Error.Code != tc.wantCode {
				t.Errorf("code = %s, want %s", body.Error.Code, tc.wantCode)
			}
			if body.Success {
				t.Error("success = true on an error response")
			}
		})
	}
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrValidationFailed, "stop 2 must have stopName, arrivalTime and departureTime")
	_, body := respondWith(t, err)
	if body.Error.Message != "stop 2 must have stopName, arrivalTime and departureTime" {
		t.Errorf("message = %q, custom message was dropped", body.Error.Message)
	}
}

func TestHandleAPIErrorDuplicateChallanNamesField(t *testing.T) {
	_, body := respondWith(t, apperrors.ErrChallanRollNoExists)
	if body.Error.Field != "rollNo" {
		t.Errorf("field = %q, want rollNo", body.Error.Field)
	}
}

func protectedRouter(m *AuthMiddleware, adminOnly bool) *gin.Engine {
	router := gin.New()
	handlers := []gin.HandlerFunc{m.JWTAuth()}
	if adminOnly {
		handlers = append(handlers, m.AdminRequired())
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetInt64(ContextUserID),
			"role":   c.GetString(ContextRole),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour}))
	router := protectedRouter(m, false)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", recorder.Code)
	}
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	m := NewAuthMiddleware(jwtService)
	router := protectedRouter(m, false)

	token, err := jwtService.GenerateToken(&models.User{ID: 7, Email: "student@university.edu"}, auth.RoleUser)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", recorder.Code, recorder.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["userId"].(float64) != 7 {
		t.Errorf("userId = %v, want 7", body["userId"])
	}
}

func TestJWTAuthReportsExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: -time.Minute})
	m := NewAuthMiddleware(jwtService)
	router := protectedRouter(m, false)

	token, err := jwtService.GenerateToken(&models.User{ID: 7, Email: "student@university.edu"}, auth.RoleUser)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", recorder.Code)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error.Code != dto.ErrorCodeExpiredToken {
		t.Errorf("code = %s, want %s", body.Error.Code, dto.ErrorCodeExpiredToken)
	}
}

func TestAdminRequiredRejectsUserToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	m := NewAuthMiddleware(jwtService)
	router := protectedRouter(m, true)

	token, err := jwtService.GenerateToken(&models.User{ID: 7, Email: "student@university.edu"}, auth.RoleUser)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", recorder.Code)
	}
}

func TestAdminRequiredAcceptsAdminToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	m := NewAuthMiddleware(jwtService)
	router := protectedRouter(m, true)

	token, err := jwtService.GenerateToken(&models.User{ID: 1, Email: "admin@utms.edu"}, auth.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", recorder.Code)
	}
}
