package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
	"github.com/rao756/utms-backend/internal/pkg/auth"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return repositories.ErrEmailAlreadyExists
	}
	user.ID = int64(len(f.users) + 1)
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	user, ok := f.users[email]
	if !ok {
		return repositories.ErrNotFound
	}
	user.Password = passwordHash
	return nil
}

type fakeAdminStore struct {
	admins map[string]*models.Admin
	users  *fakeUserStore
}

func (f *fakeAdminStore) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return admin, nil
}

func (f *fakeAdminStore) Create(ctx context.Context, admin *models.Admin) error {
	if _, ok := f.admins[admin.Email]; ok {
		return repositories.ErrAdminAlreadyExists
	}
	f.admins[admin.Email] = admin
	return nil
}

func (f *fakeAdminStore) CreateWithUser(ctx context.Context, user *models.User, admin *models.Admin) error {
	if err := f.users.Create(ctx, user); err != nil {
		return err
	}
	if _, ok := f.admins[admin.Email]; ok {
		return repositories.ErrAdminAlreadyExists
	}
	admin.UserID = user.ID
	f.admins[admin.Email] = admin
	return nil
}

func newTestAuthService(t *testing.T) (AuthService, *fakeUserStore, *fakeAdminStore) {
	t.Helper()
	users := &fakeUserStore{users: map[string]*models.User{}}
	admins := &fakeAdminStore{admins: map[string]*models.Admin{}, users: users}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	svc := NewAuthService(users, admins, jwtService, nil, zerolog.Nop())
	return svc, users, admins
}

func seedUser(t *testing.T, users *fakeUserStore, email, password string, active bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		ID:       int64(len(users.users) + 1),
		UserName: "Ali Raza",
		Email:    email,
		Password: hash,
		IsActive: active,
	}
	users.users[email] = user
	return user
}

func TestLoginSucceedsForApprovedUser(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	seedUser(t, users, "student@university.edu", "secret123", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "Student@University.edu ",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("login response carries no token")
	}
	if !resp.Success {
		t.Error("login response success = false")
	}
}

func TestLoginRejectsUnapprovedAccount(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	seedUser(t, users, "student@university.edu", "secret123", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@university.edu",
		Password: "secret123",
	})
	if !errors.Is(err, apperrors.ErrAccountInactive) {
		t.Fatalf("login err = %v, want ErrAccountInactive", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	seedUser(t, users, "student@university.edu", "secret123", true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@university.edu",
		Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("login err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@university.edu",
		Password: "secret123",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("login err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAdminLoginRequiresAdminRow(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	seedUser(t, users, "student@university.edu", "secret123", true)

	_, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{
		Email:    "student@university.edu",
		Password: "secret123",
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("admin login err = %v, want ErrPermissionDenied", err)
	}
}

func TestAdminLoginSucceeds(t *testing.T) {
	svc, users, admins := newTestAuthService(t)
	user := seedUser(t, users, "admin@utms.edu", "secret123", true)
	admins.admins[user.Email] = &models.Admin{
		Email:    user.Email,
		Role:     models.RoleSuperAdmin,
		IsActive: true,
		UserID:   user.ID,
	}

	resp, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{
		Email:    "admin@utms.edu",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("admin login response carries no token")
	}
}

func TestAdminLoginRejectsDisabledAdmin(t *testing.T) {
	svc, users, admins := newTestAuthService(t)
	user := seedUser(t, users, "admin@utms.edu", "secret123", true)
	admins.admins[user.Email] = &models.Admin{
		Email:    user.Email,
		Role:     models.RoleSuperAdmin,
		IsActive: false,
		UserID:   user.ID,
	}

	_, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{
		Email:    "admin@utms.edu",
		Password: "secret123",
	})
	if !errors.Is(err, apperrors.ErrAccountInactive) {
		t.Fatalf("admin login err = %v, want ErrAccountInactive", err)
	}
}

func TestResetPasswordVerifiesCurrentPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	seedUser(t, users, "student@university.edu", "secret123", true)

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Email:           "student@university.edu",
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("reset err = %v, want ErrInvalidCredentials", err)
	}
}

func TestResetPasswordStoresNewHash(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	seedUser(t, users, "student@university.edu", "secret123", true)

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Email:           "student@university.edu",
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@university.edu",
		Password: "newsecret",
	}); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestRegisterCreatesInactiveAccount(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), &dto.RegisterForm{
		UserName: "Ali Raza",
		Email:    "Student@University.edu",
		Password: "secret123",
		RollNo:   "FA21-BCS-012",
	}, nil)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.IsActive {
		t.Error("new account is active before approval")
	}
	if user.Email != "student@university.edu" {
		t.Errorf("email = %q, want lowercased form", user.Email)
	}
	if user.ChallanStatus != models.ChallanStatusPending {
		t.Errorf("challan status = %q, want pending", user.ChallanStatus)
	}
	if _, ok := users.users["student@university.edu"]; !ok {
		t.Error("user was not stored")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	seedUser(t, users, "student@university.edu", "secret123", true)

	_, err := svc.Register(context.Background(), &dto.RegisterForm{
		Email:    "student@university.edu",
		Password: "secret123",
	}, nil)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("register err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestRegisterAdminDefaultsRole(t *testing.T) {
	svc, _, admins := newTestAuthService(t)

	admin, err := svc.RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		UserName: "Transport Admin",
		Email:    "admin@utms.edu",
		Password: "secret123",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("register admin failed: %v", err)
	}
	if admin.Role != models.RoleDepartmentAdmin {
		t.Errorf("role = %q, want department_admin", admin.Role)
	}
	if admin.AdminID == "" {
		t.Error("admin id was not generated")
	}
	if admin.User == nil {
		t.Error("admin response carries no user")
	}
	if _, ok := admins.admins["admin@utms.edu"]; !ok {
		t.Error("admin was not stored")
	}
}

func TestPromoteUserCreatesAdminRow(t *testing.T) {
	svc, users, admins := newTestAuthService(t)
	user := seedUser(t, users, "student@university.edu", "secret123", true)
	user.DepartmentName = "CS"

	admin, err := svc.PromoteUser(context.Background(), user.ID, &dto.PromoteAdminRequest{IsActive: true})
	if err != nil {
		t.Fatalf("promote failed: %v", err)
	}
	if admin.Role != models.RoleDepartmentAdmin {
		t.Errorf("role = %q, want department_admin", admin.Role)
	}
	if admin.DepartmentName != "CS" {
		t.Errorf("department = %q, want user's own department", admin.DepartmentName)
	}
	if admin.UserID != user.ID {
		t.Errorf("userId = %d, want %d", admin.UserID, user.ID)
	}
	if _, ok := admins.admins[user.Email]; !ok {
		t.Error("admin row was not stored")
	}
}

func TestPromoteUserRejectsUnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.PromoteUser(context.Background(), 99, &dto.PromoteAdminRequest{})
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("promote err = %v, want ErrUserNotFound", err)
	}
}

func TestPromoteUserRejectsExistingAdmin(t *testing.T) {
	svc, users, admins := newTestAuthService(t)
	user := seedUser(t, users, "admin@utms.edu", "secret123", true)
	admins.admins[user.Email] = &models.Admin{Email: user.Email, Role: models.RoleSuperAdmin, IsActive: true}

	_, err := svc.PromoteUser(context.Background(), user.ID, &dto.PromoteAdminRequest{})
	if !errors.Is(err, apperrors.ErrAdminAlreadyExists) {
		t.Fatalf("promote err = %v, want ErrAdminAlreadyExists", err)
	}
}

func TestRegisterAdminRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Email:    "admin@utms.edu",
		Password: "secret123",
		Role:     "overlord",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("register admin err = %v, want ErrValidationFailed", err)
	}
}
