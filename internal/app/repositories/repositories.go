package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository            *UserRepository
	AdminRepository           *AdminRepository
	BusRepository             *BusRepository
	DriverRepository          *DriverRepository
	RouteRepository           *RouteRepository
	ScheduleRepository        *ScheduleRepository
	NotificationRepository    *NotificationRepository
	ChallanRepository         *ChallanRepository
	AdminChallanRepository    *AdminChallanRepository
	UploadedChallanRepository *UploadedChallanRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:            NewUserRepository(db),
		AdminRepository:           NewAdminRepository(db),
		BusRepository:             NewBusRepository(db),
		DriverRepository:          NewDriverRepository(db),
		RouteRepository:           NewRouteRepository(db),
		ScheduleRepository:        NewScheduleRepository(db),
		NotificationRepository:    NewNotificationRepository(db),
		ChallanRepository:         NewChallanRepository(db),
		AdminChallanRepository:    NewAdminChallanRepository(db),
		UploadedChallanRepository: NewUploadedChallanRepository(db),
	}
}
