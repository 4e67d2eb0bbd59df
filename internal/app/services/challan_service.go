package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
)

// routeQuotaDivisor splits the global challan limit evenly across routes:
// each route may take at most maxChallan/routeQuotaDivisor challans.
const routeQuotaDivisor = 5

// challanStore is the slice of challan persistence ChallanService needs
type challanStore interface {
	Issue(ctx context.Context, challan *models.Challan, decide func(total, routeCount int) error) error
	GetByRollNo(ctx context.Context, rollNo string) (*models.Challan, error)
	GetAll(ctx context.Context) ([]*models.Challan, error)
	CountAll(ctx context.Context) (int, error)
	CountByRoute(ctx context.Context) (map[string]int, error)
	MarkDownloaded(ctx context.Context, rollNo string) error
}

// challanConfigStore reads the effective issuance configuration
type challanConfigStore interface {
	GetLatest(ctx context.Context) (*models.AdminChallan, error)
}

// ParseMaxChallan converts the stored maxChallan text into a positive
// limit. The value is free text in the configuration, so a bad value
// surfaces as a configuration error rather than a crash.
func ParseMaxChallan(raw string) (int, error) {
	max, err := strconv.Atoi(raw)
	if err != nil || max <= 0 {
		return 0, apperrors.ErrChallanConfigInvalid
	}
	return max, nil
}

// CheckQuota decides whether one more challan may be issued given the
// current totals. The global limit is checked before the per-route one.
func CheckQuota(total, routeCount, maxChallan int) error {
	if total >= maxChallan {
		return apperrors.ErrChallanQuotaExceeded
	}
	if routeCount >= maxChallan/routeQuotaDivisor {
		return apperrors.ErrRouteQuotaExceeded
	}
	return nil
}

// ChallanService defines the interface for fee challan operations
type ChallanService interface {
	IssueChallan(ctx context.Context, req *dto.ChallanCreateRequest) (*models.Challan, error)
	GetChallanByRollNo(ctx context.Context, rollNo string) (*models.Challan, error)
	GetChallans(ctx context.Context) ([]*models.Challan, error)
	MarkChallanDownloaded(ctx context.Context, rollNo string) error
	GenerateChallanPDF(ctx context.Context, rollNo string) ([]byte, error)
	IssuanceStats(ctx context.Context) (total int, byRoute map[string]int, err error)
}

// challanServiceImpl implements ChallanService
type challanServiceImpl struct {
	challanRepo challanStore
	configRepo  challanConfigStore
	logger      zerolog.Logger
}

// NewChallanService creates a new ChallanService
func NewChallanService(challanRepo challanStore, configRepo challanConfigStore, logger zerolog.Logger) ChallanService {
	return &challanServiceImpl{
		challanRepo: challanRepo,
		configRepo:  configRepo,
		logger:      logger,
	}
}

// IssueChallan issues a fee challan to a student. The serial number and
// both quota checks are decided against counts taken under the issuance
// lock, so concurrent requests cannot oversubscribe a route or reuse a
// serial number.
func (s *challanServiceImpl) IssueChallan(ctx context.Context, req *dto.ChallanCreateRequest) (*models.Challan, error) {
	config, err := s.configRepo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrChallanConfigNotFound
		}
		return nil, err
	}

	maxChallan, err := ParseMaxChallan(config.MaxChallan)
	if err != nil {
		return nil, err
	}

	challan := &models.Challan{
		Name:           req.Name,
		FatherName:     req.FatherName,
		RollNo:         req.RollNo,
		ContactNo:      req.ContactNo,
		Semester:       req.Semester,
		Program:        req.Program,
		DepartmentName: req.DepartmentName,
		Route:          req.Route,
		BusStop:        req.BusStop,
		DownloadStatus: "false",
	}

	err = s.challanRepo.Issue(ctx, challan, func(total, routeCount int) error {
		return CheckQuota(total, routeCount, maxChallan)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrChallanRollNoExists) {
			return nil, apperrors.ErrChallanRollNoExists
		}
		return nil, err
	}

	s.logger.Info().
		Int("srNo", challan.SrNo).
		Str("rollNo", challan.RollNo).
		Str("route", challan.Route).
		Msg("Challan issued")
	return challan, nil
}

// GetChallanByRollNo returns the challan held by a student
func (s *challanServiceImpl) GetChallanByRollNo(ctx context.Context, rollNo string) (*models.Challan, error) {
	challan, err := s.challanRepo.GetByRollNo(ctx, rollNo)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return challan, nil
}

// GetChallans returns every issued challan in serial order
func (s *challanServiceImpl) GetChallans(ctx context.Context) ([]*models.Challan, error) {
	return s.challanRepo.GetAll(ctx)
}

// MarkChallanDownloaded records that the student fetched their voucher
func (s *challanServiceImpl) MarkChallanDownloaded(ctx context.Context, rollNo string) error {
	if err := s.challanRepo.MarkDownloaded(ctx, rollNo); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return err
	}
	return nil
}

// IssuanceStats reports the total and per-route challan counts
func (s *challanServiceImpl) IssuanceStats(ctx context.Context) (int, map[string]int, error) {
	total, err := s.challanRepo.CountAll(ctx)
	if err != nil {
		return 0, nil, err
	}
	byRoute, err := s.challanRepo.CountByRoute(ctx)
	if err != nil {
		return 0, nil, err
	}
	return total, byRoute, nil
}

// GenerateChallanPDF renders the bank voucher for a student's challan and
// marks it downloaded. The voucher carries three copies on one page, the
// layout banks expect for over-the-counter fee deposits.
func (s *challanServiceImpl) GenerateChallanPDF(ctx context.Context, rollNo string) ([]byte, error) {
	challan, err := s.challanRepo.GetByRollNo(ctx, rollNo)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}

	config, err := s.configRepo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrChallanConfigNotFound
		}
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	copies := []string{"Bank Copy", "University Copy", "Student Copy"}
	const copyWidth = 92.0
	for i, copyName := range copies {
		left := 8.0 + float64(i)*(copyWidth+4)
		s.renderChallanCopy(pdf, left, copyWidth, copyName, challan, config)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render challan pdf: %w", err)
	}

	if err := s.challanRepo.MarkDownloaded(ctx, rollNo); err != nil {
		return nil, err
	}

	s.logger.Info().Str("rollNo", rollNo).Msg("Challan PDF generated")
	return buf.Bytes(), nil
}

func (s *challanServiceImpl) renderChallanCopy(pdf *gofpdf.Fpdf, left, width float64, copyName string, challan *models.Challan, config *models.AdminChallan) {
	top := 10.0
	pdf.Rect(left, top, width, 180, "D")

	pdf.SetFont("Arial", "B", 11)
	pdf.SetXY(left, top+4)
	pdf.CellFormat(width, 6, "University Transport Fee Challan", "", 0, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 8)
	pdf.SetXY(left, top+10)
	pdf.CellFormat(width, 5, copyName, "", 0, "C", false, 0, "")

	rows := [][2]string{
		{"Sr No", strconv.Itoa(challan.SrNo)},
		{"Account No", config.AccountNo},
		{"Session", config.Session},
		{"Issue Date", config.IssueDate},
		{"Due Date", config.LastDate},
		{"Name", challan.Name},
		{"Father Name", challan.FatherName},
		{"Roll No", challan.RollNo},
		{"Contact No", challan.ContactNo},
		{"Department", challan.DepartmentName},
		{"Program", challan.Program},
		{"Semester", challan.Semester},
		{"Route", challan.Route},
		{"Bus Stop", challan.BusStop},
		{"Amount", config.Amount},
	}

	y := top + 18
	labelWidth := width * 0.42
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetXY(left+2, y)
		pdf.CellFormat(labelWidth, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(width-labelWidth-4, 6, row[1], "", 0, "L", false, 0, "")
		y += 7
	}

	pdf.SetFont("Arial", "I", 7)
	pdf.SetXY(left+2, top+170)
	pdf.CellFormat(width-4, 5, "Pay before the due date at any branch.", "", 0, "L", false, 0, "")
}
