package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
)

// fakeChallanStore keeps issued challans in memory and reproduces the
// issuance contract of the real repository: a duplicate roll number is
// rejected before the quota decision runs.
type fakeChallanStore struct {
	challans   []*models.Challan
	downloaded map[string]bool
}

func (f *fakeChallanStore) Issue(ctx context.Context, challan *models.Challan, decide func(total, routeCount int) error) error {
	routeCount := 0
	for _, c := range f.challans {
		if c.RollNo == challan.RollNo {
			return repositories.ErrChallanRollNoExists
		}
		if c.Route == challan.Route {
			routeCount++
		}
	}
	if err := decide(len(f.challans), routeCount); err != nil {
		return err
	}
	challan.SrNo = len(f.challans) + 1
	challan.ID = int64(challan.SrNo)
	f.challans = append(f.challans, challan)
	return nil
}

func (f *fakeChallanStore) GetByRollNo(ctx context.Context, rollNo string) (*models.Challan, error) {
	for _, c := range f.challans {
		if c.RollNo == rollNo {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeChallanStore) GetAll(ctx context.Context) ([]*models.Challan, error) {
	return f.challans, nil
}

func (f *fakeChallanStore) CountAll(ctx context.Context) (int, error) {
	return len(f.challans), nil
}

func (f *fakeChallanStore) CountByRoute(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, c := range f.challans {
		counts[c.Route]++
	}
	return counts, nil
}

func (f *fakeChallanStore) MarkDownloaded(ctx context.Context, rollNo string) error {
	if f.downloaded == nil {
		f.downloaded = map[string]bool{}
	}
	f.downloaded[rollNo] = true
	return nil
}

type fakeConfigStore struct {
	config *models.AdminChallan
	err    error
}

func (f *fakeConfigStore) GetLatest(ctx context.Context) (*models.AdminChallan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

func testConfig(maxChallan string) *models.AdminChallan {
	return &models.AdminChallan{
		AccountNo:  "1234567890",
		Session:    "2023-2024",
		Amount:     "15000",
		IssueDate:  "2024-03-01",
		LastDate:   "2024-03-31",
		MaxChallan: maxChallan,
	}
}

func challanRequest(rollNo, route string) *dto.ChallanCreateRequest {
	return &dto.ChallanCreateRequest{
		Name:           "Ali Raza",
		FatherName:     "Raza Khan",
		RollNo:         rollNo,
		ContactNo:      "0300-1234567",
		Semester:       "5",
		Program:        "BCS",
		DepartmentName: "CS",
		Route:          route,
		BusStop:        "Main Chowk",
	}
}

func TestParseMaxChallan(t *testing.T) {
	cases := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"10", 10, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"ten", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseMaxChallan(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, apperrors.ErrChallanConfigInvalid) {
				t.Errorf("ParseMaxChallan(%q) err = %v, want ErrChallanConfigInvalid", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMaxChallan(%q) unexpected error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMaxChallan(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestCheckQuota(t *testing.T) {
	cases := []struct {
		name       string
		total      int
		routeCount int
		max        int
		want       error
	}{
		{"within both limits", 3, 1, 10, nil},
		{"global limit reached", 10, 0, 10, apperrors.ErrChallanQuotaExceeded},
		{"global limit exceeded", 12, 0, 10, apperrors.ErrChallanQuotaExceeded},
		{"route limit reached", 4, 2, 10, apperrors.ErrRouteQuotaExceeded},
		{"global checked before route", 10, 2, 10, apperrors.ErrChallanQuotaExceeded},
		{"last global slot on fresh route", 9, 0, 10, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckQuota(tc.total, tc.routeCount, tc.max)
			if !errors.Is(err, tc.want) {
				t.Errorf("CheckQuota(%d, %d, %d) = %v, want %v", tc.total, tc.routeCount, tc.max, err, tc.want)
			}
		})
	}
}

func TestIssueChallanAssignsSerialNumbers(t *testing.T) {
	store := &fakeChallanStore{}
	svc := NewChallanService(store, &fakeConfigStore{config: testConfig("10")}, zerolog.Nop())

	first, err := svc.IssueChallan(context.Background(), challanRequest("FA21-BCS-001", "City Route"))
	if err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	if first.SrNo != 1 {
		t.Errorf("first SrNo = %d, want 1", first.SrNo)
	}
	if first.DownloadStatus != "false" {
		t.Errorf("DownloadStatus = %q, want \"false\"", first.DownloadStatus)
	}

	second, err := svc.IssueChallan(context.Background(), challanRequest("FA21-BCS-002", "North Route"))
	if err != nil {
		t.Fatalf("second issue failed: %v", err)
	}
	if second.SrNo != 2 {
		t.Errorf("second SrNo = %d, want 2", second.SrNo)
	}
}

func TestIssueChallanDuplicateRollNo(t *testing.T) {
	store := &fakeChallanStore{}
	svc := NewChallanService(store, &fakeConfigStore{config: testConfig("10")}, zerolog.Nop())

	if _, err := svc.IssueChallan(context.Background(), challanRequest("FA21-BCS-001", "City Route")); err != nil {
		t.Fatalf("first issue failed: %v", err)
	}

	_, err := svc.IssueChallan(context.Background(), challanRequest("FA21-BCS-001", "North Route"))
	if !errors.Is(err, apperrors.ErrChallanRollNoExists) {
		t.Fatalf("duplicate issue err = %v, want ErrChallanRollNoExists", err)
	}
}

func TestIssueChallanDuplicateOnFullRoute(t *testing.T) {
	// maxChallan 10 allows 2 challans per route; once the route is full,
	// a student re-requesting their challan must still see the duplicate
	// error, not the quota one
	store := &fakeChallanStore{}
	svc := NewChallanService(store, &fakeConfigStore{config: testConfig("10")}, zerolog.Nop())

	for _, rollNo := range []string{"FA21-BCS-001", "FA21-BCS-002"} {
		if _, err := svc.IssueChallan(context.Background(), challanRequest(rollNo, "City Route")); err != nil {
			t.Fatalf("issue %s failed: %v", rollNo, err)
		}
	}

	_, err := svc.IssueChallan(context.Background(), challanRequest("FA21-BCS-001", "City Route"))
	if !errors.Is(err, apperrors.ErrChallanRollNoExists) {
		t.Fatalf("re-issue on full route err = %v, want ErrChallanRollNoExists", err)
	}
}

func TestIssueChallanRouteQuota(t *testing.T) {
	// maxChallan 10 allows 10/5 = 2 challans per route
	store := &fakeChallanStore{}
	svc := NewChallanService(store, &fakeConfigStore{config: testConfig("10")}, zerolog.Nop())

	for i, rollNo := range []string{"FA21-BCS-001", "FA21-BCS-002"} {
		if _, err := svc.IssueChallan(context.Background(), challanRequest(rollNo, "City Route")); err != nil {
			t.Fatalf("issue %d failed: %v", i+1, err)
		}
	}

	_, err := svc.IssueChallan(context.Background(), challanRequest("FA21-BCS-003", "City Route"))
	if !errors.Is(err, apperrors.ErrRouteQuotaExceeded) {
		t.Fatalf("third issue on route err = %v, want ErrRouteQuotaExceeded", err)
	}

	// Another route still has room
	if _, err := svc.IssueChallan(context.Background(), challanRequest("FA21-BCS-003", "North Route")); err != nil {
		t.Fatalf("issue on fresh route failed: %v", err)
	}
}

func TestIssueChallanGlobalQuota(t *testing.T) {
	store := &fakeChallanStore{}
	svc := NewChallanService(store, &fakeConfigStore{config: testConfig("5")}, zerolog.Nop())

	routes := []string{"A", "B", "C", "D", "E"}
	for i, route := range routes {
		req := challanRequest("roll-"+route, route)
		if _, err := svc.IssueChallan(context.Background(), req); err != nil {
			t.Fatalf("issue %d failed: %v", i+1, err)
		}
	}

	_, err := svc.IssueChallan(context.Background(), challanRequest("roll-F", "F"))
	if !errors.Is(err, apperrors.ErrChallanQuotaExceeded) {
		t.Fatalf("issue past limit err = %v, want ErrChallanQuotaExceeded", err)
	}
}

func TestIssueChallanBadConfiguration(t *testing.T) {
	svc := NewChallanService(&fakeChallanStore{}, &fakeConfigStore{config: testConfig("unlimited")}, zerolog.Nop())

	_, err := svc.IssueChallan(context.Background(), challanRequest("FA21-BCS-001", "City Route"))
	if !errors.Is(err, apperrors.ErrChallanConfigInvalid) {
		t.Fatalf("issue err = %v, want ErrChallanConfigInvalid", err)
	}
}

func TestIssueChallanMissingConfiguration(t *testing.T) {
	svc := NewChallanService(&fakeChallanStore{}, &fakeConfigStore{err: repositories.ErrNotFound}, zerolog.Nop())

	_, err := svc.IssueChallan(context.Background(), challanRequest("FA21-BCS-001", "City Route"))
	if !errors.Is(err, apperrors.ErrChallanConfigNotFound) {
		t.Fatalf("issue err = %v, want ErrChallanConfigNotFound", err)
	}
}

func TestGetChallanByRollNoNotFound(t *testing.T) {
	svc := NewChallanService(&fakeChallanStore{}, &fakeConfigStore{config: testConfig("10")}, zerolog.Nop())

	_, err := svc.GetChallanByRollNo(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("lookup err = %v, want ErrResourceNotFound", err)
	}
}

func TestGenerateChallanPDFMarksDownloaded(t *testing.T) {
	store := &fakeChallanStore{}
	svc := NewChallanService(store, &fakeConfigStore{config: testConfig("10")}, zerolog.Nop())

	if _, err := svc.IssueChallan(context.Background(), challanRequest("FA21-BCS-001", "City Route")); err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	pdfBytes, err := svc.GenerateChallanPDF(context.Background(), "FA21-BCS-001")
	if err != nil {
		t.Fatalf("pdf generation failed: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("pdf output is empty")
	}
	if string(pdfBytes[:4]) != "%PDF" {
		t.Errorf("pdf output does not start with %%PDF header")
	}
	if !store.downloaded["FA21-BCS-001"] {
		t.Error("challan was not marked downloaded")
	}
}
