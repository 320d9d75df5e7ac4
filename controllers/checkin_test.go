package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"memberly/config"
	dbpkg "memberly/db"
	"memberly/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

func newControllerTestServer(t *testing.T) (*gin.Engine, *gorm.DB, config.Configuration) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	database.AutoMigrate(
		&models.Tenant{},
		&models.Member{},
		&models.Plan{},
		&models.SubscriptionPeriod{},
		&models.Attendance{},
	)

	var cfg config.Configuration
	cfg.Billing.TimezoneOffsetHours = -5

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	return r, database, cfg
}

func seedMemberWithPeriod(t *testing.T, database *gorm.DB, endDate, status string) models.Member {
	t.Helper()

	tenant := models.Tenant{BusinessName: "Iron Temple", SaaSTier: models.TENANT_TIER_PRO}
	if err := database.Create(&tenant).Error; err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	member := models.Member{
		TenantID: tenant.ID,
		FullName: "Carlos Vera",
		Phone:    "0991234567",
		PhotoURL: "https://fotos.test/carlos.jpg",
		Status:   models.MEMBER_STATUS_ACTIVE,
	}
	if err := database.Create(&member).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}
	period := models.SubscriptionPeriod{
		TenantID:      tenant.ID,
		MemberID:      member.ID,
		PlanID:        1,
		StartDate:     "2024-01-01",
		EndDate:       endDate,
		PaymentStatus: status,
		PriceCents:    2900,
	}
	if err := database.Create(&period).Error; err != nil {
		t.Fatalf("create period: %v", err)
	}
	return member
}

func attendanceCount(t *testing.T, database *gorm.DB) int {
	t.Helper()
	var count int
	if err := database.Model(&models.Attendance{}).Count(&count).Error; err != nil {
		t.Fatalf("count attendances: %v", err)
	}
	return count
}

func TestCheckinGreenPathInsertsAttendance(t *testing.T) {
	r, database, cfg := newControllerTestServer(t)
	r.GET("/checkin/:memberId", CheckinHandler(cfg))

	// período Paid ainda vigente, independente do relógio do teste
	member := seedMemberWithPeriod(t, database, "2999-12-31", models.PAYMENT_STATUS_PAID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkin/1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Pase Autorizado") {
		t.Fatalf("expected green screen, got: %s", body)
	}
	if !strings.Contains(body, "Carlos Vera") || !strings.Contains(body, "https://fotos.test/carlos.jpg") {
		t.Fatalf("expected member name and photo on screen, got: %s", body)
	}

	if got := attendanceCount(t, database); got != 1 {
		t.Fatalf("expected exactly 1 attendance row, got %d", got)
	}
	var attendance models.Attendance
	if err := database.First(&attendance).Error; err != nil {
		t.Fatalf("load attendance: %v", err)
	}
	if attendance.MemberID != member.ID || attendance.TenantID != member.TenantID {
		t.Fatalf("attendance scoped wrong: %+v", attendance)
	}
	if attendance.AccessMethod != models.ACCESS_METHOD_QR {
		t.Fatalf("expected QR access method, got %s", attendance.AccessMethod)
	}
}

func TestCheckinExpiredPeriodDeniesAccess(t *testing.T) {
	r, database, cfg := newControllerTestServer(t)
	r.GET("/checkin/:memberId", CheckinHandler(cfg))

	seedMemberWithPeriod(t, database, "2000-01-01", models.PAYMENT_STATUS_PAID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkin/1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Acceso Denegado") {
		t.Fatalf("expected red screen, got: %s", w.Body.String())
	}
	if got := attendanceCount(t, database); got != 0 {
		t.Fatalf("expected no attendance on red screen, got %d", got)
	}
}

func TestCheckinNonPaidPeriodDeniesAccess(t *testing.T) {
	r, database, cfg := newControllerTestServer(t)
	r.GET("/checkin/:memberId", CheckinHandler(cfg))

	// vigente mas não Paid (ex: renovação desativou a linha antiga)
	seedMemberWithPeriod(t, database, "2999-12-31", models.PAYMENT_STATUS_INACTIVE)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkin/1", nil)
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "Acceso Denegado") {
		t.Fatalf("expected red screen, got: %s", w.Body.String())
	}
	if got := attendanceCount(t, database); got != 0 {
		t.Fatalf("expected no attendance for non-Paid period, got %d", got)
	}
}

func TestCheckinUnknownMemberDeniesAccess(t *testing.T) {
	r, database, cfg := newControllerTestServer(t)
	r.GET("/checkin/:memberId", CheckinHandler(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkin/999", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 (HTML, nunca erro JSON), got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Acceso Denegado") || !strings.Contains(body, "Cliente Desconocido") {
		t.Fatalf("expected default red screen, got: %s", body)
	}
	if got := attendanceCount(t, database); got != 0 {
		t.Fatalf("expected no attendance, got %d", got)
	}
}
