package controllers

import (
	"net/http"

	"memberly/config"
	dbpkg "memberly/db"
	"memberly/models"

	"github.com/gin-gonic/gin"
)

type CreateMemberRequest struct {
	TenantID         int64  `json:"tenant_id" form:"tenant_id"`
	FullName         string `json:"full_name" form:"full_name"`
	Phone            string `json:"phone" form:"phone"`
	Email            string `json:"email" form:"email"`
	PhotoURL         string `json:"photo_url" form:"photo_url"`
	EmergencyContact string `json:"emergency_contact" form:"emergency_contact"`
	PlanID           int64  `json:"plan_id" form:"plan_id"`
	AutoRenew        bool   `json:"auto_renew" form:"auto_renew"`
}

// GET /api/members?tenant_id=1
func GetMembers(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	query := db.Order("id asc")
	if tenantID := c.Query("tenant_id"); tenantID != "" {
		query = query.Where("tenant_id = ?", tenantID)
	}

	var members []models.Member
	if err := query.Find(&members).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"members": members})
}

// CreateMember cadastra o sócio e já cria o primeiro período de assinatura
// (start=hoje, end=hoje+duração do plano, Paid). POST /api/members
func CreateMember(cfg config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMemberRequest
		if err := c.Bind(&req); err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		if req.TenantID <= 0 {
			RespondError(c, "tenant_id é obrigatório", http.StatusBadRequest)
			return
		}
		if req.FullName == "" || req.Phone == "" {
			RespondError(c, "full_name e phone são obrigatórios", http.StatusBadRequest)
			return
		}
		if req.PlanID <= 0 {
			RespondError(c, "plan_id é obrigatório", http.StatusBadRequest)
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
			return
		}

		var plan models.Plan
		if err := db.First(&plan, "id = ? AND tenant_id = ?", req.PlanID, req.TenantID).Error; err != nil {
			RespondError(c, "plano não encontrado", http.StatusNotFound)
			return
		}

		startDate := todayInZone(cfg.Billing.TimezoneOffsetHours)
		start := startDate.Format(models.DateLayout)
		end := startDate.AddDate(0, 0, int(plan.DurationDays)).Format(models.DateLayout)

		member := models.Member{
			TenantID:         req.TenantID,
			FullName:         req.FullName,
			Phone:            req.Phone,
			Email:            req.Email,
			PhotoURL:         req.PhotoURL,
			EmergencyContact: req.EmergencyContact,
			Status:           models.MEMBER_STATUS_ACTIVE,
		}

		tx := db.Begin()
		if err := tx.Create(&member).Error; err != nil {
			tx.Rollback()
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}

		period := models.SubscriptionPeriod{
			TenantID:      req.TenantID,
			MemberID:      member.ID,
			PlanID:        plan.ID,
			StartDate:     start,
			EndDate:       end,
			PaymentStatus: models.PAYMENT_STATUS_PAID,
			AutoRenew:     req.AutoRenew,
			PriceCents:    plan.PriceCents,
		}
		if err := tx.Create(&period).Error; err != nil {
			tx.Rollback()
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}

		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"member": member, "period": period})
	}
}
