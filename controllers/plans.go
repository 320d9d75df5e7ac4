package controllers

import (
	"net/http"

	dbpkg "memberly/db"
	"memberly/models"

	"github.com/gin-gonic/gin"
)

// GET /api/plans?tenant_id=1
func GetPlans(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	query := db.Order("id asc")
	if tenantID := c.Query("tenant_id"); tenantID != "" {
		query = query.Where("tenant_id = ?", tenantID)
	}

	var plans []models.Plan
	if err := query.Find(&plans).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"plans": plans})
}

// GET /api/plans/:id
func GetPlanByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var plan models.Plan
	if err := db.First(&plan, id).Error; err != nil {
		RespondError(c, "plano não encontrado", http.StatusNotFound)
		return
	}

	RespondSuccess(c, gin.H{"plan": plan})
}

// POST /api/plans (admin)
func CreatePlan(c *gin.Context) {
	var plan models.Plan
	if err := c.Bind(&plan); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if plan.Name == "" {
		RespondError(c, "name é obrigatório", http.StatusBadRequest)
		return
	}
	if plan.TenantID <= 0 {
		RespondError(c, "tenant_id é obrigatório", http.StatusBadRequest)
		return
	}
	if plan.DurationDays <= 0 {
		plan.DurationDays = 30
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Create(&plan).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"plan": plan})
}

// PUT /api/plans/:id (admin)
func UpdatePlan(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var body models.Plan
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var plan models.Plan
	if err := db.First(&plan, id).Error; err != nil {
		RespondError(c, "plano não encontrado", http.StatusNotFound)
		return
	}

	if body.Name != "" {
		plan.Name = body.Name
	}
	plan.Description = body.Description
	if body.PriceCents >= 0 {
		plan.PriceCents = body.PriceCents
	}
	if body.DurationDays > 0 {
		plan.DurationDays = body.DurationDays
	}
	if body.Currency != "" {
		plan.Currency = body.Currency
	}
	plan.IsActive = body.IsActive

	if err := db.Save(&plan).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"plan": plan})
}

// DELETE /api/plans/:id (admin)
func DeletePlan(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Delete(&models.Plan{}, "id = ?", id).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}
