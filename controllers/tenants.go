package controllers

import (
	"net/http"

	dbpkg "memberly/db"
	"memberly/models"

	"github.com/gin-gonic/gin"
)

// GET /api/tenants (admin)
func GetTenants(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var tenants []models.Tenant
	if err := db.Order("id asc").Find(&tenants).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"tenants": tenants})
}

// POST /api/tenants (admin)
func CreateTenant(c *gin.Context) {
	var tenant models.Tenant
	if err := c.Bind(&tenant); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if tenant.BusinessName == "" {
		RespondError(c, "business_name é obrigatório", http.StatusBadRequest)
		return
	}
	if tenant.SaaSTier == "" {
		tenant.SaaSTier = models.TENANT_TIER_STARTER
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Create(&tenant).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"tenant": tenant})
}
