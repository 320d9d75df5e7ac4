package controllers

import (
	"net/http"

	"memberly/config"
	dbpkg "memberly/db"
	"memberly/models"
	"memberly/tools"

	"github.com/gin-gonic/gin"
)

type PaymentLinkRequest struct {
	TenantID    int64  `json:"tenant_id" form:"tenant_id"`
	PayerName   string `json:"payer_name" form:"payer_name"`
	AmountCents int64  `json:"amount_cents" form:"amount_cents"`
}

// GeneratePaymentLink cria um link de pagamento PayPal com as credenciais
// do tenant. Mesma folha que o job de cobrança usa: em falha do gateway a
// resposta traz a URL sentinela, nunca um 500. POST /api/payments/link
func GeneratePaymentLink(cfg config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentLinkRequest
		if err := c.Bind(&req); err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		if req.TenantID <= 0 {
			RespondError(c, "tenant_id é obrigatório", http.StatusBadRequest)
			return
		}
		if req.AmountCents <= 0 {
			RespondError(c, "amount_cents é obrigatório", http.StatusBadRequest)
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
			return
		}

		var tenant models.Tenant
		if err := db.First(&tenant, req.TenantID).Error; err != nil {
			RespondError(c, "tenant não encontrado", http.StatusNotFound)
			return
		}

		client := tools.PayPalClient{
			ClientID:     tenant.PayPalClientID,
			Secret:       tenant.PayPalSecret,
			BaseURL:      cfg.PayPal.BaseURL,
			ReturnURL:    cfg.PayPal.ReturnURL,
			CancelURL:    cfg.PayPal.CancelURL,
			ErrorPageURL: cfg.PayPal.ErrorPageURL,
		}
		link := client.GeneratePaymentLink(c.Request.Context(), req.PayerName, req.AmountCents)

		RespondSuccess(c, gin.H{"url": link, "ok": link != cfg.PayPal.ErrorPageURL})
	}
}
