package models

import "time"

// Plan representa um plano de assinatura oferecido por um tenant.
// DurationDays é usado pelo job de cobrança para calcular o fim do próximo período.
type Plan struct {
	ID          int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	TenantID    int64  `gorm:"not null;index" json:"tenant_id" form:"tenant_id"`
	Name        string `gorm:"not null" json:"name" form:"name"`
	Description string `gorm:"type:text" json:"description" form:"description"`
	PriceCents  int64  `gorm:"not null;default:0" json:"price_cents" form:"price_cents"`

	// DurationDays define quantos dias de acesso cada período deste plano dá.
	DurationDays int64 `gorm:"not null;default:30" json:"duration_days" form:"duration_days"`

	Currency  string     `gorm:"not null;default:'USD'" json:"currency" form:"currency"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active" form:"is_active"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
