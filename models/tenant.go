package models

import "time"

/************************************************
/**** MARK: SAAS TIERS ****/
/************************************************/
const TENANT_TIER_STARTER = "starter"
const TENANT_TIER_PRO = "pro"
const TENANT_TIER_ELITE = "elite"

// Tenant representa uma conta de academia (um gym) no sistema multi-tenant.
// As credenciais de gateway são por tenant; o restante do sistema só as lê.
type Tenant struct {
	ID           int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	BusinessName string `gorm:"not null" json:"business_name" form:"business_name"`
	SaaSTier     string `gorm:"column:saas_tier;not null;default:'starter'" json:"saas_tier" form:"saas_tier"`

	// PayPal (sandbox ou live, conforme config do servidor)
	PayPalClientID string `gorm:"column:paypal_client_id;default:''" json:"paypal_client_id" form:"paypal_client_id"`
	PayPalSecret   string `gorm:"column:paypal_secret;default:''" json:"-" form:"paypal_secret"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
