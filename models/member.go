package models

import "time"

/************************************************
/**** MARK: MEMBER STATUS ****/
/************************************************/
const MEMBER_STATUS_ACTIVE = "Active"
const MEMBER_STATUS_INACTIVE = "Inactive"

// Member representa um aluno/sócio de um tenant.
// Phone é o destino das notificações (WhatsApp).
type Member struct {
	ID               int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	TenantID         int64      `gorm:"not null;index" json:"tenant_id" form:"tenant_id"`
	FullName         string     `gorm:"not null" json:"full_name" form:"full_name"`
	Phone            string     `gorm:"not null" json:"phone" form:"phone"`
	Email            string     `gorm:"default:''" json:"email" form:"email"`
	PhotoURL         string     `gorm:"column:photo_url;default:''" json:"photo_url" form:"photo_url"`
	EmergencyContact string     `gorm:"default:''" json:"emergency_contact" form:"emergency_contact"`
	Status           string     `gorm:"not null;default:'Active'" json:"status" form:"status"`
	CreatedAt        *time.Time `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}
