package models

import "time"

const ACCESS_METHOD_QR = "QR"

// Attendance registra uma entrada validada na recepção (check-in via QR).
type Attendance struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	TenantID     int64      `gorm:"not null;index" json:"tenant_id"`
	MemberID     int64      `gorm:"not null;index" json:"member_id"`
	AccessMethod string     `gorm:"not null;default:'QR'" json:"access_method"`
	CreatedAt    *time.Time `json:"created_at"`
}
