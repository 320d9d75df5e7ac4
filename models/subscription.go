package models

import "time"

/************************************************
/**** MARK: PAYMENT STATUS ****/
/************************************************/
const PAYMENT_STATUS_PAID = "Paid"
const PAYMENT_STATUS_OVERDUE = "Overdue"
const PAYMENT_STATUS_INACTIVE = "Inactive"

// DateLayout é o formato de data-calendário usado em StartDate/EndDate.
// Datas são comparadas como datas locais, nunca como timestamps.
const DateLayout = "2006-01-02"

// SubscriptionPeriod representa um período de cobrança de um membro em um tenant.
//
// Invariante: no máximo uma linha Paid por (tenant, member). O job de
// reconciliação garante isso desativando a linha atual antes de inserir a
// renovada, com um guard de inserção duplicada por start_date.
// Linhas nunca são apagadas; períodos substituídos ficam Inactive.
type SubscriptionPeriod struct {
	ID       int64 `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	TenantID int64 `gorm:"not null;index" json:"tenant_id" form:"tenant_id"`
	MemberID int64 `gorm:"not null;index" json:"member_id" form:"member_id"`
	PlanID   int64 `gorm:"not null" json:"plan_id" form:"plan_id"`

	StartDate string `gorm:"not null" json:"start_date" form:"start_date"` // YYYY-MM-DD
	EndDate   string `gorm:"not null;index" json:"end_date" form:"end_date"`

	PaymentStatus string `gorm:"not null;default:'Paid';index" json:"payment_status" form:"payment_status"`
	AutoRenew     bool   `gorm:"not null;default:false" json:"auto_renew" form:"auto_renew"`
	ReminderSent  bool   `gorm:"not null;default:false" json:"reminder_sent"`
	PriceCents    int64  `gorm:"not null;default:0" json:"price_cents" form:"price_cents"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
