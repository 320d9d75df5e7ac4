package workers

import (
	"log"

	"memberly/models"

	"github.com/jinzhu/gorm"
)

// GormStore implementa Store em cima do gorm.
type GormStore struct {
	DB *gorm.DB
}

// ListPaidPeriods carrega todos os períodos Paid com plano, membro e tenant.
// Linha com junção quebrada (plano/membro/tenant sumido) é logada e pulada:
// dado malformado não entra no loop de regras.
func (s *GormStore) ListPaidPeriods() ([]PeriodRow, error) {
	var periods []models.SubscriptionPeriod
	if err := s.DB.
		Where("payment_status = ?", models.PAYMENT_STATUS_PAID).
		Order("id asc").
		Find(&periods).Error; err != nil {
		return nil, err
	}

	rows := make([]PeriodRow, 0, len(periods))
	for _, p := range periods {
		var row PeriodRow
		row.Period = p

		if err := s.DB.First(&row.Plan, p.PlanID).Error; err != nil {
			log.Printf("billing store: period %d: plan %d not found, skipping", p.ID, p.PlanID)
			continue
		}
		if err := s.DB.First(&row.Member, p.MemberID).Error; err != nil {
			log.Printf("billing store: period %d: member %d not found, skipping", p.ID, p.MemberID)
			continue
		}
		if err := s.DB.First(&row.Tenant, p.TenantID).Error; err != nil {
			log.Printf("billing store: period %d: tenant %d not found, skipping", p.ID, p.TenantID)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *GormStore) SetReminderSent(periodID int64) error {
	return s.DB.Model(&models.SubscriptionPeriod{}).
		Where("id = ?", periodID).
		Update("reminder_sent", true).Error
}

func (s *GormStore) DeactivatePaidPeriods(tenantID, memberID int64) error {
	return s.DB.Model(&models.SubscriptionPeriod{}).
		Where("tenant_id = ? AND member_id = ? AND payment_status = ?",
			tenantID, memberID, models.PAYMENT_STATUS_PAID).
		Update("payment_status", models.PAYMENT_STATUS_INACTIVE).Error
}

func (s *GormStore) HasPaidPeriodStarting(tenantID, memberID int64, startDate string) (bool, error) {
	var count int
	err := s.DB.Model(&models.SubscriptionPeriod{}).
		Where("tenant_id = ? AND member_id = ? AND start_date = ? AND payment_status = ?",
			tenantID, memberID, startDate, models.PAYMENT_STATUS_PAID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreatePeriod(period *models.SubscriptionPeriod) error {
	return s.DB.Create(period).Error
}

func (s *GormStore) MarkOverdue(periodID int64) error {
	return s.DB.Model(&models.SubscriptionPeriod{}).
		Where("id = ?", periodID).
		Update("payment_status", models.PAYMENT_STATUS_OVERDUE).Error
}
