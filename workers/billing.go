package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"memberly/config"
	"memberly/models"
	"memberly/tools"

	"github.com/jinzhu/gorm"
)

/************************************************
/**** MARK: BILLING MODES ****/
/************************************************/
const BILLING_MODE_RENEWAL = "renewal"
const BILLING_MODE_LAPSE = "lapse"

/************************************************
/**** MARK: MESSAGE TEMPLATES ****/
/************************************************/
const TEMPLATE_REMINDER = "membership_reminder"
const TEMPLATE_RECEIPT = "membership_receipt"
const TEMPLATE_OVERDUE = "membership_overdue"

// reminderLeadDays: lembrete dispara quando faltam exatamente N dias.
// renewalLagDays: renovação dispara quando o período venceu ontem (-1).
const reminderLeadDays = 3
const renewalLagDays = -1

// PeriodRow é um período Paid junto com plano, membro e tenant.
// O store valida as junções na borda: linha sem relação não chega aqui.
type PeriodRow struct {
	Period models.SubscriptionPeriod
	Plan   models.Plan
	Member models.Member
	Tenant models.Tenant
}

// Store é o que o job precisa do banco. A implementação real (gorm) está em
// store.go; os testes usam um fake em memória.
type Store interface {
	ListPaidPeriods() ([]PeriodRow, error)
	SetReminderSent(periodID int64) error
	DeactivatePaidPeriods(tenantID, memberID int64) error
	HasPaidPeriodStarting(tenantID, memberID int64, startDate string) (bool, error)
	CreatePeriod(period *models.SubscriptionPeriod) error
	MarkOverdue(periodID int64) error
}

// Notifier envia uma mensagem de template para um telefone. Best-effort:
// falha é logada pelo chamador e nunca desfaz mutações já persistidas.
type Notifier interface {
	SendTemplate(ctx context.Context, to string, template string, headerParams []string, bodyParams []string) error
}

// PaymentLinker devolve uma URL de pagamento ou a URL sentinela de erro.
// Nunca retorna erro: o loop de reconciliação não pode travar no gateway.
type PaymentLinker interface {
	PaymentLink(ctx context.Context, tenant models.Tenant, payerName string, amountCents int64) string
}

// Charger executa a cobrança da renovação. Falha => a linha não é mutada
// e nenhuma notificação é enviada.
type Charger interface {
	Charge(ctx context.Context, tenant models.Tenant, memberName string, amountCents int64) error
}

// StubCharger aprova toda cobrança. É o comportamento observado em produção
// hoje; uma captura real entra aqui quando o gateway de débito automático
// estiver contratado.
type StubCharger struct{}

func (StubCharger) Charge(ctx context.Context, tenant models.Tenant, memberName string, amountCents int64) error {
	return nil
}

type Report struct {
	Reminders int
	Renewals  int
	Lapsed    int
	Failures  int
}

// Reconciler é o job de reconciliação de cobrança: varre todos os períodos
// Paid de todos os tenants e aplica as regras de lembrete/renovação (ou, no
// modo legado, a varredura de atraso).
type Reconciler struct {
	Store    Store
	Notifier Notifier
	Links    PaymentLinker
	Charger  Charger

	Now    func() time.Time
	Offset time.Duration // deslocamento fixo de fuso (Ecuador: -5h)
	Mode   string
}

// NewReconciler builds the production reconciler: gorm store, WhatsApp
// notifier (platform-level credentials) and per-tenant PayPal links.
func NewReconciler(database *gorm.DB, cfg config.Configuration) *Reconciler {
	return &Reconciler{
		Store:    &GormStore{DB: database},
		Notifier: NewQueuedNotifier(&WhatsAppNotifier{Client: tools.WhatsAppClientFromEnv()}, 64),
		Links:    PayPalLinker{Config: cfg},
		Charger:  StubCharger{},
		Now:      time.Now,
		Offset:   time.Duration(cfg.Billing.TimezoneOffsetHours) * time.Hour,
		Mode:     cfg.Billing.Mode,
	}
}

// Run processa todos os períodos Paid uma vez. Erro de leitura do store
// aborta a execução; erro em uma linha é logado, contado e não interrompe
// as demais.
func (r *Reconciler) Run(ctx context.Context) (Report, error) {
	var report Report

	today := r.today()
	log.Printf("billing worker: starting run for %s (mode=%s)", today.Format(models.DateLayout), r.mode())

	rows, err := r.Store.ListPaidPeriods()
	if err != nil {
		return report, fmt.Errorf("list paid periods: %w", err)
	}

	for _, row := range rows {
		var rowErr error
		if r.mode() == BILLING_MODE_LAPSE {
			rowErr = r.applyLapse(ctx, row, today, &report)
		} else {
			rowErr = r.applyRenewalRules(ctx, row, today, &report)
		}
		if rowErr != nil {
			report.Failures++
			log.Printf("billing worker: period %d (tenant %d, member %d): %v",
				row.Period.ID, row.Period.TenantID, row.Period.MemberID, rowErr)
		}
	}

	log.Printf("billing worker: run done: reminders=%d renewals=%d lapsed=%d failures=%d",
		report.Reminders, report.Renewals, report.Lapsed, report.Failures)
	return report, nil
}

// applyRenewalRules avalia as duas regras mutuamente exclusivas do modo
// padrão: lembrete de pré-vencimento e renovação automática.
func (r *Reconciler) applyRenewalRules(ctx context.Context, row PeriodRow, today time.Time, report *Report) error {
	days, err := daysUntil(row.Period.EndDate, today)
	if err != nil {
		return fmt.Errorf("malformed end_date %q: %w", row.Period.EndDate, err)
	}

	switch {
	case !row.Period.AutoRenew && days == reminderLeadDays && !row.Period.ReminderSent:
		return r.sendReminder(ctx, row, report)
	case row.Period.AutoRenew && days == renewalLagDays:
		return r.renew(ctx, row, today, report)
	}
	return nil
}

// sendReminder gera o link de pagamento, notifica e marca reminder_sent.
// A flag garante exatamente um lembrete por período; ela é gravada mesmo se
// o envio falhar, porque a notificação é best-effort e diffDays==3 só vale
// por um dia.
func (r *Reconciler) sendReminder(ctx context.Context, row PeriodRow, report *Report) error {
	link := r.Links.PaymentLink(ctx, row.Tenant, row.Member.FullName, row.Period.PriceCents)

	header := []string{row.Tenant.BusinessName}
	body := []string{row.Member.FullName, row.Tenant.BusinessName, link}
	if err := r.Notifier.SendTemplate(ctx, row.Member.Phone, TEMPLATE_REMINDER, header, body); err != nil {
		log.Printf("billing worker: reminder notify failed for period %d: %v", row.Period.ID, err)
	}

	if err := r.Store.SetReminderSent(row.Period.ID); err != nil {
		return fmt.Errorf("set reminder_sent: %w", err)
	}
	report.Reminders++
	return nil
}

// renew executa a sequência da renovação automática: guard de duplicata,
// cobrança, desativar o período atual, inserir o novo e enviar o recibo.
// As mutações vêm antes da notificação; recibo que falha só gera log.
func (r *Reconciler) renew(ctx context.Context, row PeriodRow, today time.Time, report *Report) error {
	startDate := today.Format(models.DateLayout)

	// Guard de idempotência: rodar o job duas vezes no mesmo dia não pode
	// renovar duas vezes.
	exists, err := r.Store.HasPaidPeriodStarting(row.Period.TenantID, row.Period.MemberID, startDate)
	if err != nil {
		return fmt.Errorf("duplicate guard: %w", err)
	}
	if exists {
		log.Printf("billing worker: period %d already renewed today, skipping", row.Period.ID)
		return nil
	}

	if err := r.Charger.Charge(ctx, row.Tenant, row.Member.FullName, row.Period.PriceCents); err != nil {
		return fmt.Errorf("charge declined: %w", err)
	}

	// Escopo (tenant, member): histórico do mesmo membro em outros tenants
	// não é tocado.
	if err := r.Store.DeactivatePaidPeriods(row.Period.TenantID, row.Period.MemberID); err != nil {
		return fmt.Errorf("deactivate current period: %w", err)
	}

	newEnd := today.AddDate(0, 0, int(row.Plan.DurationDays))
	next := models.SubscriptionPeriod{
		TenantID:      row.Period.TenantID,
		MemberID:      row.Period.MemberID,
		PlanID:        row.Period.PlanID,
		StartDate:     startDate,
		EndDate:       newEnd.Format(models.DateLayout),
		PaymentStatus: models.PAYMENT_STATUS_PAID,
		AutoRenew:     true,
		PriceCents:    row.Period.PriceCents,
	}
	if err := r.Store.CreatePeriod(&next); err != nil {
		return fmt.Errorf("insert renewed period: %w", err)
	}
	report.Renewals++

	header := []string{row.Tenant.BusinessName}
	body := []string{
		row.Member.FullName,
		row.Tenant.BusinessName,
		formatPrice(row.Period.PriceCents),
		formatDate(newEnd),
	}
	if err := r.Notifier.SendTemplate(ctx, row.Member.Phone, TEMPLATE_RECEIPT, header, body); err != nil {
		log.Printf("billing worker: receipt notify failed for period %d: %v", row.Period.ID, err)
	}
	return nil
}

// applyLapse é o modo legado: qualquer período Paid já vencido vira Overdue
// e o membro recebe um aviso genérico. Sem filtro por tier de tenant --
// a revisão mais nova do produto removeu o filtro Pro/Elite.
func (r *Reconciler) applyLapse(ctx context.Context, row PeriodRow, today time.Time, report *Report) error {
	days, err := daysUntil(row.Period.EndDate, today)
	if err != nil {
		return fmt.Errorf("malformed end_date %q: %w", row.Period.EndDate, err)
	}
	if days >= 0 {
		return nil
	}

	if err := r.Store.MarkOverdue(row.Period.ID); err != nil {
		return fmt.Errorf("mark overdue: %w", err)
	}
	report.Lapsed++

	header := []string{row.Tenant.BusinessName}
	body := []string{row.Member.FullName, row.Tenant.BusinessName, formatDateString(row.Period.EndDate)}
	if err := r.Notifier.SendTemplate(ctx, row.Member.Phone, TEMPLATE_OVERDUE, header, body); err != nil {
		log.Printf("billing worker: overdue notify failed for period %d: %v", row.Period.ID, err)
	}
	return nil
}

// today calcula a data-calendário "de hoje" no fuso alvo: UTC deslocado
// pelo offset fixo e truncado para meia-noite UTC. Comparações de data no
// restante do run usam só este valor.
func (r *Reconciler) today() time.Time {
	t := r.Now().UTC().Add(r.Offset)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r *Reconciler) mode() string {
	if r.Mode == "" {
		return BILLING_MODE_RENEWAL
	}
	return r.Mode
}

// daysUntil é a subtração de datas-calendário: ambas à meia-noite UTC, a
// diferença é sempre um múltiplo exato de 24h (estável a fuso/horário de
// verão). Negativo = já vencido.
func daysUntil(endDate string, today time.Time) (int, error) {
	end, err := time.ParseInLocation(models.DateLayout, endDate, time.UTC)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(today) / (24 * time.Hour)), nil
}

func formatPrice(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func formatDateString(date string) string {
	t, err := time.ParseInLocation(models.DateLayout, date, time.UTC)
	if err != nil {
		return date
	}
	return formatDate(t)
}

// StartBillingWorker dispara o goroutine do job. O ticker é curto, mas o
// job roda no máximo uma vez por dia-calendário (no fuso do job); um run
// abortado por erro de leitura tenta de novo no próximo tick.
func StartBillingWorker(database *gorm.DB, cfg config.Configuration) {
	rec := NewReconciler(database, cfg)

	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Billing.IntervalMinutes) * time.Minute)
		defer ticker.Stop()

		lastRun := ""
		for range ticker.C {
			today := rec.today().Format(models.DateLayout)
			if today == lastRun {
				continue
			}
			if _, err := rec.Run(context.Background()); err != nil {
				log.Printf("billing worker: run aborted: %v", err)
				continue
			}
			lastRun = today
		}
	}()
}
