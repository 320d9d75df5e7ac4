package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"memberly/config"
	"memberly/models"
	"memberly/tools"
)

// WhatsAppNotifier implementa Notifier por cima do Cloud API. O telefone é
// normalizado para só-dígitos antes do envio.
type WhatsAppNotifier struct {
	Client   tools.WhatsAppClient
	Language string // default "es"
}

func (n *WhatsAppNotifier) SendTemplate(ctx context.Context, to string, template string, headerParams []string, bodyParams []string) error {
	phone, err := tools.NormalizePhone(to)
	if err != nil {
		return fmt.Errorf("normalize phone %q: %w", to, err)
	}
	return n.Client.SendTemplate(ctx, phone, template, n.Language, headerParams, bodyParams)
}

// QueuedNotifier desacopla o loop de reconciliação da latência do notifier:
// envios entram numa fila FIFO drenada por um único goroutine, o que preserva
// a ordem "mutação antes de notificação" de cada linha. Fila cheia => envio
// descartado com erro (best-effort, como o contrato exige).
type QueuedNotifier struct {
	next Notifier
	jobs chan notifyJob
}

type notifyJob struct {
	to       string
	template string
	header   []string
	body     []string
}

func NewQueuedNotifier(next Notifier, size int) *QueuedNotifier {
	if size <= 0 {
		size = 64
	}
	q := &QueuedNotifier{next: next, jobs: make(chan notifyJob, size)}
	go q.loop()
	return q
}

func (q *QueuedNotifier) loop() {
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := q.next.SendTemplate(ctx, job.to, job.template, job.header, job.body); err != nil {
			log.Printf("notifier queue: send failed (template=%s): %v", job.template, err)
		}
		cancel()
	}
}

func (q *QueuedNotifier) SendTemplate(ctx context.Context, to string, template string, headerParams []string, bodyParams []string) error {
	select {
	case q.jobs <- notifyJob{to: to, template: template, header: headerParams, body: bodyParams}:
		return nil
	default:
		return fmt.Errorf("notification queue full")
	}
}

func (q *QueuedNotifier) Close() {
	close(q.jobs)
}

// PayPalLinker implementa PaymentLinker com as credenciais do tenant.
// Herda a degradação para sentinela do PayPalClient: nunca retorna erro.
type PayPalLinker struct {
	Config config.Configuration
}

func (l PayPalLinker) PaymentLink(ctx context.Context, tenant models.Tenant, payerName string, amountCents int64) string {
	client := tools.PayPalClient{
		ClientID:     tenant.PayPalClientID,
		Secret:       tenant.PayPalSecret,
		BaseURL:      l.Config.PayPal.BaseURL,
		ReturnURL:    l.Config.PayPal.ReturnURL,
		CancelURL:    l.Config.PayPal.CancelURL,
		ErrorPageURL: l.Config.PayPal.ErrorPageURL,
	}
	return client.GeneratePaymentLink(ctx, payerName, amountCents)
}
