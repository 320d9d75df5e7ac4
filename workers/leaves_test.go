package workers

import (
	"context"
	"fmt"
	"testing"
	"time"
)

type recordingNotifier struct {
	delivered chan sentMessage
}

func (n *recordingNotifier) SendTemplate(ctx context.Context, to string, template string, headerParams []string, bodyParams []string) error {
	n.delivered <- sentMessage{To: to, Template: template, Header: headerParams, Body: bodyParams}
	return nil
}

func TestQueuedNotifierPreservesOrder(t *testing.T) {
	inner := &recordingNotifier{delivered: make(chan sentMessage, 10)}
	q := NewQueuedNotifier(inner, 10)
	defer q.Close()

	for i := 0; i < 3; i++ {
		err := q.SendTemplate(context.Background(), "593991234567", TEMPLATE_REMINDER, nil, []string{fmt.Sprint(i)})
		if err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	for i := 0; i < 3; i++ {
		select {
		case msg := <-inner.delivered:
			if len(msg.Body) != 1 || msg.Body[0] != fmt.Sprint(i) {
				t.Fatalf("expected message %d in order, got %v", i, msg.Body)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for message %d", i)
		}
	}
}

func TestQueuedNotifierRejectsWhenFull(t *testing.T) {
	// inner bloqueado: canal sem buffer e ninguém lendo
	inner := &recordingNotifier{delivered: make(chan sentMessage)}
	q := NewQueuedNotifier(inner, 1)

	// primeiro envio ocupa o worker, segundo ocupa a fila; o terceiro
	// precisa ser rejeitado sem bloquear o loop de reconciliação
	var err error
	for i := 0; i < 3 && err == nil; i++ {
		err = q.SendTemplate(context.Background(), "593991234567", TEMPLATE_RECEIPT, nil, nil)
	}
	if err == nil {
		t.Fatal("expected queue-full error")
	}
}
