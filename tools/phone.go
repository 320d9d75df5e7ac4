package tools

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizePhone normaliza um telefone para o formato aceito pelo WhatsApp
// Cloud API (apenas dígitos, formato internacional, sem '+').
//
// Heurística atual (Ecuador):
// - remove tudo que não é dígito
// - se vier com 8/9 dígitos (nacional, sem o zero), assume EC e prefixa 593
// - se já vier com DDI (>= 11 dígitos), mantém
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty phone")
	}

	// mantém apenas dígitos
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	phone := b.String()
	phone = strings.TrimLeft(phone, "0")

	// EC comum (celular sem o zero): 8 ou 9 dígitos -> prefixa 593
	if len(phone) == 8 || len(phone) == 9 {
		phone = "593" + phone
	}

	// validação bem leve: DDI + número
	if len(phone) < 11 {
		return "", fmt.Errorf("invalid phone length: %d", len(phone))
	}
	return phone, nil
}
