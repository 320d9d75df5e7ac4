package models

import "time"

// Lead é um prospecto capturado pelo chatbot de vendas: quando o visitante
// deixa um email ou telefone na conversa, guardamos silenciosamente aqui.
type Lead struct {
	ID              int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Contact         string     `gorm:"not null" json:"contact"`
	OriginalMessage string     `gorm:"type:text" json:"original_message"`
	CreatedAt       *time.Time `json:"created_at"`
}
