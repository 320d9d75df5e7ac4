package controllers

import (
	"log"
	"net/http"
	"regexp"
	"strings"

	dbpkg "memberly/db"
	"memberly/models"
	"memberly/tools"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string `json:"message" form:"message"`
}

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// telefones com pelo menos 8 dígitos, com ou sem "+" (cobre +593 e locais)
var phoneRegex = regexp.MustCompile(`\+?\d[\d\s-]{7,14}\d`)

// ExtractContact procura um email ou telefone deixado na mensagem do
// visitante. Email tem prioridade sobre telefone.
func ExtractContact(message string) (string, bool) {
	if m := emailRegex.FindString(message); m != "" {
		return m, true
	}
	if m := phoneRegex.FindString(message); m != "" {
		return strings.TrimSpace(m), true
	}
	return "", false
}

// Chat é o chatbot de vendas: captura silenciosamente prospectos (email ou
// telefone na mensagem) e repassa a conversa para o Groq. POST /api/chat
func Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = "Hola"
	}

	if contact, ok := ExtractContact(message); ok {
		log.Printf("chat: new lead captured -> %s", contact)
		db := dbpkg.DBInstance(c)
		if db != nil {
			lead := models.Lead{Contact: contact, OriginalMessage: message}
			if err := db.Create(&lead).Error; err != nil {
				// lead perdido não pode derrubar a conversa
				log.Printf("chat: lead insert failed: %v", err)
			}
		}
	}

	reply, err := tools.GenerateSalesReply(c.Request.Context(), message)
	if err != nil {
		log.Printf("chat: groq error: %v", err)
		RespondError(c, "Error en la comunicación con la Inteligencia Artificial.", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"reply": reply})
}
