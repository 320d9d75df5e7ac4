package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const groqDefaultURL = "https://api.groq.com/openai/v1/chat/completions"
const groqDefaultModel = "llama-3.3-70b-versatile"

// Prompt do assistente de vendas. As "regras estritas" garantem que o bot
// peça contato quando o visitante quer falar com um humano, e confirme
// quando detectamos que ele acabou de deixar telefone/email.
const salesSystemPrompt = `Eres el asistente virtual de ventas de 'Memberly', un software SaaS moderno para gestionar gimnasios. Tu objetivo es ser muy amable, profesional y convencer a los dueños de gimnasios de usar nuestro sistema.

Planes y características principales:
- Starter ($29/mes, $290/anual): Hasta 100 clientes activos, pases de acceso con código QR, staff ilimitado y dashboard de métricas básicas.
- Pro ($69/mes, $690/anual): Hasta 500 clientes activos, todo lo del plan Starter + envío de recordatorios automáticos de pago a clientes por WhatsApp.
- Elite ($149/mes, $1490/anual): Clientes ilimitados sin restricciones, todo lo de Pro + reportes financieros avanzados (Ingreso Recurrente MRR, Flujo de Caja, Tasa de Abandono) y soporte prioritario 24/7.
(Aclara que el plan anual incluye dos meses gratis pagando el año completo).

REGLAS ESTRICTAS:
1. Responde en español, muy conciso (máximo 3 oraciones) y usa emojis.
2. Si el usuario pide hablar con un humano, asesor, soporte, o dice que quiere contratar, dile EXACTAMENTE: "¡Claro que sí! 🤝 Un asesor humano puede ayudarte a resolver esto de inmediato. Por favor, déjame tu número de WhatsApp o correo electrónico y te contactaremos hoy mismo."
3. Si detectas que el usuario te acaba de dar su número de teléfono o correo electrónico, responde EXACTAMENTE: "¡Perfecto! 📝 He guardado tus datos. Un experto de Memberly se pondrá en contacto contigo muy pronto para asesorarte."`

// GenerateSalesReply calls the Groq chat completions API (OpenAI-compatible)
// and returns the assistant text.
func GenerateSalesReply(ctx context.Context, userText string) (string, error) {
	apiKey := strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	if apiKey == "" {
		return "", fmt.Errorf("GROQ_API_KEY not set")
	}
	model := getenv("GROQ_MODEL", groqDefaultModel)
	url := getenv("GROQ_API_URL", groqDefaultURL)

	reqBody := map[string]any{
		"model": model,
		"messages": []map[string]any{
			{"role": "system", "content": salesSystemPrompt},
			{"role": "user", "content": userText},
		},
		"temperature": 0.3,
	}

	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("groq error %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
