package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, name+" é obrigatório", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, name+" inválido", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// todayInZone devolve a data-calendário de hoje no fuso alvo (UTC + offset),
// truncada para meia-noite UTC. Mesma regra que o worker de cobrança usa.
// Quem precisa da string formata com models.DateLayout; assim ninguém
// re-parseia uma data que nós mesmos geramos.
func todayInZone(offsetHours int) time.Time {
	t := time.Now().UTC().Add(time.Duration(offsetHours) * time.Hour)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
