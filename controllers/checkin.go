package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"memberly/config"
	dbpkg "memberly/db"
	"memberly/models"

	"github.com/gin-gonic/gin"
)

const checkinPlaceholderPhoto = "https://via.placeholder.com/150?text=Sin+Foto"

// Página que o recepcionista vê ao escanear o QR: verde (autorizado) ou
// vermelha (negado). Sempre 200 + HTML, nunca JSON.
const checkinPageHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Validación de Pase</title>
</head>
<body style="background-color: %s; color: white; font-family: system-ui, sans-serif; display: flex; flex-direction: column; align-items: center; justify-content: center; height: 100vh; margin: 0; text-align: center;">
    <div style="background: rgba(0,0,0,0.2); padding: 40px 20px; border-radius: 24px; box-shadow: 0 10px 25px rgba(0,0,0,0.2); width: 85%%; max-width: 350px;">
        <h1 style="font-size: 4rem; margin: 0 0 10px 0;">%s</h1>
        <img src="%s" alt="Foto del Socio" style="width: 160px; height: 160px; border-radius: 50%%; border: 6px solid white; object-fit: cover; margin: 15px auto; box-shadow: 0 4px 15px rgba(0,0,0,0.3); background-color: white;">
        <h2 style="font-size: 1.8rem; margin: 10px 0; font-weight: bold;">%s</h2>
        <p style="font-size: 1.4rem; margin: 0; font-weight: 500;">%s</p>
    </div>
</body>
</html>`

type checkinView struct {
	Color string
	Icon  string
	Msg   string
	Name  string
	Photo string
}

// CheckinHandler valida o pase de um membro: período mais recente Paid e
// ainda vigente => tela verde + registro de assistência; qualquer outra
// coisa => tela vermelha. GET /checkin/:memberId
func CheckinHandler(cfg config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// default: pantalla roja
		view := checkinView{
			Color: "#EF4444",
			Icon:  "❌",
			Msg:   "Acceso Denegado",
			Name:  "Cliente Desconocido",
			Photo: checkinPlaceholderPhoto,
		}

		// aqui não usamos ParamID: esta rota sempre responde HTML,
		// inclusive para id inválido (pantalla roja)
		db := dbpkg.DBInstance(c)
		memberID, err := strconv.ParseInt(c.Param("memberId"), 10, 64)
		if db == nil || err != nil || memberID <= 0 {
			renderCheckin(c, view)
			return
		}

		var period models.SubscriptionPeriod
		if err := db.
			Where("member_id = ?", memberID).
			Order("end_date desc").
			First(&period).Error; err != nil {
			renderCheckin(c, view)
			return
		}

		var member models.Member
		if err := db.First(&member, memberID).Error; err == nil {
			view.Name = member.FullName
			if member.PhotoURL != "" {
				view.Photo = member.PhotoURL
			}
		}

		today := todayInZone(cfg.Billing.TimezoneOffsetHours).Format(models.DateLayout)
		if period.PaymentStatus == models.PAYMENT_STATUS_PAID && period.EndDate >= today {
			view.Color = "#10B981"
			view.Icon = "✅"
			view.Msg = "Pase Autorizado"

			attendance := models.Attendance{
				TenantID:     period.TenantID,
				MemberID:     memberID,
				AccessMethod: models.ACCESS_METHOD_QR,
			}
			if err := db.Create(&attendance).Error; err != nil {
				// pase segue válido mesmo sem o registro
				log.Printf("checkin: attendance insert failed: %v", err)
			}
		}

		renderCheckin(c, view)
	}
}

func renderCheckin(c *gin.Context, view checkinView) {
	html := fmt.Sprintf(checkinPageHTML, view.Color, view.Icon, view.Photo, view.Msg, view.Name)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
