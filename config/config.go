package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	// Token simples para rotas administrativas (header X-Admin-Token).
	AdminToken string `json:"admin_token"`

	Billing struct {
		// Mode: "renewal" (lembrete + renovação automática) ou "lapse"
		// (varredura legada que marca vencidos como Overdue).
		Mode string `json:"mode"`

		// TimezoneOffsetHours desloca o relógio UTC para o fuso alvo
		// antes de truncar para data-calendário. Ecuador: -5.
		TimezoneOffsetHours int `json:"timezone_offset_hours"`

		// IntervalMinutes é o período do ticker do worker. O job em si
		// roda no máximo uma vez por dia-calendário.
		IntervalMinutes int `json:"interval_minutes"`
	} `json:"billing"`

	PayPal struct {
		BaseURL      string `json:"base_url"`
		ReturnURL    string `json:"return_url"`
		CancelURL    string `json:"cancel_url"`
		ErrorPageURL string `json:"error_page_url"` // sentinela quando o gateway falha
	} `json:"paypal"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Billing.Mode == "" {
		c.Billing.Mode = "renewal"
	}
	if c.Billing.TimezoneOffsetHours == 0 {
		c.Billing.TimezoneOffsetHours = -5
	}
	if c.Billing.IntervalMinutes <= 0 {
		c.Billing.IntervalMinutes = 15
	}
	if c.PayPal.BaseURL == "" {
		c.PayPal.BaseURL = "https://api-m.sandbox.paypal.com"
	}
	if c.PayPal.ReturnURL == "" {
		c.PayPal.ReturnURL = "https://app.memberly.fit/pago-exitoso"
	}
	if c.PayPal.CancelURL == "" {
		c.PayPal.CancelURL = "https://app.memberly.fit/pago-cancelado"
	}
	if c.PayPal.ErrorPageURL == "" {
		c.PayPal.ErrorPageURL = "https://app.memberly.fit/pago-error"
	}

	return c
}
