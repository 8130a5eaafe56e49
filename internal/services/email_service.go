package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// EmailService sends tenant-facing email through Resend.
type EmailService struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

// NewEmailService creates a new email service
func NewEmailService(apiKey string, fromEmail string, fromName string) *EmailService {
	return &EmailService{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    zap.L(),
	}
}

// ReceiptEmailParams carries the data for a rent receipt email.
type ReceiptEmailParams struct {
	To           string
	TenantName   string
	PropertyName string
	UnitLabel    string
	Amount       float64
	PeriodYear   int32
	PeriodMonth  int32
	PaidOn       time.Time
	LandlordName string
}

// IncrementNoticeEmailParams carries the data for an upcoming rent increase
// notice.
type IncrementNoticeEmailParams struct {
	To            string
	TenantName    string
	PropertyName  string
	UnitLabel     string
	CurrentRent   float64
	NewRent       float64
	PercentChange float64
	EffectiveDate time.Time
	Projected     bool
	LandlordName  string
}

type receiptTemplateData struct {
	TenantName   string
	PropertyName string
	UnitLabel    string
	Amount       string
	Period       string
	PaidOn       string
	LandlordName string
}

type noticeTemplateData struct {
	TenantName    string
	PropertyName  string
	UnitLabel     string
	CurrentRent   string
	NewRent       string
	PercentChange string
	EffectiveDate string
	Projected     bool
	LandlordName  string
}

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

const receiptHTMLTemplate = `
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f4f4f4; padding: 20px; text-align: center; }
        .amount { font-size: 24px; font-weight: bold; text-align: center; padding: 15px; }
        .details { padding: 20px; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Recibo de alquiler</h2>
        </div>
        <div class="amount">{{.Amount}}</div>
        <div class="details">
            <p>Hola {{.TenantName}},</p>
            <p>Registramos tu pago del alquiler de <strong>{{.PropertyName}} &mdash; {{.UnitLabel}}</strong>
            correspondiente a <strong>{{.Period}}</strong>, recibido el {{.PaidOn}}.</p>
            <p>Gracias por tu pago.</p>
            <p>Saludos,<br>{{.LandlordName}}</p>
        </div>
        <div class="footer">
            <p>Este recibo fue generado autom&aacute;ticamente.</p>
        </div>
    </div>
</body>
</html>`

const receiptTextTemplate = `Hola {{.TenantName}},

Registramos tu pago del alquiler de {{.PropertyName}} - {{.UnitLabel}} correspondiente a {{.Period}}, recibido el {{.PaidOn}}.

Monto: {{.Amount}}

Gracias por tu pago.

Saludos,
{{.LandlordName}}`

const noticeHTMLTemplate = `
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f4f4f4; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .highlight { background-color: #fff3cd; border: 1px solid #ffeaa7; padding: 15px; margin: 15px 0; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Aviso de ajuste de alquiler</h2>
        </div>
        <div class="content">
            <p>Hola {{.TenantName}},</p>
            <p>Te informamos que el alquiler de <strong>{{.PropertyName}} &mdash; {{.UnitLabel}}</strong>
            se actualiza a partir del <strong>{{.EffectiveDate}}</strong>.</p>
            <div class="highlight">
                <p>Alquiler actual: <strong>{{.CurrentRent}}</strong><br>
                Nuevo alquiler: <strong>{{.NewRent}}</strong><br>
                Ajuste: <strong>{{.PercentChange}}%</strong></p>
            </div>
            {{if .Projected}}<p><em>El nuevo monto incluye meses proyectados porque el INDEC
            todav&iacute;a no public&oacute; todos los &iacute;ndices del per&iacute;odo. Puede
            variar levemente cuando se publiquen los datos oficiales.</em></p>{{end}}
            <p>El ajuste se calcula con el &iacute;ndice de precios al consumidor (IPC) publicado
            por el INDEC.</p>
            <p>Saludos,<br>{{.LandlordName}}</p>
        </div>
        <div class="footer">
            <p>Este aviso fue generado autom&aacute;ticamente.</p>
        </div>
    </div>
</body>
</html>`

const noticeTextTemplate = `Hola {{.TenantName}},

Te informamos que el alquiler de {{.PropertyName}} - {{.UnitLabel}} se actualiza a partir del {{.EffectiveDate}}.

Alquiler actual: {{.CurrentRent}}
Nuevo alquiler: {{.NewRent}}
Ajuste: {{.PercentChange}}%
{{if .Projected}}
El nuevo monto incluye meses proyectados porque el INDEC todavia no publico todos los indices del periodo.
{{end}}
El ajuste se calcula con el indice de precios al consumidor (IPC) publicado por el INDEC.

Saludos,
{{.LandlordName}}`

// SendReceipt emails a rent receipt to a tenant.
func (s *EmailService) SendReceipt(ctx context.Context, params ReceiptEmailParams) error {
	data := receiptTemplateData{
		TenantName:   params.TenantName,
		PropertyName: params.PropertyName,
		UnitLabel:    params.UnitLabel,
		Amount:       helpers.FormatARS(params.Amount),
		Period:       formatPeriod(params.PeriodYear, params.PeriodMonth),
		PaidOn:       params.PaidOn.Format("02/01/2006"),
		LandlordName: s.displayLandlord(params.LandlordName),
	}

	subject := fmt.Sprintf("Recibo de alquiler - %s", data.Period)
	return s.send(ctx, params.To, subject, receiptHTMLTemplate, receiptTextTemplate, data, "receipt")
}

// SendIncrementNotice emails an upcoming rent increase notice to a tenant.
func (s *EmailService) SendIncrementNotice(ctx context.Context, params IncrementNoticeEmailParams) error {
	data := noticeTemplateData{
		TenantName:    params.TenantName,
		PropertyName:  params.PropertyName,
		UnitLabel:     params.UnitLabel,
		CurrentRent:   helpers.FormatARS(params.CurrentRent),
		NewRent:       helpers.FormatARS(params.NewRent),
		PercentChange: fmt.Sprintf("%.2f", params.PercentChange),
		EffectiveDate: params.EffectiveDate.Format("02/01/2006"),
		Projected:     params.Projected,
		LandlordName:  s.displayLandlord(params.LandlordName),
	}

	subject := fmt.Sprintf("Aviso de ajuste de alquiler - vigente desde %s", data.EffectiveDate)
	return s.send(ctx, params.To, subject, noticeHTMLTemplate, noticeTextTemplate, data, "increment_notice")
}

func (s *EmailService) send(ctx context.Context, to, subject, htmlTmpl, textTmpl string, data interface{}, category string) error {
	htmlBody, err := renderTemplate("html", htmlTmpl, data)
	if err != nil {
		return fmt.Errorf("failed to render HTML body: %w", err)
	}
	textBody, err := renderTemplate("text", textTmpl, data)
	if err != nil {
		return fmt.Errorf("failed to render text body: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: category},
		},
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("category", category))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", to),
		zap.String("category", category))

	return nil
}

func (s *EmailService) displayLandlord(name string) string {
	if name != "" {
		return name
	}
	return s.fromName
}

func renderTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatPeriod renders a payment period like "marzo 2025".
func formatPeriod(year, month int32) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d-%02d", year, month)
	}
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}
