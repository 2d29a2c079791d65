// Package mailer delivers the rendered reports over SMTP.
//
// Sends are paced by a rate limiter so a run with many salespeople does
// not trip the relay's throttling. When email is disabled in config,
// sends are logged and skipped so the rest of the run still produces
// workbooks.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/gomail.v2"

	"salescli/internal/config"
	apperrors "salescli/internal/errors"
)

// Mailer sends report emails through the configured SMTP relay
type Mailer struct {
	cfg     config.EmailConfig
	dialer  *gomail.Dialer
	limiter *rate.Limiter
}

// New creates a mailer from the email configuration
func New(cfg config.EmailConfig) *Mailer {
	interval := cfg.SendInterval
	if interval <= 0 {
		interval = config.DefaultSendInterval
	}
	return &Mailer{
		cfg:     cfg,
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// SendSalespersonReport emails one salesperson's report: the rendered
// HTML body with the workbook attached.
func (m *Mailer) SendSalespersonReport(ctx context.Context, name string, recipients []string, html, attachmentPath string, year int) error {
	if m.cfg.Disabled {
		slog.Info("email disabled, skipping salesperson report",
			slog.String("salesperson", name))
		return nil
	}
	if len(recipients) == 0 {
		return apperrors.NewEmailError(
			fmt.Sprintf("no recipients configured for %s", name), nil)
	}

	subject := fmt.Sprintf("%s - Your %d Weekly Sales Report", name, year)
	msg := m.buildMessage(recipients, subject, html)
	msg.Attach(attachmentPath)

	if err := m.send(ctx, msg); err != nil {
		return apperrors.NewEmailError(
			fmt.Sprintf("failed to send report to %s", name), err)
	}

	slog.Info("sent salesperson report",
		slog.String("salesperson", name),
		slog.Int("recipients", len(recipients)))
	return nil
}

// SendManagementReport emails the company rollup to the management
// recipients, with the company logo embedded inline when available.
func (m *Mailer) SendManagementReport(ctx context.Context, recipients []string, html, logoPath string, ts time.Time) error {
	if m.cfg.Disabled {
		slog.Info("email disabled, skipping management report")
		return nil
	}
	if len(recipients) == 0 {
		return apperrors.NewEmailError("no management recipients configured", nil)
	}

	subject := fmt.Sprintf("Weekly Sales Management Report - %s", ts.Format("2006-01-02"))
	msg := m.buildMessage(recipients, subject, html)

	if logoPath != "" {
		if _, err := os.Stat(logoPath); err == nil {
			msg.Embed(logoPath, gomail.Rename("company_logo"))
		} else {
			slog.Warn("logo file not found, sending without it",
				slog.String("path", logoPath))
		}
	}

	if err := m.send(ctx, msg); err != nil {
		return apperrors.NewEmailError("failed to send management report", err)
	}

	slog.Info("sent management report", slog.Int("recipients", len(recipients)))
	return nil
}

func (m *Mailer) buildMessage(recipients []string, subject, html string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Sender)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return msg
}

func (m *Mailer) send(ctx context.Context, msg *gomail.Message) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return err
	}
	return m.dialer.DialAndSend(msg)
}
