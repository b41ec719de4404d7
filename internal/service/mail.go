package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kelasin/kelasin-api/pkg/config"
	"github.com/kelasin/kelasin-api/pkg/jobs"
	"github.com/kelasin/kelasin-api/pkg/mailer"
)

// JobTypeVerificationMail identifies verification email jobs.
const JobTypeVerificationMail = "verification_mail"

// VerificationMail is the payload carried by a verification email job.
type VerificationMail struct {
	Email string
	Token string
}

// NewMailQueue builds the background queue that delivers account emails.
// Delivery is best-effort: a failed send is retried per config and then
// logged and dropped, never surfacing to the request that enqueued it.
func NewMailQueue(sender mailer.Sender, baseURL string, cfg config.MailConfig, logger *zap.Logger) *jobs.Queue {
	if logger == nil {
		logger = zap.NewNop()
	}

	handler := func(ctx context.Context, job jobs.Job) error {
		mail, ok := job.Payload.(VerificationMail)
		if !ok {
			logger.Warn("mail job with unexpected payload", zap.String("job_id", job.ID), zap.String("type", job.Type))
			return nil
		}
		body := fmt.Sprintf("Please verify your email by clicking the link:\n%s/verifikasi-email/%s", baseURL, mail.Token)
		if err := sender.Send(mail.Email, "Email Verification", body); err != nil {
			return err
		}
		logger.Info("verification email sent", zap.String("email", mail.Email))
		return nil
	}

	return jobs.NewQueue("mail", handler, jobs.QueueConfig{
		Workers:    cfg.Workers,
		BufferSize: cfg.BufferSize,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
	})
}
