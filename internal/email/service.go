package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"text/template"

	"outreach-server/internal/observability"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrEmptyTemplate       = errors.New("email template is empty")
)

// maxConcurrentSends bounds provider fan-out during a bulk send.
const maxConcurrentSends = 5

// MailClient is the provider boundary the service sends through.
type MailClient interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// OutreachRecipient identifies one creator in a bulk outreach send
type OutreachRecipient struct {
	CreatorID string
	Name      string
	Address   string
}

// OutreachContent carries the campaign fields rendered into the pitch email
type OutreachContent struct {
	CampaignName string
	Brand        string
	Goals        string
	Deliverables string
	Timeline     string
}

// OutreachResult is delivered to the per-item callback as each send settles
type OutreachResult struct {
	CreatorID string
	Err       error
}

// OutreachSummary aggregates a bulk send for logging
type OutreachSummary struct {
	Sent   int
	Failed int
}

// EmailService handles sending emails
type EmailService struct {
	mailClient    MailClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	CreatorName  string
	CampaignName string
	Brand        string
	Goals        string
	Deliverables string
	Timeline     string
}

// New creates a new EmailService
func New(mailClient MailClient, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			"outreach_pitch": `
			<html>
				<body>
					<h1>Hi {{.CreatorName}},</h1>
					<p>We're reaching out on behalf of <strong>{{.Brand}}</strong> about the {{.CampaignName}} campaign.</p>
					{{if .Goals}}<p>{{.Goals}}</p>{{end}}
					<p>What we'd love from you:</p>
					<p>{{.Deliverables}}</p>
					{{if .Timeline}}<p>Timeline: {{.Timeline}}</p>{{end}}
					<p>If this sounds interesting, just reply to this email and we'll share the contract details.</p>
					<p>Talk soon!</p>
				</body>
			</html>
			`,
		},
	}
}

// renderTemplate renders a named template with the given data
func (s *EmailService) renderTemplate(name string, data TemplateData) (string, error) {
	raw, ok := s.templates[name]
	if ok && raw == "" {
		return "", ErrEmptyTemplate
	}
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}

	tmpl, err := template.New(name).Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}

// SendOutreachBulk sends the outreach pitch to every recipient, fanning out to
// the provider with bounded concurrency. onResult is invoked once per
// recipient as that send settles; invocation order is not defined. The
// returned summary covers the whole batch.
func (s *EmailService) SendOutreachBulk(ctx context.Context, content OutreachContent,
	recipients []OutreachRecipient, onResult func(OutreachResult)) OutreachSummary {

	var (
		mu      sync.Mutex
		summary OutreachSummary
	)

	settle := func(result OutreachResult) {
		mu.Lock()
		if result.Err != nil {
			summary.Failed++
		} else {
			summary.Sent++
		}
		mu.Unlock()
		if onResult != nil {
			onResult(result)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSends)

	for _, recipient := range recipients {
		recipient := recipient
		g.Go(func() error {
			settle(OutreachResult{
				CreatorID: recipient.CreatorID,
				Err:       s.sendOutreach(gctx, content, recipient),
			})
			// Per-item failures are reported through the callback, never
			// escalated: one bad address must not cancel the batch.
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "emails_sent", Value: summary.Sent},
		observability.Field{Key: "emails_failed", Value: summary.Failed},
	), "bulk outreach send complete")

	return summary
}

func (s *EmailService) sendOutreach(ctx context.Context, content OutreachContent, recipient OutreachRecipient) error {
	if recipient.Address == "" {
		return ErrInvalidEmailAddress
	}

	html, err := s.renderTemplate("outreach_pitch", TemplateData{
		CreatorName:  recipient.Name,
		CampaignName: content.CampaignName,
		Brand:        content.Brand,
		Goals:        content.Goals,
		Deliverables: content.Deliverables,
		Timeline:     content.Timeline,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s x %s: collaboration invite", content.Brand, recipient.Name)
	if _, err := s.mailClient.SendEmail(ctx, s.defaultSender, recipient.Address, subject, html); err != nil {
		return err
	}
	return nil
}
