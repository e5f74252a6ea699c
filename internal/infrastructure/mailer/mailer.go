package mailer

import (
	"fmt"

	"github.com/wneessen/go-mail"

	"vaulttube/internal/domain/dto"
	"vaulttube/pkg/constants"
)

// IngestNotifier mails the admin a summary after a bulk ingestion batch.
// Delivery problems are reported to the caller for logging only; they never
// influence the batch result.
type IngestNotifier struct {
	client *mail.Client
	from   string
	to     string
}

func New(host string, port int, username, password, from, to string) (*IngestNotifier, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create SMTP client: %w", err)
	}
	return &IngestNotifier{client: client, from: from, to: to}, nil
}

func (n *IngestNotifier) NotifyBatchFinished(result *dto.IngestionResult) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return err
	}
	if err := msg.To(n.to); err != nil {
		return err
	}

	status := constants.StatusCompleted
	if result.Failed > 0 {
		status = constants.StatusFailed
	}
	msg.Subject(fmt.Sprintf("Bulk upload %s: %d ok, %d failed", status, result.Successful, result.Failed))

	body := fmt.Sprintf("Processed %d entries.\nSuccessful: %d\nFailed: %d\n",
		result.Successful+result.Failed, result.Successful, result.Failed)
	for _, e := range result.Errors {
		body += fmt.Sprintf("\n#%d %q: %s", e.Index, e.Title, e.Error)
	}
	msg.SetBodyString(mail.TypeTextPlain, body)

	return n.client.DialAndSend(msg)
}
