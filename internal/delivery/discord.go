package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
)

// DiscordChannel posts through an incoming webhook.
type DiscordChannel struct {
	webhookURL string
	client     httpDoer
}

func NewDiscordChannel(webhookURL string, client httpDoer) (*DiscordChannel, error) {
	if webhookURL == "" {
		return nil, fmt.Errorf("discord: webhook url is required")
	}
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &DiscordChannel{webhookURL: webhookURL, client: client}, nil
}

func (c *DiscordChannel) Name() string { return ChannelDiscord }

func (c *DiscordChannel) Send(ctx context.Context, n notification.Notification) error {
	payload, err := json.Marshal(map[string]string{"content": n.Text})
	if err != nil {
		return err
	}

	var (
		body        bytes.Buffer
		contentType = "application/json"
	)
	if len(n.Attachments) == 0 {
		body.Write(payload)
	} else {
		w := multipart.NewWriter(&body)
		if err := w.WriteField("payload_json", string(payload)); err != nil {
			return err
		}
		for i, path := range n.Attachments {
			if err := attachFile(w, fmt.Sprintf("files[%d]", i), path); err != nil {
				return err
			}
		}
		if err := w.Close(); err != nil {
			return err
		}
		contentType = w.FormDataContentType()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord request: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus("discord", resp)
}
