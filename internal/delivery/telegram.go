package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
)

const (
	telegramCaptionLimit = 1024
	maxErrorBody         = 512
	defaultHTTPTimeout   = 10 * time.Second
)

type httpDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// TelegramChannel posts to a chat through the Bot API.
type TelegramChannel struct {
	token   string
	chatID  string
	baseURL string
	client  httpDoer
}

func NewTelegramChannel(token, chatID, baseURL string, client httpDoer) (*TelegramChannel, error) {
	if token == "" || chatID == "" {
		return nil, fmt.Errorf("telegram: token and chat id are required")
	}
	if baseURL == "" {
		baseURL = "https://api.telegram.org"
	}
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &TelegramChannel{
		token:   token,
		chatID:  chatID,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}, nil
}

func (c *TelegramChannel) Name() string { return ChannelTelegram }

func (c *TelegramChannel) Send(ctx context.Context, n notification.Notification) error {
	// photo captions are capped, so long texts go out as a separate message
	if len(n.Attachments) > 0 && len(n.Text) <= telegramCaptionLimit {
		return c.sendPhoto(ctx, n.Attachments[0], n.Text)
	}
	if err := c.sendMessage(ctx, n.Text); err != nil {
		return err
	}
	for _, path := range n.Attachments {
		if err := c.sendPhoto(ctx, path, ""); err != nil {
			return err
		}
	}
	return nil
}

func (c *TelegramChannel) sendMessage(ctx context.Context, text string) error {
	body, err := json.Marshal(map[string]string{"chat_id": c.chatID, "text": text})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendMessage"), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *TelegramChannel) sendPhoto(ctx context.Context, path, caption string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("chat_id", c.chatID)
	if caption != "" {
		_ = w.WriteField("caption", caption)
	}
	if err := attachFile(w, "photo", path); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendPhoto"), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req)
}

func (c *TelegramChannel) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
}

func (c *TelegramChannel) do(req *http.Request) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus("telegram", resp)
}

func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open attachment: %w", err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}

func checkStatus(service string, resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("%s returned %s: %s", service, resp.Status, strings.TrimSpace(string(body)))
}
