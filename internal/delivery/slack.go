package delivery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slack-go/slack"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
)

type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	UploadFileV2Context(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
}

// SlackChannel posts to one Slack channel with a bot token. A notification
// with an attachment is sent as a file upload carrying the text as comment.
type SlackChannel struct {
	api     slackAPI
	channel string
}

// NewSlackChannel builds a Slack client. apiURL may be empty to use Slack's
// default endpoint.
func NewSlackChannel(token, channel, apiURL string) (*SlackChannel, error) {
	if token == "" || channel == "" {
		return nil, fmt.Errorf("slack: token and channel are required")
	}
	var opts []slack.Option
	if apiURL != "" {
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}
	return &SlackChannel{api: slack.New(token, opts...), channel: channel}, nil
}

func (c *SlackChannel) Name() string { return ChannelSlack }

func (c *SlackChannel) Send(ctx context.Context, n notification.Notification) error {
	if len(n.Attachments) == 0 {
		if _, _, err := c.api.PostMessageContext(ctx, c.channel, slack.MsgOptionText(n.Text, false)); err != nil {
			return fmt.Errorf("slack post message: %w", err)
		}
		return nil
	}

	comment := n.Text
	for _, path := range n.Attachments {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("slack attachment: %w", err)
		}
		_, err = c.api.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
			File:           path,
			FileSize:       int(info.Size()),
			Filename:       filepath.Base(path),
			Channel:        c.channel,
			InitialComment: comment,
		})
		if err != nil {
			return fmt.Errorf("slack upload file: %w", err)
		}
		comment = ""
	}
	return nil
}
