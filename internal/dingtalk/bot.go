package dingtalk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Bot posts messages to one group robot webhook. For a security-enabled
// robot the timestamp and signature are appended to the webhook URL once,
// at construction.
type Bot struct {
	webhookURL string
	httpClient *http.Client
	log        *logrus.Entry
}

// Option customizes a Bot.
type Option func(*options)

type options struct {
	timeout time.Duration
	now     func() time.Time
	log     *logrus.Entry
}

// WithTimeout bounds the webhook round trip.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithClock overrides the signing clock.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger attaches a log entry to every diagnostic line the bot emits.
func WithLogger(log *logrus.Entry) Option {
	return func(o *options) { o.log = log }
}

// NewBot builds a bot for the given webhook. An empty secret means the
// robot is configured with keyword or IP allowlisting and needs no signature.
func NewBot(secret, webhookURL string, opts ...Option) *Bot {
	o := options{
		timeout: 15 * time.Second,
		now:     time.Now,
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(&o)
	}

	finalURL := webhookURL
	if secret != "" {
		timestamp := strconv.FormatInt(o.now().UnixMilli(), 10)
		finalURL = fmt.Sprintf("%s&timestamp=%s&sign=%s", webhookURL, timestamp, Sign(secret, timestamp))
	}

	return &Bot{
		webhookURL: finalURL,
		httpClient: &http.Client{Timeout: o.timeout},
		log:        o.log,
	}
}

// WebhookURL returns the final URL the bot posts to, signature included.
func (b *Bot) WebhookURL() string {
	return b.webhookURL
}

// SendText sends a plain text message. Mentioned mobiles are appended to
// the content so the client renders the @ inline.
func (b *Bot) SendText(ctx context.Context, title, content string, mention Mention) (bool, error) {
	if err := mention.Validate(); err != nil {
		return false, err
	}
	var p textPayload
	p.MsgType = KindText
	p.Title = title
	p.Text.Content = content
	for _, mobile := range mention.Mobiles {
		p.Text.Content += "@" + mobile
	}
	p.At = mention.payload()
	return b.post(ctx, KindText, p)
}

// SendLink sends a link message.
func (b *Bot) SendLink(ctx context.Context, title, text, messageURL, picURL string) (bool, error) {
	var p linkPayload
	p.MsgType = KindLink
	p.Link.Title = title
	p.Link.Text = text
	p.Link.MessageURL = messageURL
	p.Link.PicURL = picURL
	return b.post(ctx, KindLink, p)
}

// SendMarkdown sends a markdown message. Mentioned mobiles are appended to
// the text, space-separated, so the client renders the @ inline.
func (b *Bot) SendMarkdown(ctx context.Context, title, text string, mention Mention) (bool, error) {
	if err := mention.Validate(); err != nil {
		return false, err
	}
	var p markdownPayload
	p.MsgType = KindMarkdown
	p.Markdown.Title = title
	p.Markdown.Text = text
	for _, mobile := range mention.Mobiles {
		p.Markdown.Text += " @" + mobile
	}
	p.At = mention.payload()
	return b.post(ctx, KindMarkdown, p)
}

// SendActionCardSingle sends a whole-card-jump action card.
func (b *Bot) SendActionCardSingle(ctx context.Context, title, text, singleTitle, singleURL string, btnOrientation int) (bool, error) {
	var p actionCardPayload
	p.MsgType = KindActionCard
	p.ActionCard.Title = title
	p.ActionCard.Text = text
	p.ActionCard.SingleTitle = singleTitle
	p.ActionCard.SingleURL = singleURL
	p.ActionCard.BtnOrientation = btnOrientation
	return b.post(ctx, KindActionCard, p)
}

// SendActionCardSplit sends an action card with independent buttons.
func (b *Bot) SendActionCardSplit(ctx context.Context, title, text string, buttons []CardButton, btnOrientation int) (bool, error) {
	var p actionCardPayload
	p.MsgType = KindActionCard
	p.ActionCard.Title = title
	p.ActionCard.Text = text
	p.ActionCard.Buttons = buttons
	p.ActionCard.BtnOrientation = btnOrientation
	return b.post(ctx, KindActionCard, p)
}

// SendFeedCard sends a multi-link feed card.
func (b *Bot) SendFeedCard(ctx context.Context, links []FeedLink) (bool, error) {
	var p feedCardPayload
	p.MsgType = KindFeedCard
	p.FeedCard.Links = links
	return b.post(ctx, KindFeedCard, p)
}

// SendImage sends a base64-encoded image. Mentions ride in the at block
// only; appending them to the payload body would corrupt the image data.
func (b *Bot) SendImage(ctx context.Context, imageBase64 string, mention Mention) (bool, error) {
	if err := mention.Validate(); err != nil {
		return false, err
	}
	var p imagePayload
	p.MsgType = KindImage
	p.Image.Base64 = imageBase64
	p.At = mention.payload()
	return b.post(ctx, KindImage, p)
}

// post delivers one payload and interprets the robot's verdict. A reachable
// robot that rejects the message yields (false, nil) with the raw body
// logged; transport and decode failures yield (false, err).
func (b *Bot) post(ctx context.Context, kind string, payload any) (bool, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s payload: %w", kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return false, fmt.Errorf("failed to create %s request: %w", kind, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Charset", "UTF-8")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to send %s message: %w", kind, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read %s response: %w", kind, err)
	}

	var verdict robotResponse
	if err := json.Unmarshal(raw, &verdict); err != nil {
		return false, fmt.Errorf("failed to decode %s response: %w", kind, err)
	}

	if verdict.ErrCode != 0 {
		b.log.WithFields(logrus.Fields{
			"kind":    kind,
			"errcode": verdict.ErrCode,
			"body":    string(raw),
		}).Warn("robot rejected message")
		return false, nil
	}

	b.log.WithField("kind", kind).Debug("robot accepted message")
	return true, nil
}
