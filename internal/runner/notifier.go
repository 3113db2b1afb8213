package runner

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
	"github.com/KobeFor3ver/goatgames-daily-report/internal/dingtalk"
)

// botNotifier binds a destination's mention list to a webhook bot.
type botNotifier struct {
	bot     *dingtalk.Bot
	mention dingtalk.Mention
}

func (n *botNotifier) SendText(ctx context.Context, title, content string) (bool, error) {
	return n.bot.SendText(ctx, title, content, n.mention)
}

func (n *botNotifier) SendMarkdown(ctx context.Context, title, text string) (bool, error) {
	return n.bot.SendMarkdown(ctx, title, text, n.mention)
}

// NewDingTalkFactory builds notifiers backed by DingTalk group robots.
// Each call signs the webhook URL fresh, keeping the signature inside the
// server's validity window across long-lived daemon runs.
func NewDingTalkFactory(timeout time.Duration, log *logrus.Entry) contract.NotifierFactory {
	return func(dest contract.Destination) contract.Notifier {
		return &botNotifier{
			bot: dingtalk.NewBot(dest.Secret, dest.WebhookURL,
				dingtalk.WithTimeout(timeout),
				dingtalk.WithLogger(log.WithField("destination", dest.Name))),
			mention: dingtalk.Mention{Mobiles: dest.Mobiles, AtAll: dest.AtAll},
		}
	}
}
