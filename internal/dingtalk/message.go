package dingtalk

import (
	"errors"
	"fmt"
)

// ErrInvalidMention is returned when a mention list contains an entry
// that cannot possibly be a phone number.
var ErrInvalidMention = errors.New("invalid mention mobile")

// Message kind constants as they appear on the wire.
const (
	KindText       = "text"
	KindLink       = "link"
	KindMarkdown   = "markdown"
	KindActionCard = "actionCard"
	KindFeedCard   = "feedCard"
	KindImage      = "image"
)

// Mention is the @-target list attached to text, markdown and image messages.
// When Mobiles is non-empty, AtAll is forced off: the robot API treats the
// two as mutually exclusive.
type Mention struct {
	Mobiles []string
	AtAll   bool
}

// Validate rejects mentions a robot would silently drop.
func (m Mention) Validate() error {
	for _, mobile := range m.Mobiles {
		if mobile == "" {
			return fmt.Errorf("%w: empty mobile", ErrInvalidMention)
		}
		for _, r := range mobile {
			if r < '0' || r > '9' {
				return fmt.Errorf("%w: %q is not numeric", ErrInvalidMention, mobile)
			}
		}
	}
	return nil
}

// CardButton is one independent-jump button on an action card.
type CardButton struct {
	Title     string `json:"title"`
	ActionURL string `json:"actionURL"`
}

// FeedLink is one entry of a feed card.
type FeedLink struct {
	Title      string `json:"title"`
	MessageURL string `json:"messageURL"`
	PicURL     string `json:"picURL"`
}

type atPayload struct {
	AtMobiles []string `json:"atMobiles,omitempty"`
	IsAtAll   bool     `json:"isAtAll"`
}

type textPayload struct {
	MsgType string `json:"msgtype"`
	Title   string `json:"title"`
	Text    struct {
		Content string `json:"content"`
	} `json:"text"`
	At atPayload `json:"at"`
}

type linkPayload struct {
	MsgType string `json:"msgtype"`
	Link    struct {
		Title      string `json:"title"`
		Text       string `json:"text"`
		PicURL     string `json:"picUrl"`
		MessageURL string `json:"messageUrl"`
	} `json:"link"`
}

type markdownPayload struct {
	MsgType  string `json:"msgtype"`
	Markdown struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"markdown"`
	At atPayload `json:"at"`
}

type actionCardPayload struct {
	MsgType    string `json:"msgtype"`
	ActionCard struct {
		Title          string       `json:"title"`
		Text           string       `json:"text"`
		SingleTitle    string       `json:"singleTitle,omitempty"`
		SingleURL      string       `json:"singleURL,omitempty"`
		Buttons        []CardButton `json:"btns,omitempty"`
		BtnOrientation int          `json:"btnOrientation"`
	} `json:"actionCard"`
}

type feedCardPayload struct {
	MsgType  string `json:"msgtype"`
	FeedCard struct {
		Links []FeedLink `json:"links"`
	} `json:"feedCard"`
}

type imagePayload struct {
	MsgType string `json:"msgtype"`
	Image   struct {
		Base64 string `json:"base64"`
	} `json:"image"`
	At atPayload `json:"at"`
}

type robotResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

func (m Mention) payload() atPayload {
	return atPayload{
		AtMobiles: m.Mobiles,
		IsAtAll:   m.AtAll && len(m.Mobiles) == 0,
	}
}
