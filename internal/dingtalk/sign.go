// Package dingtalk sends report messages to DingTalk group robots.
package dingtalk

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
)

// Sign computes the webhook signature for a security-enabled robot.
// The string to sign is "<timestamp>\n<secret>", keyed with the secret,
// then base64-encoded and URL-escaped. The timestamp is milliseconds
// since the Unix epoch, rendered in decimal.
func Sign(secret, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "\n" + secret))
	digest := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return url.QueryEscape(digest)
}
