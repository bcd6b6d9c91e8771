// Package share builds messaging deep links for finalized documents and
// orders. It only constructs URLs; opening them is the caller's (or the
// device's) job.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

// Channel identifies the messaging channel a link targets
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

// Link is a ready-to-open deep link for a given channel
type Link struct {
	Channel Channel `json:"channel"`
	URL     string  `json:"url"`
}

// defaultCountryCode is prefixed onto local Kenyan numbers
const defaultCountryCode = "254"

// NormalizePhone converts a phone number into the digits-only international
// form WhatsApp expects. Rules, in order:
//
//	strip everything that is not a digit
//	a leading "0" is replaced with "254"
//	a bare 9-digit number (no country code, no leading zero) gets "254" prefixed
//	anything else is passed through unchanged
//
// wa.me links fail silently on malformed numbers, so these rules must not be
// loosened.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, "0") {
		return defaultCountryCode + digits[1:]
	}
	if len(digits) == 9 {
		return defaultCountryCode + digits
	}
	return digits
}

// BuildMessage formats a document/order summary into a deep link for the
// requested channel. The SMS path keeps the recipient number exactly as
// given; only WhatsApp normalizes.
func BuildMessage(channel Channel, recipientPhone, text string) Link {
	encoded := url.QueryEscape(text)

	switch channel {
	case ChannelWhatsApp:
		return Link{
			Channel: ChannelWhatsApp,
			URL:     fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(recipientPhone), encoded),
		}
	default:
		return Link{
			Channel: ChannelSMS,
			URL:     fmt.Sprintf("sms:%s?body=%s", recipientPhone, encoded),
		}
	}
}

// qrEndpoint is the external image service that renders QR codes. The API
// only builds the URL; it never fetches or validates the image.
const qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// BuildQRCodeURL returns an image URL that renders a QR code pointing at the
// given target URL.
func BuildQRCodeURL(target string, size int) string {
	return fmt.Sprintf("%s?size=%dx%d&data=%s", qrEndpoint, size, size, url.QueryEscape(target))
}
