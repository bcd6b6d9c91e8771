package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading zero replaced", "0712345678", "254712345678"},
		{"bare nine digits prefixed", "712345678", "254712345678"},
		{"already international", "254712345678", "254712345678"},
		{"plus and spaces stripped", "+254 712 345 678", "254712345678"},
		{"dashes stripped", "0712-345-678", "254712345678"},
		{"other lengths untouched", "12345", "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func TestBuildMessageWhatsApp(t *testing.T) {
	link := BuildMessage(ChannelWhatsApp, "0712345678", "Invoice INV-000123 for KES 6960.00")

	assert.Equal(t, ChannelWhatsApp, link.Channel)
	assert.Equal(t, "https://wa.me/254712345678?text=Invoice+INV-000123+for+KES+6960.00", link.URL)
}

func TestBuildMessageSMSKeepsPhoneVerbatim(t *testing.T) {
	link := BuildMessage(ChannelSMS, "0712-345-678", "Hello")

	assert.Equal(t, ChannelSMS, link.Channel)
	assert.Equal(t, "sms:0712-345-678?body=Hello", link.URL)
}

func TestBuildQRCodeURL(t *testing.T) {
	got := BuildQRCodeURL("https://qaribu.example/d/abc", 200)

	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=https%3A%2F%2Fqaribu.example%2Fd%2Fabc", got)
}
