package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DocumentKind represents the kind of billing document
type DocumentKind int

const (
	DocumentKindInvoice DocumentKind = 0
	DocumentKindQuote   DocumentKind = 1
	DocumentKindReceipt DocumentKind = 2
)

// IsValid reports whether k is one of the defined kinds
func (k DocumentKind) IsValid() bool {
	return k >= DocumentKindInvoice && k <= DocumentKindReceipt
}

func (k DocumentKind) String() string {
	if !k.IsValid() {
		return "Unknown"
	}
	return [...]string{"Invoice", "Quote", "Receipt"}[k]
}

// NumberPrefix returns the reference prefix used when generating document numbers
func (k DocumentKind) NumberPrefix() string {
	if !k.IsValid() {
		return "DOC"
	}
	return [...]string{"INV", "QT", "RCT"}[k]
}

func (k DocumentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *DocumentKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		kind := DocumentKind(i)
		if !kind.IsValid() {
			return fmt.Errorf("unknown document kind %d", i)
		}
		*k = kind
		return nil
	}
	switch str {
	case "Invoice":
		*k = DocumentKindInvoice
	case "Quote":
		*k = DocumentKindQuote
	case "Receipt":
		*k = DocumentKindReceipt
	default:
		return fmt.Errorf("unknown document kind %q", str)
	}
	return nil
}

func (k DocumentKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *DocumentKind) Scan(value interface{}) error {
	if value == nil {
		*k = DocumentKindInvoice
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = DocumentKind(v)
	case int:
		*k = DocumentKind(v)
	}
	return nil
}
