package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentStatus represents the payment status of a document
type PaymentStatus int

const (
	PaymentStatusDraft   PaymentStatus = 0
	PaymentStatusPending PaymentStatus = 1
	PaymentStatusPaid    PaymentStatus = 2
	PaymentStatusOverdue PaymentStatus = 3
)

// IsValid reports whether s is one of the defined statuses
func (s PaymentStatus) IsValid() bool {
	return s >= PaymentStatusDraft && s <= PaymentStatusOverdue
}

func (s PaymentStatus) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return [...]string{"Draft", "Pending", "Paid", "Overdue"}[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		status := PaymentStatus(i)
		if !status.IsValid() {
			return fmt.Errorf("unknown payment status %d", i)
		}
		*s = status
		return nil
	}
	switch str {
	case "Draft":
		*s = PaymentStatusDraft
	case "Pending":
		*s = PaymentStatusPending
	case "Paid":
		*s = PaymentStatusPaid
	case "Overdue":
		*s = PaymentStatusOverdue
	default:
		return fmt.Errorf("unknown payment status %q", str)
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
