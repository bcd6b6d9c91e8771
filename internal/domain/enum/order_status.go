package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderStatus represents the status of a restaurant order
type OrderStatus int

const (
	OrderStatusPlaced    OrderStatus = 0
	OrderStatusConfirmed OrderStatus = 1
	OrderStatusServed    OrderStatus = 2
	OrderStatusCanceled  OrderStatus = 3
)

// IsValid reports whether s is one of the defined statuses
func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusPlaced && s <= OrderStatusCanceled
}

func (s OrderStatus) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return [...]string{"Placed", "Confirmed", "Served", "Canceled"}[s]
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		status := OrderStatus(i)
		if !status.IsValid() {
			return fmt.Errorf("unknown order status %d", i)
		}
		*s = status
		return nil
	}
	switch str {
	case "Placed":
		*s = OrderStatusPlaced
	case "Confirmed":
		*s = OrderStatusConfirmed
	case "Served":
		*s = OrderStatusServed
	case "Canceled":
		*s = OrderStatusCanceled
	default:
		return fmt.Errorf("unknown order status %q", str)
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPlaced
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
