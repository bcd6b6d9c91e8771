package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// GigStatus represents the status of a gig posting
type GigStatus int

const (
	GigStatusOpen   GigStatus = 0
	GigStatusTaken  GigStatus = 1
	GigStatusClosed GigStatus = 2
)

// IsValid reports whether s is one of the defined statuses
func (s GigStatus) IsValid() bool {
	return s >= GigStatusOpen && s <= GigStatusClosed
}

func (s GigStatus) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return [...]string{"Open", "Taken", "Closed"}[s]
}

func (s GigStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *GigStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		status := GigStatus(i)
		if !status.IsValid() {
			return fmt.Errorf("unknown gig status %d", i)
		}
		*s = status
		return nil
	}
	switch str {
	case "Open":
		*s = GigStatusOpen
	case "Taken":
		*s = GigStatusTaken
	case "Closed":
		*s = GigStatusClosed
	default:
		return fmt.Errorf("unknown gig status %q", str)
	}
	return nil
}

func (s GigStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *GigStatus) Scan(value interface{}) error {
	if value == nil {
		*s = GigStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = GigStatus(v)
	case int:
		*s = GigStatus(v)
	}
	return nil
}
