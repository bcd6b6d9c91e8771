package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// VisitStatus represents the lifecycle status of a visit request.
// The check-in service itself only ever creates Pending requests; later
// transitions are driven by the premise side.
type VisitStatus int

const (
	VisitStatusPending   VisitStatus = 0
	VisitStatusApproved  VisitStatus = 1
	VisitStatusDenied    VisitStatus = 2
	VisitStatusCheckedIn VisitStatus = 3
	VisitStatusExpired   VisitStatus = 4
)

// IsValid reports whether s is one of the defined statuses
func (s VisitStatus) IsValid() bool {
	return s >= VisitStatusPending && s <= VisitStatusExpired
}

func (s VisitStatus) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return [...]string{"Pending", "Approved", "Denied", "CheckedIn", "Expired"}[s]
}

func (s VisitStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *VisitStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		status := VisitStatus(i)
		if !status.IsValid() {
			return fmt.Errorf("unknown visit status %d", i)
		}
		*s = status
		return nil
	}
	switch str {
	case "Pending":
		*s = VisitStatusPending
	case "Approved":
		*s = VisitStatusApproved
	case "Denied":
		*s = VisitStatusDenied
	case "CheckedIn":
		*s = VisitStatusCheckedIn
	case "Expired":
		*s = VisitStatusExpired
	default:
		return fmt.Errorf("unknown visit status %q", str)
	}
	return nil
}

func (s VisitStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *VisitStatus) Scan(value interface{}) error {
	if value == nil {
		*s = VisitStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = VisitStatus(v)
	case int:
		*s = VisitStatus(v)
	}
	return nil
}
