package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RequestType distinguishes visit requests routed through a directory tenant
// (Mediated) from those addressed to a manually entered unit (Direct)
type RequestType int

const (
	RequestTypeDirect   RequestType = 0
	RequestTypeMediated RequestType = 1
)

// IsValid reports whether t is one of the defined types
func (t RequestType) IsValid() bool {
	return t == RequestTypeDirect || t == RequestTypeMediated
}

func (t RequestType) String() string {
	if !t.IsValid() {
		return "Unknown"
	}
	return [...]string{"Direct", "Mediated"}[t]
}

func (t RequestType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *RequestType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		requestType := RequestType(i)
		if !requestType.IsValid() {
			return fmt.Errorf("unknown request type %d", i)
		}
		*t = requestType
		return nil
	}
	switch str {
	case "Direct":
		*t = RequestTypeDirect
	case "Mediated":
		*t = RequestTypeMediated
	default:
		return fmt.Errorf("unknown request type %q", str)
	}
	return nil
}

func (t RequestType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *RequestType) Scan(value interface{}) error {
	if value == nil {
		*t = RequestTypeDirect
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = RequestType(v)
	case int:
		*t = RequestType(v)
	}
	return nil
}
