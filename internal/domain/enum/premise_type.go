package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PremiseType represents the type of a managed premise
type PremiseType int

const (
	PremiseTypeCommercial PremiseType = 0
	PremiseTypeResidence  PremiseType = 1
)

// IsValid reports whether t is one of the defined types
func (t PremiseType) IsValid() bool {
	return t == PremiseTypeCommercial || t == PremiseTypeResidence
}

func (t PremiseType) String() string {
	if !t.IsValid() {
		return "Unknown"
	}
	return [...]string{"Commercial", "Residence"}[t]
}

func (t PremiseType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *PremiseType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		premiseType := PremiseType(i)
		if !premiseType.IsValid() {
			return fmt.Errorf("unknown premise type %d", i)
		}
		*t = premiseType
		return nil
	}
	switch str {
	case "Commercial":
		*t = PremiseTypeCommercial
	case "Residence":
		*t = PremiseTypeResidence
	default:
		return fmt.Errorf("unknown premise type %q", str)
	}
	return nil
}

func (t PremiseType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *PremiseType) Scan(value interface{}) error {
	if value == nil {
		*t = PremiseTypeCommercial
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = PremiseType(v)
	case int:
		*t = PremiseType(v)
	}
	return nil
}
