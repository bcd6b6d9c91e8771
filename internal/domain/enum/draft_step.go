package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DraftStep represents the current step of a document draft session
type DraftStep int

const (
	DraftStepParties DraftStep = 0
	DraftStepItems   DraftStep = 1
	DraftStepPreview DraftStep = 2
)

// IsValid reports whether s is one of the defined steps
func (s DraftStep) IsValid() bool {
	return s >= DraftStepParties && s <= DraftStepPreview
}

func (s DraftStep) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return [...]string{"Parties", "Items", "Preview"}[s]
}

func (s DraftStep) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DraftStep) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		step := DraftStep(i)
		if !step.IsValid() {
			return fmt.Errorf("unknown draft step %d", i)
		}
		*s = step
		return nil
	}
	switch str {
	case "Parties":
		*s = DraftStepParties
	case "Items":
		*s = DraftStepItems
	case "Preview":
		*s = DraftStepPreview
	default:
		return fmt.Errorf("unknown draft step %q", str)
	}
	return nil
}

func (s DraftStep) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DraftStep) Scan(value interface{}) error {
	if value == nil {
		*s = DraftStepParties
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DraftStep(v)
	case int:
		*s = DraftStep(v)
	}
	return nil
}
