package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// VisitStep represents the current step of a visit check-in draft
type VisitStep int

const (
	VisitStepTypeSelection    VisitStep = 0
	VisitStepCommercialSelect VisitStep = 1
	VisitStepResidenceInput   VisitStep = 2
	VisitStepVisitorDetails   VisitStep = 3
)

// IsValid reports whether s is one of the defined steps
func (s VisitStep) IsValid() bool {
	return s >= VisitStepTypeSelection && s <= VisitStepVisitorDetails
}

func (s VisitStep) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return [...]string{"TypeSelection", "CommercialSelect", "ResidenceInput", "VisitorDetails"}[s]
}

func (s VisitStep) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *VisitStep) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		step := VisitStep(i)
		if !step.IsValid() {
			return fmt.Errorf("unknown visit step %d", i)
		}
		*s = step
		return nil
	}
	switch str {
	case "TypeSelection":
		*s = VisitStepTypeSelection
	case "CommercialSelect":
		*s = VisitStepCommercialSelect
	case "ResidenceInput":
		*s = VisitStepResidenceInput
	case "VisitorDetails":
		*s = VisitStepVisitorDetails
	default:
		return fmt.Errorf("unknown visit step %q", str)
	}
	return nil
}

func (s VisitStep) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *VisitStep) Scan(value interface{}) error {
	if value == nil {
		*s = VisitStepTypeSelection
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = VisitStep(v)
	case int:
		*s = VisitStep(v)
	}
	return nil
}
