package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SeatingSection is one cabin section of a seating plan: a class tag, a row
// count and the seat letters present in each row. Layout describes the
// aisle grouping of the letters and is carried for wire fidelity only.
type SeatingSection struct {
	ClassName string `json:"className"`
	Rows      int    `json:"rows"`
	Layout    []int  `json:"layout,omitempty"`
	Letters   string `json:"letters"`
}

// SeatingPlan is the declarative cabin layout parsed from a vehicle
// profile's seatingPlanConfig
type SeatingPlan struct {
	Sections []SeatingSection `json:"sections"`
}

// ParseSeatingPlan decodes a seatingPlanConfig JSON document
func ParseSeatingPlan(config string) (*SeatingPlan, error) {
	if strings.TrimSpace(config) == "" {
		return nil, fmt.Errorf("empty seating plan config")
	}
	var plan SeatingPlan
	if err := json.Unmarshal([]byte(config), &plan); err != nil {
		return nil, fmt.Errorf("parse seating plan: %w", err)
	}
	if len(plan.Sections) == 0 {
		return nil, fmt.Errorf("seating plan has no sections")
	}
	return &plan, nil
}
