package model

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const dateOnly = "2006-01-02"

// Date is an ISO-8601 catalog date. It accepts a full RFC 3339 timestamp or a
// bare calendar date, and writes back the form it was read in.
type Date struct {
	time.Time
	dateOnly bool
}

// ParseDate parses s as RFC 3339 first, then as YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	return Date{Time: t, dateOnly: true}, nil
}

func (d Date) String() string {
	if d.dateOnly {
		return d.Time.Format(dateOnly)
	}
	return d.Time.Format(time.RFC3339)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", value.Line)
	}
	parsed, err := ParseDate(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}
