package domain

import (
	"encoding/json"
	"time"
)

// DateTime is a timestamp as the dashboard client sends it: either a full
// RFC 3339 string or a bare yyyy-mm-dd date. It is used in insert and patch
// payloads only; stored entities carry plain time.Time values.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
	}
	if err != nil {
		return err
	}
	d.Time = t.UTC()
	return nil
}
