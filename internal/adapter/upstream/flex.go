package upstream

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexAmount tolerates every amount encoding the collaborator has been seen
// to emit: a number, a numeric string, null, or nothing at all. Malformed
// values decode to zero with Bad set; the caller logs the anomaly instead of
// silently discarding it.
type flexAmount struct {
	Value float64
	Bad   bool
	Raw   string
}

func (f *flexAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			f.Bad, f.Raw = true, string(b)
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			f.Bad, f.Raw = true, s
			return nil
		}
		f.Value = v
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		f.Bad, f.Raw = true, string(b)
		return nil
	}
	f.Value = v
	return nil
}
