package record

import (
	"encoding/json"
	"time"
)

// LayoutMillis is the wire layout for timestamps: RFC 3339 with millisecond
// precision, always UTC. Matches what the stored documents have always held.
const LayoutMillis = "2006-01-02T15:04:05.000Z07:00"

// Epoch is the substitute instant for absent or malformed wire timestamps.
func Epoch() time.Time {
	return time.UnixMilli(0).UTC()
}

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

type Timestamp struct {
	time.Time
}

// Now returns the current instant truncated to the wire precision so a record
// round-trips losslessly through encode/decode.
func Now() Timestamp {
	return Timestamp{Time: time.Now().UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) SameDay(then time.Time) bool {
	ty, tm, td := t.Local().Date()
	oy, om, od := then.Local().Date()
	return ty == oy && tm == om && td == od
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON never fails; a missing or malformed timestamp decodes to the
// epoch so one bad field cannot sink a whole record.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		t.Time = Epoch()
		return nil
	}
	parsed, err := ParseTime(timestamp)
	if err != nil {
		t.Time = Epoch()
		return nil
	}
	t.Time = parsed.UTC()
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(LayoutMillis)
}
