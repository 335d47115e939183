package daterange

import (
	"bytes"
	"encoding/json"
	"time"

	"time-range-parser/pkg/datemath"
)

// TimestampLayout is how every instant leaves this package: second resolution
// with a numeric UTC offset.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// Interval is a resolved start/end pair in a single timezone.
type Interval struct {
	Start       time.Time
	End         time.Time
	Timezone    string
	Assumptions *Assumptions
}

// Kind returns the name of the rule that produced the interval.
func (iv Interval) Kind() string {
	if iv.Assumptions == nil {
		return ""
	}
	return iv.Assumptions.Kind()
}

// MarshalJSON implements json.Marshaler.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start       string       `json:"start"`
		End         string       `json:"end"`
		Timezone    string       `json:"timezone"`
		Assumptions *Assumptions `json:"assumptions"`
	}{
		Start:       iv.Start.Format(TimestampLayout),
		End:         iv.End.Format(TimestampLayout),
		Timezone:    iv.Timezone,
		Assumptions: iv.Assumptions,
	})
}

// Assumptions is an insertion ordered map of diagnostics describing how an
// interval was derived. It is informational only.
type Assumptions struct {
	keys   []string
	values map[string]any
}

// NewAssumptions creates an Assumptions map starting with the kind entry.
func NewAssumptions(kind string) *Assumptions {
	a := &Assumptions{values: map[string]any{}}
	a.Set("kind", kind)
	return a
}

// Set adds or replaces key, keeping the position of an existing key.
func (a *Assumptions) Set(key string, value any) *Assumptions {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return a
}

// Get returns the value for key.
func (a *Assumptions) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (a *Assumptions) Keys() []string {
	return append([]string(nil), a.keys...)
}

// Kind returns the "kind" entry.
func (a *Assumptions) Kind() string {
	k, _ := a.values["kind"].(string)
	return k
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (a *Assumptions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(a.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RecurrenceRule describes "every Interval Unit", optionally anchored on a weekday
// (Monday=0).
type RecurrenceRule struct {
	Interval int           `json:"interval"`
	Unit     datemath.Unit `json:"unit"`
	Weekday  *int          `json:"weekday"`
}

// VagueKind tags the behaviour of a vague expression.
type VagueKind int

const (
	// VagueFuture is a point Offset after now, lasting one hour.
	VagueFuture VagueKind = iota
	// VaguePast is a point Offset before now, lasting one hour.
	VaguePast
	// VagueFutureRange runs from the start of today to the end of day now+Days.
	VagueFutureRange
	// VaguePastRange runs from the start of day now-Days to the end of today.
	VaguePastRange
	// VagueCurrentRange spans Days centred on today.
	VagueCurrentRange
	// VagueAroundNow spans Hours on both sides of now.
	VagueAroundNow
	// VagueFixedToday starts today at Hour:Minute, lasting two hours.
	VagueFixedToday
	// VagueTimeOfDay starts today at Hour, lasting two hours.
	VagueTimeOfDay
)

// VagueExpression is the behaviour descriptor of words like "straks" or "binnenkort".
type VagueExpression struct {
	Kind   VagueKind
	Offset time.Duration
	Days   int
	Hours  int
	Hour   int
	Minute int
}

// span is what a resolver produces before it becomes an Interval.
type span struct {
	start, end time.Time
}
