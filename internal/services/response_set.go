package services

import (
	"encoding/json"
	"math"

	"github.com/attachlab/ecr/internal/catalog"
)

// Answer is one slot of a ResponseSet. The zero value means unanswered;
// presence is tracked explicitly rather than through a magic value.
type Answer struct {
	Value    int
	Answered bool
}

// ResponseSet holds the 36 optional answers of one assessment, indexed by
// questionID-1. It always has exactly 36 slots and is mutated only through
// Set.
type ResponseSet struct {
	slots [catalog.TotalQuestions]Answer
}

// Set records value for questionID. Valid iff questionID is in 1..36 and
// value in 1..7; returns false without mutating otherwise. Overwriting an
// earlier answer is allowed.
func (rs *ResponseSet) Set(questionID, value int) bool {
	if questionID < 1 || questionID > catalog.TotalQuestions {
		return false
	}
	if value < catalog.ScaleMin || value > catalog.ScaleMax {
		return false
	}
	rs.slots[questionID-1] = Answer{Value: value, Answered: true}
	return true
}

// At returns the answer at the 0-based index. Out-of-range indices read as
// unanswered.
func (rs *ResponseSet) At(index int) (int, bool) {
	if index < 0 || index >= catalog.TotalQuestions {
		return 0, false
	}
	a := rs.slots[index]
	return a.Value, a.Answered
}

// IsComplete reports whether all 36 slots are answered.
func (rs *ResponseSet) IsComplete() bool {
	for _, a := range rs.slots {
		if !a.Answered {
			return false
		}
	}
	return true
}

// AnsweredCount returns how many slots are answered.
func (rs *ResponseSet) AnsweredCount() int {
	n := 0
	for _, a := range rs.slots {
		if a.Answered {
			n++
		}
	}
	return n
}

// ProgressPercent returns the answered fraction as a rounded 0..100 percent.
func (rs *ResponseSet) ProgressPercent() int {
	return int(math.Round(float64(rs.AnsweredCount()) / catalog.TotalQuestions * 100))
}

// NextUnansweredIndex returns the lowest 0-based index whose slot is
// unanswered. When every slot is answered it returns the last index (35),
// not a completion signal; callers resume there and check IsComplete
// separately.
func (rs *ResponseSet) NextUnansweredIndex() int {
	for i, a := range rs.slots {
		if !a.Answered {
			return i
		}
	}
	return catalog.TotalQuestions - 1
}

// Values renders the set as a 36-slot array with nil for unanswered items,
// the layout used on the wire and in storage.
func (rs *ResponseSet) Values() []*int {
	out := make([]*int, catalog.TotalQuestions)
	for i, a := range rs.slots {
		if a.Answered {
			v := a.Value
			out[i] = &v
		}
	}
	return out
}

// ResponseSetFromValues builds a ResponseSet from a 36-slot array with nil
// marking unanswered items. A wrong-length array is a caller-contract
// violation and fails loudly, as do present values outside 1..7.
func ResponseSetFromValues(values []*int) (*ResponseSet, error) {
	if len(values) != catalog.TotalQuestions {
		return nil, NewInvalidError("response array must contain exactly 36 slots")
	}
	rs := &ResponseSet{}
	for i, v := range values {
		if v == nil {
			continue
		}
		if !rs.Set(i+1, *v) {
			return nil, NewInvalidError("response values must be within 1..7")
		}
	}
	return rs, nil
}

// MarshalJSON renders the null-mixed 36-slot array.
func (rs *ResponseSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(rs.Values())
}

// UnmarshalJSON parses the null-mixed 36-slot array.
func (rs *ResponseSet) UnmarshalJSON(data []byte) error {
	var values []*int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	parsed, err := ResponseSetFromValues(values)
	if err != nil {
		return err
	}
	*rs = *parsed
	return nil
}
