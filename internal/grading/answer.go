package grading

import (
	"encoding/json"
	"errors"
)

var ErrValueShape = errors.New("value must be string, number, or number array")

type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueString
	ValueNumber
	ValueNumbers
)

// Value is a submitted answer value: a string, a number or a list of
// numbers. The zero Value is none of them and never grades as correct.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	nums []float64
}

func String(s string) Value  { return Value{kind: ValueString, str: s} }
func Number(n float64) Value { return Value{kind: ValueNumber, num: n} }
func Numbers(ns ...float64) Value {
	cp := make([]float64, len(ns))
	copy(cp, ns)
	return Value{kind: ValueNumbers, nums: cp}
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueString:
		return json.Marshal(v.str)
	case ValueNumber:
		return json.Marshal(v.num)
	case ValueNumbers:
		if v.nums == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.nums)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = String(t)
	case float64:
		*v = Number(t)
	case []any:
		ns := make([]float64, 0, len(t))
		for _, e := range t {
			n, ok := e.(float64)
			if !ok {
				return ErrValueShape
			}
			ns = append(ns, n)
		}
		*v = Value{kind: ValueNumbers, nums: ns}
	default:
		return ErrValueShape
	}
	return nil
}

type Answer struct {
	ID    string `json:"id"`
	Value Value  `json:"value"`
}

type QuestionResult struct {
	ID      string `json:"id"`
	Correct bool   `json:"correct"`
}

type Score struct {
	Score      int `json:"score"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
