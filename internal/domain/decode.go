package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// MaxStoredNumber bounds counts and values read from or written to a collection
const MaxStoredNumber = 1_000_000_000

// decodeObject splits a JSON object into its raw fields. Anything other than
// an object is an error.
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("expected a JSON object, got %s", data)
	}
	return fields, nil
}

// looseString returns a JSON string's value. Null or missing is empty; any
// other JSON value is kept as its literal text.
func looseString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// looseInt reads a number or numeric string, clamped to MaxStoredNumber.
// Anything unreadable is zero.
func looseInt(raw json.RawMessage) int {
	n, err := decodeNumber(raw)
	if err != nil {
		return 0
	}
	return n
}

func decodeNumber(raw json.RawMessage) (int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}

	var n json.Number
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		n = json.Number(s)
	} else if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("invalid number %s: %w", raw, err)
	}

	if v, err := n.Int64(); err == nil {
		return clampStored(float64(v)), nil
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("invalid number %q", n)
	}
	return clampStored(f), nil
}

func clampStored(f float64) int {
	switch {
	case f > MaxStoredNumber:
		return MaxStoredNumber
	case f < -MaxStoredNumber:
		return -MaxStoredNumber
	}
	return int(f)
}
