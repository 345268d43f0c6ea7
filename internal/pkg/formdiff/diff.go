// Package formdiff computes the minimal PATCH body for an edit form: only
// the fields whose submitted value differs from the entity as last fetched.
package formdiff

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Options tunes Changed per form.
type Options struct {
	// AlwaysSend keys are included whenever they are non-empty and are never
	// compared: the original never holds them (passwords).
	AlwaysSend []string
	// Skip keys are ignored; compound fields are diffed by the caller.
	Skip []string
}

// Changed returns the subset of submitted that differs from original.
//
// Empty strings and nil mean "not provided" and are skipped. Every other
// value is compared structurally after a JSON round trip, so slices compare
// element by element in order and 5 equals 5.0. The result is empty, never
// nil, when nothing changed.
func Changed(submitted, original map[string]interface{}, opts Options) map[string]interface{} {
	always := toSet(opts.AlwaysSend)
	skip := toSet(opts.Skip)
	changed := make(map[string]interface{})

	for key, val := range submitted {
		if skip[key] || isEmpty(val) {
			continue
		}
		if always[key] {
			changed[key] = val
			continue
		}
		if !Equal(val, original[key]) {
			changed[key] = val
		}
	}

	return changed
}

// Equal compares two values by structure, ignoring Go types: both sides
// are normalised through JSON first.
func Equal(a, b interface{}) bool {
	return cmp.Equal(normalise(a), normalise(b))
}

// ToMap converts a JSON-tagged struct into a field map.
func ToMap(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal form: %w", err)
	}
	out := make(map[string]interface{})
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal form: %w", err)
	}
	return out, nil
}

func normalise(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

func isEmpty(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	if p, ok := v.(*string); ok && (p == nil || *p == "") {
		return true
	}
	return false
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
