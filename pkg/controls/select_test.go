package controls

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name    string
		entries []any
		expect  []SelectOption
	}{
		{
			name:    "nil sequence",
			entries: nil,
			expect:  nil,
		},
		{
			name:    "empty sequence",
			entries: []any{},
			expect:  nil,
		},
		{
			name:    "bare strings",
			entries: []any{"us", "ca"},
			expect: []SelectOption{
				{Value: "us", Label: "us"},
				{Value: "ca", Label: "ca"},
			},
		},
		{
			name:    "numbers use string form",
			entries: []any{1, 2.5},
			expect: []SelectOption{
				{Value: "1", Label: "1"},
				{Value: "2.5", Label: "2.5"},
			},
		},
		{
			name: "structured entries pass through",
			entries: []any{
				SelectOption{Value: "ca", Label: "Canada"},
				map[string]any{"value": "mx", "label": "Mexico", "disabled": true},
			},
			expect: []SelectOption{
				{Value: "ca", Label: "Canada"},
				{Value: "mx", Label: "Mexico", Disabled: true},
			},
		},
		{
			name: "label falls back to value",
			entries: []any{
				SelectOption{Value: "uk"},
				map[string]any{"value": 7},
			},
			expect: []SelectOption{
				{Value: "uk", Label: "uk"},
				{Value: "7", Label: "7"},
			},
		},
		{
			name: "order preserved without dedup",
			entries: []any{
				"b",
				map[string]any{"value": "a"},
				"b",
			},
			expect: []SelectOption{
				{Value: "b", Label: "b"},
				{Value: "a", Label: "a"},
				{Value: "b", Label: "b"},
			},
		},
		{
			name:    "nil entry coerces to empty option",
			entries: []any{nil},
			expect:  []SelectOption{{Value: "", Label: ""}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.entries)
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
