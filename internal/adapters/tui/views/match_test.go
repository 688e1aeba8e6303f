package views

import (
	"reflect"
	"testing"
)

func TestFilterItems(t *testing.T) {
	items := []string{"Sub/2024", "Sub/2024/Winter", "Other/2023"}

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty keeps all newest first", "", []int{2, 1, 0}},
		{"blank keeps all newest first", "   ", []int{2, 1, 0}},
		{"case insensitive", "wint", []int{1}},
		{"subsequence", "s24w", []int{1}},
		{"no match", "42", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := filterItems(tt.query, items)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filterItems(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterItems_MatchedRunes(t *testing.T) {
	order, hits := filterItems("sw", []string{"Sub/Winter"})
	if len(order) != 1 {
		t.Fatalf("order = %v, want one match", order)
	}
	if got := hits[0]; !reflect.DeepEqual(got, []int{0, 4}) {
		t.Errorf("hits = %v, want [0 4]", got)
	}
}

func TestShiftHits(t *testing.T) {
	tests := []struct {
		name  string
		hits  []int
		full  int
		width int
		want  []int
	}{
		{"fits", []int{0, 4}, 15, 40, []int{0, 4}},
		{"no width", []int{0, 4}, 15, 0, []int{0, 4}},
		// "Sub/2024/Winter" at width 7 renders as "…Winter"
		{"truncated", []int{0, 9, 14}, 15, 7, []int{1, 6}},
		{"all dropped", []int{0, 1}, 15, 7, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shiftHits(tt.hits, tt.full, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("shiftHits = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeepRight(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"Sub/2024/Winter", 40, "Sub/2024/Winter"},
		{"Sub/2024/Winter", 7, "…Winter"},
		{"Sub/2024/Winter", 1, "…"},
		{"Sub", 0, "Sub"},
	}

	for _, tt := range tests {
		if got := KeepRight(tt.s, tt.width); got != tt.want {
			t.Errorf("KeepRight(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
