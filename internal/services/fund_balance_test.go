package services

import (
	"reflect"
	"testing"
)

func TestMoveDeltas(t *testing.T) {
	tests := []struct {
		name     string
		oldFund  string
		oldCents int64
		newFund  string
		newCents int64
		want     []fundDelta
	}{
		{"create", "", 0, "a", 500, []fundDelta{{"a", 500}}},
		{"delete", "a", 500, "", 0, []fundDelta{{"a", -500}}},
		{"amount_change", "a", 10000, "a", 7000, []fundDelta{{"a", -3000}}},
		{"unchanged", "a", 500, "a", 500, nil},
		{"reassign", "a", 300, "b", 250, []fundDelta{{"a", -300}, {"b", 250}}},
		{"reassign_same_amount", "a", 300, "b", 300, []fundDelta{{"a", -300}, {"b", 300}}},
		{"no_fund", "", 300, "", 900, nil},
		{"zero_contribution", "a", 0, "b", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := moveDeltas(tt.oldFund, tt.oldCents, tt.newFund, tt.newCents)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
