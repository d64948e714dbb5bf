package forecast

import (
	"reflect"
	"testing"
)

func TestBuildEditableMonths(t *testing.T) {
	tests := []struct {
		name      string
		latest    string
		count     int
		expected  []string
		expectErr bool
	}{
		{
			name:     "Six months spanning a year boundary",
			latest:   "2025.11",
			count:    6,
			expected: []string{"2025.12", "2026.01", "2026.02", "2026.03", "2026.04", "2026.05"},
		},
		{
			name:     "Single month",
			latest:   "2025.01",
			count:    1,
			expected: []string{"2025.02"},
		},
		{
			name:     "Rollover as first generated month",
			latest:   "2024.12",
			count:    2,
			expected: []string{"2025.01", "2025.02"},
		},
		{
			name:     "Zero count yields empty sequence",
			latest:   "2025.11",
			count:    0,
			expected: []string{},
		},
		{
			name:     "Negative count yields empty sequence",
			latest:   "2025.11",
			count:    -1,
			expected: []string{},
		},
		{
			name:      "Non-numeric month rejected",
			latest:    "2025.xx",
			count:     6,
			expectErr: true,
		},
		{
			name:      "Compact key rejected",
			latest:    "202511",
			count:     6,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, err := BuildEditableMonths(tt.latest, tt.count)
			if tt.expectErr {
				if err == nil {
					t.Errorf("BuildEditableMonths(%q, %d) expected an error, got %v", tt.latest, tt.count, months)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildEditableMonths(%q, %d) returned unexpected error: %v", tt.latest, tt.count, err)
			}
			if !reflect.DeepEqual(months, tt.expected) {
				t.Errorf("BuildEditableMonths(%q, %d) = %v, expected %v", tt.latest, tt.count, months, tt.expected)
			}
		})
	}
}

func TestItemIsValid(t *testing.T) {
	for _, item := range Items {
		if !item.IsValid() {
			t.Errorf("Item %q from the vocabulary reported invalid", item)
		}
	}

	invalid := []Item{"", "Total", "warehouse ", "unknown"}
	for _, item := range invalid {
		if item.IsValid() {
			t.Errorf("Item %q should be invalid", item)
		}
	}
}
