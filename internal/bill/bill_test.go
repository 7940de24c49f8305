package bill

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantErr   error
		wantItems int
	}{
		{
			name:      "plain JSON",
			raw:       `{"items":[{"name":"Burger","price":10.00},{"name":"Salad","price":8.00}],"tax":1.00,"service_charge":2.00,"subtotal":18.00}`,
			wantItems: 2,
		},
		{
			name:      "fenced JSON",
			raw:       "```json\n{\"items\":[{\"name\":\"Burger\",\"price\":10.00}],\"tax\":0,\"service_charge\":0,\"subtotal\":10.00}\n```",
			wantItems: 1,
		},
		{
			name:      "bare fence",
			raw:       "```\n{\"items\":[{\"name\":\"Burger\",\"price\":10.00}]}\n```",
			wantItems: 1,
		},
		{
			name:      "defaults for absent tax and service",
			raw:       `{"items":[{"name":"Burger","price":10.00}]}`,
			wantItems: 1,
		},
		{
			name:    "empty items",
			raw:     `{"items":[],"tax":1.00,"service_charge":0,"subtotal":0}`,
			wantErr: ErrNoItems,
		},
		{
			name:    "missing items key",
			raw:     `{"tax":1.00}`,
			wantErr: ErrNoItems,
		},
		{
			name:    "prose instead of JSON",
			raw:     "Sorry, I cannot read this receipt.",
			wantErr: errors.New("any"),
		},
		{
			name:    "negative price",
			raw:     `{"items":[{"name":"Burger","price":-1.00}]}`,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative tax",
			raw:     `{"items":[{"name":"Burger","price":1.00}],"tax":-0.50}`,
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.raw)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error, got bill %+v", b)
				}
				if tt.wantErr.Error() != "any" && !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(b.Items) != tt.wantItems {
				t.Fatalf("expected %d items, got %d", tt.wantItems, len(b.Items))
			}
		})
	}
}

func TestParseDefaultsToZero(t *testing.T) {
	b, err := Parse(`{"items":[{"name":"Burger","price":10.00}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Tax != 0 || b.ServiceCharge != 0 || b.Subtotal != 0 {
		t.Fatalf("expected zero defaults, got %+v", b)
	}
}

func TestParsePreservesItemOrder(t *testing.T) {
	b, err := Parse(`{"items":[{"name":"Third","price":3},{"name":"First","price":1},{"name":"Second","price":2}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{b.Items[0].Name, b.Items[1].Name, b.Items[2].Name}
	want := []string{"Third", "First", "Second"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item order changed: got %v, want %v", got, want)
		}
	}
}

func TestSummary(t *testing.T) {
	b := &Bill{
		Items:         []Item{{Name: "Burger", Price: 10}, {Name: "Salad", Price: 8}},
		Tax:           1,
		ServiceCharge: 2,
		Subtotal:      18,
	}

	summary := b.Summary()

	for _, want := range []string{"1. Burger - $10.00", "2. Salad - $8.00", "Tax: $1.00", "Service: $2.00"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
