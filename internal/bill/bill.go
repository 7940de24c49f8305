package bill

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoItems       = errors.New("no items found on the bill")
	ErrInvalidAmount = errors.New("bill contains a negative amount")
)

// Item is a single line on the receipt, in the order it was found.
type Item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Bill is the structured result of reading a receipt image.
type Bill struct {
	Items         []Item  `json:"items"`
	Tax           float64 `json:"tax"`
	ServiceCharge float64 `json:"service_charge"`
	Subtotal      float64 `json:"subtotal"`
}

// Parse reads a bill from raw model output. The output may be wrapped
// in a Markdown code fence; everything around the JSON object is
// stripped before decoding. A bill without items is a failure.
func Parse(raw string) (*Bill, error) {
	text := stripCodeFence(raw)

	var b Bill
	if err := json.Unmarshal([]byte(text), &b); err != nil {
		return nil, fmt.Errorf("failed to parse bill JSON: %w", err)
	}
	if len(b.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range b.Items {
		if item.Price < 0 {
			return nil, ErrInvalidAmount
		}
	}
	if b.Tax < 0 || b.ServiceCharge < 0 {
		return nil, ErrInvalidAmount
	}
	return &b, nil
}

// JSON serializes the bill for inclusion in a prompt.
func (b *Bill) JSON() string {
	data, err := json.Marshal(b)
	if err != nil {
		// Bill contains only plain fields; this cannot happen.
		return "{}"
	}
	return string(data)
}

// Summary renders the numbered item list plus tax and service charge.
func (b *Bill) Summary() string {
	var sb strings.Builder
	for i, item := range b.Items {
		fmt.Fprintf(&sb, "%d. %s - $%.2f\n", i+1, item.Name, item.Price)
	}
	fmt.Fprintf(&sb, "\nTax: $%.2f\n", b.Tax)
	fmt.Fprintf(&sb, "Service: $%.2f", b.ServiceCharge)
	return sb.String()
}

func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}
