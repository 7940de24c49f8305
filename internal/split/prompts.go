package split

import (
	"fmt"

	"github.com/moriyama-t/splitbot/internal/bill"
)

const extractionPrompt = "You are an expert receipt scanner. Analyze this image and extract all itemized items, their prices, " +
	"and any tax and service charges. " +
	"Respond *ONLY* with a valid JSON object in this exact format: " +
	`{"items": [{"name": "Item Name", "price": 12.50}, {"name": "Another Item", "price": 8.00}], ` +
	`"tax": 1.50, "service_charge": 2.00, "subtotal": 20.50}` +
	" If you cannot find items, tax, or service, set their value to 0.00. " +
	"Do not include any other text before or after the JSON."

// assignmentPrompt builds the calculation prompt from the stored bill
// and the user's free-text assignments.
func assignmentPrompt(b *bill.Bill, assignments string) string {
	return fmt.Sprintf(
		"You are an expert bill splitting calculator. I will give you a JSON of bill data and a text of assignments.\n\n"+
			"**Bill Data (JSON):**\n%s\n\n"+
			"**Assignments (Text):**\n%s\n\n"+
			"**Your Task:**\n"+
			"1.  Calculate the subtotal for each person based on the items they were assigned. Match item names fuzzily (e.g., 'Burger' matches 'burger').\n"+
			"2.  If an item is assigned to 'Everyone' or 'Share', split its cost evenly among all people mentioned.\n"+
			"3.  Calculate the total subtotal of all assigned items.\n"+
			"4.  Calculate each person's *percentage* of this total subtotal.\n"+
			"5.  Each person must pay their item subtotal, plus their *percentage* of the `tax` and `service_charge`.\n"+
			"6.  Respond with a clear, final breakdown for each person.\n",
		b.JSON(), assignments)
}
