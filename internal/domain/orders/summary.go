package orders

import (
	"fmt"
	"strings"
)

// Summary es el texto del email al operador.
func Summary(o Order) (subject, body string) {
	subject = "New Pet Care Order"
	if o.ID > 0 {
		subject = fmt.Sprintf("New Pet Care Order #%d", o.ID)
	}

	var b strings.Builder
	b.WriteString("New order received:\n")
	if o.ID > 0 {
		fmt.Fprintf(&b, "Order: #%d\n", o.ID)
	}
	if strings.TrimSpace(o.Name) != "" {
		fmt.Fprintf(&b, "Name: %s\n", o.Name)
	}
	fmt.Fprintf(&b, "Pet: %s\n", o.Pets)
	fmt.Fprintf(&b, "Count: %d\n", o.PetCount)
	fmt.Fprintf(&b, "Dates: %s to %s (%d days)\n", FormatDate(o.StartDate), FormatDate(o.EndDate), Days(o.StartDate, o.EndDate))
	fmt.Fprintf(&b, "Time: %s\n", o.DailyTime)
	fmt.Fprintf(&b, "Estimated Cost: $%.2f\n", o.EstimatedCost)
	fmt.Fprintf(&b, "Contact: %s, %s\n", o.Email, o.Phone)
	fmt.Fprintf(&b, "Notes: %s\n", o.Description)

	return subject, b.String()
}
