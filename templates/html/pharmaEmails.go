package templates

import (
	"fmt"
	"html"
	"strings"

	"github.com/pharmassist/pharmassist-api/models"
)

// RenderWelcomeEmail generates the HTML for the account welcome email
func RenderWelcomeEmail(name string) string {
	safeName := html.EscapeString(name)

	body := fmt.Sprintf(`
      <p>Hi %s,</p>
      <p>Welcome to PharmaAssist! Your account is ready.</p>
      <p>From your dashboard you can track your medications, upload prescriptions,
      place refill orders, and follow your deliveries in real time.</p>
      <p>Stay healthy,<br>The PharmaAssist Team</p>`, safeName)

	return fmt.Sprintf(emailShell, "Welcome to PharmaAssist", "Welcome to PharmaAssist", body)
}

// RenderOrderStatusEmail generates the HTML notifying a patient that their
// order moved to a new status
func RenderOrderStatusEmail(name string, order *models.Order) string {
	safeName := html.EscapeString(name)
	label := html.EscapeString(models.OrderStatusLabel(order.Status))

	var items strings.Builder
	for _, item := range order.Medicines {
		items.WriteString(fmt.Sprintf(`<div class="med-row"><span class="med-name">%s</span> &times; %d</div>`,
			html.EscapeString(item.Name), item.Quantity))
	}

	body := fmt.Sprintf(`
      <p>Hi %s,</p>
      <p>Your order <strong>%s</strong> has a new status:</p>
      <p><span class="badge">%s</span></p>
      %s
      <p>You can follow the order from your PharmaAssist dashboard.</p>`,
		safeName, order.ID.Hex(), label, items.String())

	return fmt.Sprintf(emailShell, "Order Update", "Order Update", body)
}

// RenderDailyReminderEmail generates the HTML for the morning medication
// summary. Medicines at or below their refill threshold get a low stock note.
func RenderDailyReminderEmail(name string, medicines []models.Medicine) string {
	safeName := html.EscapeString(name)

	var rows strings.Builder
	for _, med := range medicines {
		lowStock := ""
		if med.RefillNeeded() {
			lowStock = fmt.Sprintf(` <span class="low-stock">Low stock: %d doses left</span>`, med.Stock)
		}
		rows.WriteString(fmt.Sprintf(`<div class="med-row"><span class="med-name">%s</span> %s, %s at %s%s</div>`,
			html.EscapeString(med.Name),
			html.EscapeString(med.Dosage),
			html.EscapeString(med.Frequency),
			html.EscapeString(strings.Join(med.Times, ", ")),
			lowStock))
	}

	body := fmt.Sprintf(`
      <p>Good morning %s,</p>
      <p>Here is your medication schedule for today:</p>
      %s
      <p>Open PharmaAssist to mark doses as taken.</p>`, safeName, rows.String())

	return fmt.Sprintf(emailShell, "Your Daily Medication Reminder", "Daily Medication Reminder", body)
}
