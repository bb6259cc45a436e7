package usecase

import (
	"fmt"
	"strings"

	"socialdots/internal/domain/entities"
)

const chatTimeLayout = "2006-01-02 15:04"

// FormatLeadMessage renders the chat message posted when a lead is created.
func FormatLeadMessage(l entities.Lead) string {
	var b strings.Builder
	b.WriteString("🎯 *New Lead Created*\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", l.Name)
	fmt.Fprintf(&b, "*Email:* %s\n", l.Email)
	fmt.Fprintf(&b, "*Phone:* %s\n", orDefault(l.Phone, "Not provided"))
	fmt.Fprintf(&b, "*Company:* %s\n", orDefault(l.Company, "Not provided"))
	fmt.Fprintf(&b, "*Service Interest:* %s\n", orDefault(l.ServiceInterest, "Not specified"))
	fmt.Fprintf(&b, "*Source:* %s\n", orDefault(l.Source, "Website"))
	fmt.Fprintf(&b, "*Budget:* %s\n", orDefault(l.Budget, "Not specified"))
	fmt.Fprintf(&b, "*Timeline:* %s\n", orDefault(l.Timeline, "Not specified"))
	fmt.Fprintf(&b, "*Message:* %s\n\n", orDefault(l.Message, "No message provided"))
	fmt.Fprintf(&b, "*Status:* %s\n", titleCase(string(l.Status)))
	fmt.Fprintf(&b, "*Created:* %s", l.CreatedAt.Format(chatTimeLayout))
	return b.String()
}

// FormatOrderMessage renders the chat message posted when an order is created.
func FormatOrderMessage(o entities.Order) string {
	var b strings.Builder
	b.WriteString("💰 *New Order Created*\n\n")
	fmt.Fprintf(&b, "*Order ID:* %s\n", o.OrderID)
	fmt.Fprintf(&b, "*Customer:* %s\n", o.CustomerName)
	fmt.Fprintf(&b, "*Email:* %s\n", o.CustomerEmail)
	fmt.Fprintf(&b, "*Phone:* %s\n", orDefault(o.CustomerPhone, "Not provided"))
	fmt.Fprintf(&b, "*Service:* %s\n", orDefault(o.ServiceName, "-"))
	fmt.Fprintf(&b, "*Plan:* %s\n", orDefault(o.PricingPlanName, "-"))
	fmt.Fprintf(&b, "*Amount:* $%s %s\n", o.Amount.StringFixed(2), o.Currency)
	fmt.Fprintf(&b, "*Status:* %s\n", titleCase(string(o.Status)))
	fmt.Fprintf(&b, "*Created:* %s", o.CreatedAt.Format(chatTimeLayout))
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
