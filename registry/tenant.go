package registry

import (
	"fmt"
	"strings"
	"time"
)

type Tenant struct {
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	BalanceDue float64   `json:"balance_due"`
	Payments   []Payment `json:"payments,omitempty"`
}

type Payment struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

func NewTenant(name, phone, email string) *Tenant {
	return &Tenant{Name: name, Phone: phone, Email: email}
}

// MakePayment accepts any amount, including one larger than the balance due;
// overpayment leaves the tenant in credit.
func (t *Tenant) MakePayment(amount float64, today time.Time) string {
	t.BalanceDue -= amount
	t.Payments = append(t.Payments, Payment{Amount: amount, Date: today.Format(dateLayout)})
	return fmt.Sprintf("Payment of $%s made. Remaining balance: $%s", money(amount), money(t.BalanceDue))
}

func (t *Tenant) PaymentHistory() string {
	if len(t.Payments) == 0 {
		return "No payments made."
	}
	return strings.Join(paymentLines(t.Payments), "\n")
}

func (t *Tenant) String() string {
	return fmt.Sprintf("%s (%s, %s, Balance Due: $%s)", t.Name, t.Phone, t.Email, money(t.BalanceDue))
}

func paymentLines(payments []Payment) []string {
	lines := make([]string, 0, len(payments))
	for _, payment := range payments {
		lines = append(lines, fmt.Sprintf("$%s on %s", money(payment.Amount), payment.Date))
	}
	return lines
}
