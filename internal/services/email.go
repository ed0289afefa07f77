package services

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"glow/internal/models"
)

// EmailService, e-posta gönderimi için kullanılır
type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService, yeni bir EmailService örneği oluşturur. SMTP bilgileri
// eksikse gönderim devre dışı kalır ve mesajlar yalnızca loglanır.
func NewEmailService(host string, port int, user, pass string) *EmailService {
	if user == "" || pass == "" {
		log.Println("EmailService - SMTP not configured, email delivery disabled")
		return &EmailService{from: "noreply@glow.shop"}
	}

	return &EmailService{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

// SendWelcomeEmail, yeni kayıt olan kullanıcıya hoş geldin e-postası gönderir.
func (es *EmailService) SendWelcomeEmail(to, name string) error {
	subject := "Welcome to Glow ✨"
	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your Glow account is ready. Browse new arrivals, save your favourites
		and track your orders any time.</p>
		<p>Happy shopping!</p>`, name)
	return es.send(to, subject, body)
}

// SendOrderConfirmation, sipariş onay e-postasını gönderir.
func (es *EmailService) SendOrderConfirmation(to string, order *models.Order) error {
	var items strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&items, "<li>%s × %d — $%.2f</li>", item.Name, item.Quantity, item.TotalPrice)
	}

	subject := fmt.Sprintf("Order %s confirmed", order.ID)
	body := fmt.Sprintf(`
		<h2>Thank you for your order!</h2>
		<p>Order <b>%s</b> has been placed.</p>
		<ul>%s</ul>
		<p>Subtotal: $%.2f<br>Shipping: $%.2f<br>Tax: $%.2f<br><b>Total: $%.2f</b></p>
		<p>Tracking number: <b>%s</b></p>`,
		order.ID, items.String(), order.Subtotal, order.Shipping, order.Tax, order.Total, order.TrackingNumber)
	return es.send(to, subject, body)
}

func (es *EmailService) send(to, subject, body string) error {
	if es.dialer == nil {
		log.Printf("EmailService - delivery disabled, would send %q to %s", subject, to)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", es.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
