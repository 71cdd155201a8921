package email

import (
	"bytes"
	"html/template"

	"saaj/models"
)

var contactTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:'Segoe UI',Tahoma,sans-serif;background-color:#f5f5f5;">
  <div style="max-width:600px;margin:0 auto;padding:20px;">
    <div style="background:linear-gradient(135deg,#6366F1 0%,#EC4899 100%);padding:30px;border-radius:16px 16px 0 0;text-align:center;">
      <h1 style="color:white;margin:0;font-size:24px;">New Contact Form Submission</h1>
    </div>
    <div style="background:white;padding:30px;border-radius:0 0 16px 16px;">
      <table style="width:100%;border-collapse:collapse;">
        <tr><td style="padding:8px 0;color:#666;width:120px;"><strong>Name:</strong></td><td style="padding:8px 0;color:#333;">{{.FirstName}} {{.LastName}}</td></tr>
        <tr><td style="padding:8px 0;color:#666;"><strong>Email:</strong></td><td style="padding:8px 0;color:#333;">{{.Email}}</td></tr>
        {{if .Phone}}<tr><td style="padding:8px 0;color:#666;"><strong>Phone:</strong></td><td style="padding:8px 0;color:#333;">{{.Phone}}</td></tr>{{end}}
        {{if .Subject}}<tr><td style="padding:8px 0;color:#666;"><strong>Subject:</strong></td><td style="padding:8px 0;color:#333;">{{.Subject}}</td></tr>{{end}}
      </table>
      <div style="background:#f8f9fa;padding:16px;border-radius:8px;border-left:4px solid #6366F1;margin-top:16px;">
        <p style="color:#333;margin:0;white-space:pre-wrap;line-height:1.6;">{{.Message}}</p>
      </div>
    </div>
    <p style="text-align:center;color:#999;font-size:12px;margin-top:20px;">Sent from the contact form on www.saajtradingcompany.in</p>
  </div>
</body>
</html>`))

var orderConfirmationTmpl = template.Must(template.New("orderConfirmation").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:'Segoe UI',Tahoma,sans-serif;background-color:#f5f5f5;">
  <div style="max-width:600px;margin:0 auto;padding:20px;">
    <div style="background:linear-gradient(135deg,#6366F1 0%,#EC4899 100%);padding:30px;border-radius:16px 16px 0 0;text-align:center;">
      <h1 style="color:white;margin:0;font-size:24px;">Thank You for Your Order!</h1>
      <p style="color:white;margin:8px 0 0 0;">Order {{.OrderID}}</p>
    </div>
    <div style="background:white;padding:30px;border-radius:0 0 16px 16px;">
      <p style="color:#333;">Hi {{.Customer.Name}}, your order has been received and is being processed.</p>
      <table style="width:100%;border-collapse:collapse;margin-top:16px;">
        <tr style="border-bottom:2px solid #eee;">
          <th style="text-align:left;padding:8px 0;color:#666;">Item</th>
          <th style="text-align:right;padding:8px 0;color:#666;">Qty</th>
          <th style="text-align:right;padding:8px 0;color:#666;">Price</th>
        </tr>
        {{range .Items}}
        <tr style="border-bottom:1px solid #eee;">
          <td style="padding:8px 0;color:#333;">{{.Name}}</td>
          <td style="text-align:right;padding:8px 0;color:#333;">{{.Quantity}}</td>
          <td style="text-align:right;padding:8px 0;color:#333;">&#8377;{{printf "%.2f" .Price}}</td>
        </tr>
        {{end}}
        <tr><td colspan="2" style="padding:8px 0;color:#666;text-align:right;"><strong>Subtotal</strong></td><td style="text-align:right;padding:8px 0;color:#333;">&#8377;{{printf "%.2f" .Subtotal}}</td></tr>
        {{if gt .Discount 0.0}}<tr><td colspan="2" style="padding:8px 0;color:#666;text-align:right;"><strong>Discount</strong></td><td style="text-align:right;padding:8px 0;color:#333;">-&#8377;{{printf "%.2f" .Discount}}</td></tr>{{end}}
        <tr><td colspan="2" style="padding:8px 0;color:#666;text-align:right;"><strong>Total</strong></td><td style="text-align:right;padding:8px 0;color:#333;"><strong>&#8377;{{printf "%.2f" .Total}}</strong></td></tr>
      </table>
      <p style="color:#666;margin-top:24px;">Delivery to: {{.Customer.Address}}</p>
    </div>
  </div>
</body>
</html>`))

var orderNotificationTmpl = template.Must(template.New("orderNotification").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:'Segoe UI',Tahoma,sans-serif;background-color:#f5f5f5;">
  <div style="max-width:600px;margin:0 auto;padding:20px;">
    <div style="background:#1f2937;padding:24px;border-radius:16px 16px 0 0;text-align:center;">
      <h1 style="color:white;margin:0;font-size:20px;">New Order {{.OrderID}}</h1>
    </div>
    <div style="background:white;padding:24px;border-radius:0 0 16px 16px;">
      <p style="color:#333;"><strong>{{.Customer.Name}}</strong> &middot; {{.Customer.Phone}}{{if .Customer.Email}} &middot; {{.Customer.Email}}{{end}}</p>
      <p style="color:#666;">{{.Customer.Address}}</p>
      <table style="width:100%;border-collapse:collapse;margin-top:16px;">
        {{range .Items}}
        <tr style="border-bottom:1px solid #eee;">
          <td style="padding:8px 0;color:#333;">{{.Name}} &times; {{.Quantity}}</td>
          <td style="text-align:right;padding:8px 0;color:#333;">&#8377;{{printf "%.2f" .Price}}</td>
        </tr>
        {{end}}
      </table>
      <p style="color:#333;text-align:right;margin-top:16px;"><strong>Total: &#8377;{{printf "%.2f" .Total}}</strong></p>
    </div>
  </div>
</body>
</html>`))

// renderContact accepts any struct with the contact fields; the HTTP payload
// and the stored model both fit.
func renderContact(data any) (string, error) {
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderOrderConfirmation(order *models.Order) (string, error) {
	var buf bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&buf, order); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderOrderNotification(order *models.Order) (string, error) {
	var buf bytes.Buffer
	if err := orderNotificationTmpl.Execute(&buf, order); err != nil {
		return "", err
	}
	return buf.String(), nil
}
