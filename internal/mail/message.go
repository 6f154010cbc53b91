package mail

import (
	"fmt"
	"strings"
)

const (
	contactCardSubject  = "Ross Arroyo's Contact Info - illumibot"
	contactCardFromName = "Ross Arroyo - illumibot"
	altBoundary         = "illumibot-card-alt"
)

const contactCardText = `Thanks for connecting with me! Here is my contact info:

Ross Arroyo
Founder / CEO, Illumibot.ai
601-434-4099
ross@illumibot.ai`

const contactCardHTML = `<div style="font-family:Arial,sans-serif;max-width:480px;margin:0 auto;padding:32px;background:#000;color:#fff;border-radius:12px;">
  <p style="font-size:16px;color:#ccc;">Thanks for connecting with me! Here is my contact info:</p>
  <div style="margin:24px 0;padding:20px;background:#111;border-radius:8px;border-left:3px solid #17FB15;">
    <p style="font-size:18px;font-weight:bold;margin:0 0 4px;">Ross Arroyo</p>
    <p style="color:#17FB15;margin:0 0 12px;">Founder / CEO, Illumibot.ai</p>
    <p style="margin:0;color:#ccc;">&#128241; <a href="tel:6014344099" style="color:#17FB15;">601-434-4099</a></p>
    <p style="margin:4px 0 0;color:#ccc;">&#9993;&#65039; <a href="mailto:ross@illumibot.ai" style="color:#17FB15;">ross@illumibot.ai</a></p>
  </div>
  <p style="font-size:12px;color:#555;text-align:center;">illumibot.ai &mdash; The 1st AI Personalized Projection&trade; App</p>
</div>`

// buildContactCard composes the fixed transactional message as a
// multipart/alternative body (plain text first, HTML preferred).
func buildContactCard(fromAddr, toAddr string) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %q <%s>\r\n", contactCardFromName, fromAddr)
	fmt.Fprintf(&b, "To: %s\r\n", toAddr)
	fmt.Fprintf(&b, "Subject: %s\r\n", contactCardSubject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", altBoundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", altBoundary)
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(strings.ReplaceAll(contactCardText, "\n", "\r\n"))
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", altBoundary)
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(contactCardHTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", altBoundary)

	return []byte(b.String())
}
