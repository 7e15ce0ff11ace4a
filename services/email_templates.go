package services

import (
	"fmt"
	"html"
	"time"
)

// ConfirmationEmailHTML builds the submission confirmation sent after a
// public form insert. Values are escaped; form data arrives straight from
// the public internet.
func ConfirmationEmailHTML(name, formLabel, reference string) string {
	return fmt.Sprintf(`<html><body>
<h2>Thank you, %s</h2>
<p>We have received your %s and will get back to you shortly.</p>
<p>Your reference number is <strong>%s</strong>.</p>
<p>— The Arvotech team</p>
</body></html>`,
		html.EscapeString(name), html.EscapeString(formLabel), html.EscapeString(reference))
}

// OTPEmailHTML builds the sensitive-action verification email.
func OTPEmailHTML(code string, ttl time.Duration) string {
	return fmt.Sprintf(`<html><body>
<h2>Verification code</h2>
<p>A sensitive administrative action was requested. Enter this code to approve it:</p>
<p style="font-size:24px;letter-spacing:4px"><strong>%s</strong></p>
<p>The code expires in %d minutes. If you did not request this, you can ignore this email.</p>
</body></html>`,
		html.EscapeString(code), int(ttl.Minutes()))
}
