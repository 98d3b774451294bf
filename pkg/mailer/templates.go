package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const welcomeHTML = `<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Welcome to MyWallet, {{.Name}}!</h2>
    <p>Your account is ready. Log in to start tracking your income and expenses.</p>
    <p style="color: #888; font-size: 12px;">If you did not create this account, you can ignore this message.</p>
  </body>
</html>`

var welcomeTpl = template.Must(template.New("welcome").Parse(welcomeHTML))

// Render produces subject, text and HTML bodies for a template name.
func Render(name string, data map[string]string) (subject, text, html string, err error) {
	switch name {
	case "welcome":
		var buf bytes.Buffer
		if err = welcomeTpl.Execute(&buf, struct{ Name string }{Name: data["name"]}); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to MyWallet"
		text = "Welcome to MyWallet, " + data["name"] + "! Your account is ready."
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
