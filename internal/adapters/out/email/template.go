package email

import "fmt"

// Template wraps a message body in the shared TURTU email layout.
// The body may contain HTML markup such as <br> and <strong>.
func Template(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
    <div style="background-color:#00b5ad;padding:20px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;">TURTU</h1>
    </div>
    <div style="padding:30px;color:#333333;">
      <h2 style="margin-top:0;">%s</h2>
      <p>%s</p>
    </div>
    <div style="background-color:#f4f4f4;padding:15px;text-align:center;color:#888888;font-size:12px;">
      &copy; TURTU. All rights reserved.
    </div>
  </div>
</body>
</html>`, title, body)
}
