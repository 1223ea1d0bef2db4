// Package render produces the HTML pages of the public checkout surface.
// All templates are parsed once at package load; every function returns a
// complete document.
package render

import (
	"bytes"
	"html/template"
)

const pageStyle = `
      #formContainer { padding-left: 20px; }
      #companyLogo { width: fit-content; height: fit-content; }
      * {
        font-family: Arial, Helvetica, sans-serif;
      }`

var orderAcceptedTmpl = template.Must(template.New("order_accepted").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>Payment Successful</title>
    <style>` + pageStyle + `
    </style>
  </head>
  <body>
    <div id="formContainer">
      <span id="companyLogo"><img src="{{.LogoURL}}" alt="Company Logo"></span>
      <h2>Order Confirmation</h2>
      <p id="referenceNo">Sales order created successfully, thank you for your order!</p>
    </div>
  </body>
</html>
`))

var paymentAcceptedTmpl = template.Must(template.New("payment_accepted").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>Payment Successful</title>
    <style>` + pageStyle + `
    </style>
  </head>
  <body>
    <div id="formContainer">
      <span id="companyLogo"><img src="{{.LogoURL}}" alt="Logo"></span>
      <h2>Order Confirmation</h2>
      <p id="referenceNo">Your payment amount of {{.Symbol}}{{.Amount}} has been accepted. Your transaction number is: {{.TranNumber}}.</p>
    </div>
  </body>
</html>
`))

var paymentFailedTmpl = template.Must(template.New("payment_failed").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>Payment Failed</title>
    <style>` + pageStyle + `
    </style>
  </head>
  <body>
    <div id="formContainer">
      <span id="companyLogo"><img src="{{.LogoURL}}" alt="Logo" /></span>
      <h2>Payment Failed</h2>
      <label><p id="referenceNo">Card payment failed to process.</p></label>
    </div>
  </body>
</html>
`))

var checkEmailTmpl = template.Must(template.New("check_email").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>Order Not Submitted</title>
    <style>` + pageStyle + `
    </style>
  </head>
  <body>
    <div id="formContainer">
      <h2>Order Not Submitted</h2>
      <p id="referenceNo">No customer - please ensure an email address was entered.</p>
    </div>
  </body>
</html>
`))

func OrderAccepted(logoURL string) string {
	return execute(orderAcceptedTmpl, map[string]string{"LogoURL": logoURL})
}

func PaymentAccepted(logoURL, tranNumber, amount, symbol string) string {
	return execute(paymentAcceptedTmpl, map[string]string{
		"LogoURL":    logoURL,
		"TranNumber": tranNumber,
		"Amount":     amount,
		"Symbol":     symbol,
	})
}

func PaymentFailed(logoURL string) string {
	return execute(paymentFailedTmpl, map[string]string{"LogoURL": logoURL})
}

func CheckEmail() string {
	return execute(checkEmailTmpl, nil)
}

func execute(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return buf.String()
}
