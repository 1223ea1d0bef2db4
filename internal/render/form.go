package render

import (
	"bytes"
	"html/template"
	"strings"
)

// FormCell is one rendered value of an item row. Image cells render as an
// <img> tag instead of text.
type FormCell struct {
	Value string
	Image bool
}

// FormRow is one orderable item on the form. Price is the display price the
// client-side total calculation reads from the checkbox's data attribute.
type FormRow struct {
	ItemID string
	Price  string
	Cells  []FormCell
}

// FormData carries everything the checkout form needs from configuration
// and catalog.
type FormData struct {
	CompanyName   string
	LogoURL       string
	HeaderAddress string
	Headers       []string
	Rows          []FormRow
}

type formView struct {
	FormData
	HeaderHTML template.HTML
	CardTypes  []Option
	Countries  []Option
	States     []Option
}

var formTmpl = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>{{.CompanyName}}</title>
    <style>` + pageStyle + `
      #items-table th, #items-table td { padding: 4px 12px; text-align: left; }
      .section { margin: 16px 0; }
      label { display: inline-block; min-width: 160px; }
    </style>
    <script>
      function updateTotal() {
        var total = 0;
        var rows = document.querySelectorAll('#items-table tbody tr');
        rows.forEach(function (row) {
          var selected = row.querySelector('.selected');
          var quantity = row.querySelector('.quantity');
          if (selected.checked) {
            if (quantity.value === '') quantity.value = 1;
            total += Number(selected.dataset.price) * Number(quantity.value);
          }
        });
        document.getElementById('total').textContent = total.toFixed(2);
      }
    </script>
  </head>
  <body>
    <div id="formContainer">
      {{if .LogoURL}}<span id="companyLogo"><img src="{{.LogoURL}}" alt="Company Logo"></span>{{end}}
      <h1>{{.CompanyName}}</h1>
      <p id="headerAddress">{{.HeaderHTML}}</p>
      <form method="POST" action="">
        <div class="section">
          <label for="customer-name">Name</label>
          <input type="text" id="customer-name" name="custName" maxlength="30">
          <br>
          <label for="customer-email">Email</label>
          <input type="email" id="customer-email" name="custEmail">
          <br>
          <label for="company-name">Company Name</label>
          <input type="text" id="company-name" name="companyName">
          <br>
          <label for="comments">Comments</label>
          <input type="text" id="comments" name="comments">
        </div>
        <table id="items-table">
          <thead>
            <tr>
              <th>Order</th>
              <th>Quantity</th>
              {{range .Headers}}<th>{{.}}</th>{{end}}
            </tr>
          </thead>
          <tbody>
            {{range .Rows}}<tr>
              <td><input type="checkbox" class="selected" name="selected_{{.ItemID}}" data-price="{{.Price}}" onclick="updateTotal()"></td>
              <td><input type="number" class="quantity" name="quantity_{{.ItemID}}" min="1" max="50" placeholder="0" onchange="updateTotal()"></td>
              {{range .Cells}}{{if .Image}}<td><img height="50px" width="50px" alt="Image" src="{{.Value}}" /></td>{{else}}<td>{{.Value}}</td>{{end}}{{end}}
            </tr>
            {{end}}
          </tbody>
        </table>
        <p>Total: <span id="total">0.00</span></p>
        <div class="section">
          <label for="country-select">Country</label>
          <select id="country-select" name="addrCountry">
            <option value=""></option>
            {{range .Countries}}<option value="{{.Value}}">{{.Label}}</option>{{end}}
          </select>
          <br>
          <label for="addr-line-1">Address Line 1</label>
          <input type="text" id="addr-line-1" name="addrLineOne">
          <br>
          <label for="addr-line-2">Address Line 2</label>
          <input type="text" id="addr-line-2" name="addrLineTwo">
          <br>
          <label for="city">City</label>
          <input type="text" id="city" name="addrCity">
          <br>
          <label for="state-select">State</label>
          <select id="state-select" name="addrStateCounty">
            <option value=""></option>
            {{range .States}}<option value="{{.Value}}">{{.Label}}</option>{{end}}
          </select>
          <br>
          <label for="zip-code">Postcode</label>
          <input type="text" id="zip-code" name="addrPostcode">
        </div>
        <div class="section">
          <label for="card-type">Card Type</label>
          <select id="card-type" name="cardType">
            <option value=""></option>
            {{range .CardTypes}}<option value="{{.Value}}">{{.Label}}</option>{{end}}
          </select>
          <br>
          <label for="cardholder-name">Name on Card</label>
          <input type="text" id="cardholder-name" name="cardName">
          <br>
          <label for="card-number">Card Number</label>
          <input type="text" id="card-number" name="cardNo">
          <br>
          <label for="expireDate">Expiry (MM/YYYY)</label>
          <input type="text" id="expireDate" name="expireDate" placeholder="MM/YYYY">
          <br>
          <label for="cvc">CVC</label>
          <input type="text" id="cvc" name="CVC">
          <br>
          <label for="card-address">Billing Street</label>
          <input type="text" id="card-address" name="custAddress">
        </div>
        <button type="submit">Submit Order</button>
      </form>
    </div>
  </body>
</html>
`))

// FormPage renders the checkout form. The header address keeps its line
// breaks as <br /> tags.
func FormPage(data FormData) string {
	view := formView{
		FormData:   data,
		HeaderHTML: headerHTML(data.HeaderAddress),
		CardTypes:  CardTypeOptions,
		Countries:  CountryOptions,
		States:     StateOptions,
	}
	var buf bytes.Buffer
	if err := formTmpl.Execute(&buf, view); err != nil {
		return ""
	}
	return buf.String()
}

func headerHTML(addr string) template.HTML {
	escaped := template.HTMLEscapeString(addr)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br />"))
}
