package render

import (
	"strings"
	"testing"
)

func TestSymbol(t *testing.T) {
	cases := []struct {
		currency string
		want     string
	}{
		{"USD", "$"},
		{"AUD", "$"},
		{"CAD", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"JPY", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Symbol(tc.currency); got != tc.want {
			t.Errorf("Symbol(%q) = %q, want %q", tc.currency, got, tc.want)
		}
	}
}

func TestPaymentAccepted(t *testing.T) {
	page := PaymentAccepted("https://cdn.example.com/logo.png", "CS-42", "20.00", "$")
	if !strings.Contains(page, "Your payment amount of $20.00 has been accepted. Your transaction number is: CS-42.") {
		t.Fatalf("confirmation line missing:\n%s", page)
	}
	if !strings.Contains(page, "https://cdn.example.com/logo.png") {
		t.Fatal("logo missing")
	}
}

func TestOrderAccepted(t *testing.T) {
	page := OrderAccepted("")
	if !strings.Contains(page, "Sales order created successfully, thank you for your order!") {
		t.Fatalf("confirmation line missing:\n%s", page)
	}
}

func TestPaymentFailed(t *testing.T) {
	if !strings.Contains(PaymentFailed(""), "Card payment failed to process.") {
		t.Fatal("failure line missing")
	}
}

func TestCheckEmail(t *testing.T) {
	if !strings.Contains(CheckEmail(), "No customer - please ensure an email address was entered.") {
		t.Fatal("check email line missing")
	}
}

func TestFormPage(t *testing.T) {
	page := FormPage(FormData{
		CompanyName:   "Acme Retail",
		HeaderAddress: "1 Main St\nSpringfield",
		Headers:       []string{"Name", "Price"},
		Rows: []FormRow{
			{ItemID: "501", Price: "10.00", Cells: []FormCell{{Value: "Widget"}, {Value: "10.00"}}},
		},
	})

	for _, want := range []string{
		`name="selected_501"`,
		`data-price="10.00"`,
		`name="quantity_501" min="1" max="50"`,
		`name="custEmail"`,
		`name="expireDate"`,
		"1 Main St<br />Springfield",
		"<th>Price</th>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("form page missing %q", want)
		}
	}
}

func TestFormPageImageCell(t *testing.T) {
	page := FormPage(FormData{
		CompanyName: "Acme Retail",
		Headers:     []string{"Photo"},
		Rows: []FormRow{
			{ItemID: "501", Price: "5.00", Cells: []FormCell{{Value: "https://host/media.nl?id=9", Image: true}}},
		},
	})
	if !strings.Contains(page, `src="https://host/media.nl?id=9"`) {
		t.Fatalf("image cell not rendered:\n%s", page)
	}
}

func TestOptionData(t *testing.T) {
	if len(CardTypeOptions) != 4 {
		t.Fatalf("card types = %d, want 4", len(CardTypeOptions))
	}
	if len(StateOptions) != 51 {
		t.Fatalf("states = %d, want 51", len(StateOptions))
	}
	if len(CountryOptions) == 0 {
		t.Fatal("no countries")
	}
	if CountryOptions[0].Label != "Afghanistan" {
		t.Fatalf("first country = %q", CountryOptions[0].Label)
	}
}
