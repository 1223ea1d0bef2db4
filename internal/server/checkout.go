package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/easysale/internal/card"
	catalogdomain "github.com/smallbiznis/easysale/internal/catalog/domain"
	"github.com/smallbiznis/easysale/internal/checkout"
	customerdomain "github.com/smallbiznis/easysale/internal/customer/domain"
	"github.com/smallbiznis/easysale/internal/render"
	settingsdomain "github.com/smallbiznis/easysale/internal/settings/domain"
	"go.uber.org/zap"
)

// Quantities submitted outside this range are clamped; the form enforces the
// same bounds client-side.
const maxLineQuantity = 50

// GetCheckoutForm renders the public order form for the default
// configuration. The public surface always answers 200 with HTML, even when
// no configuration resolves.
func (s *Server) GetCheckoutForm(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := s.settingsSvc.Resolve(ctx, settingsdomain.ResolveRequest{})
	if err != nil {
		s.log.Error("no checkout configuration", zap.Error(err))
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.PaymentFailed("")))
		return
	}

	req := catalogdomain.RowsRequest{CatalogID: cfg.CatalogID, PriceLevel: cfg.PriceLevel}
	labels, err := s.catalogSvc.Labels(ctx, req)
	if err != nil {
		s.log.Error("catalog labels unavailable", zap.Error(err), zap.Int64("catalog_id", int64(cfg.CatalogID)))
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.PaymentFailed(cfg.CompanyLogoURL)))
		return
	}
	rows, err := s.catalogSvc.Rows(ctx, req)
	if err != nil {
		s.log.Error("catalog rows unavailable", zap.Error(err), zap.Int64("catalog_id", int64(cfg.CatalogID)))
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.PaymentFailed(cfg.CompanyLogoURL)))
		return
	}

	formRows := make([]render.FormRow, 0, len(rows))
	for _, row := range rows {
		cells := make([]render.FormCell, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, render.FormCell{Value: cell.Value, Image: cell.Image})
		}
		formRows = append(formRows, render.FormRow{
			ItemID: row.ItemID.String(),
			Price:  row.Price.StringFixed(2),
			Cells:  cells,
		})
	}

	page := render.FormPage(render.FormData{
		CompanyName:   cfg.CompanyName,
		LogoURL:       cfg.CompanyLogoURL,
		HeaderAddress: cfg.HeaderAddress,
		Headers:       labels,
		Rows:          formRows,
	})
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// PostCheckout accepts the form submission and renders one of the outcome
// pages.
func (s *Server) PostCheckout(c *gin.Context) {
	sub := parseSubmission(c)

	confirmation, err := s.checkoutSvc.Submit(c.Request.Context(), sub)
	if err != nil {
		s.log.Error("checkout failed", zap.Error(err))
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.PaymentFailed("")))
		return
	}

	var page string
	switch confirmation.Kind {
	case checkout.KindCheckEmail:
		page = render.CheckEmail()
	case checkout.KindOrderAccepted:
		page = render.OrderAccepted(confirmation.LogoURL)
	case checkout.KindPaymentAccepted:
		page = render.PaymentAccepted(
			confirmation.LogoURL,
			confirmation.TranNumber,
			confirmation.Amount.StringFixed(2),
			render.Symbol(confirmation.Currency),
		)
	default:
		page = render.PaymentFailed(confirmation.LogoURL)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func parseSubmission(c *gin.Context) checkout.Submission {
	sub := checkout.Submission{
		Email:       c.PostForm("custEmail"),
		Name:        c.PostForm("custName"),
		CompanyName: c.PostForm("companyName"),
		Comments:    c.PostForm("comments"),
		Address: customerdomain.AddressInput{
			Country: c.PostForm("addrCountry"),
			Line1:   c.PostForm("addrLineOne"),
			Line2:   c.PostForm("addrLineTwo"),
			City:    c.PostForm("addrCity"),
			State:   c.PostForm("addrStateCounty"),
			Zip:     c.PostForm("addrPostcode"),
		},
		Card: card.Details{
			Method:     c.PostForm("cardType"),
			NameOnCard: c.PostForm("cardName"),
			Number:     c.PostForm("cardNo"),
			CVC:        c.PostForm("CVC"),
			Expiry:     c.PostForm("expireDate"),
			Street:     c.PostForm("custAddress"),
			Zip:        c.PostForm("addrPostcode"),
		},
		Selected:   map[snowflake.ID]bool{},
		Quantities: map[snowflake.ID]int{},
	}

	if err := c.Request.ParseForm(); err != nil {
		return sub
	}
	for key, values := range c.Request.PostForm {
		if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
			continue
		}
		switch {
		case strings.HasPrefix(key, "selected_"):
			if id, ok := parseItemID(strings.TrimPrefix(key, "selected_")); ok {
				sub.Selected[id] = true
			}
		case strings.HasPrefix(key, "quantity_"):
			id, ok := parseItemID(strings.TrimPrefix(key, "quantity_"))
			if !ok {
				continue
			}
			qty, err := strconv.Atoi(strings.TrimSpace(values[0]))
			if err != nil || qty < 1 {
				continue
			}
			if qty > maxLineQuantity {
				qty = maxLineQuantity
			}
			sub.Quantities[id] = qty
		}
	}
	return sub
}

func parseItemID(raw string) (snowflake.ID, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return snowflake.ID(id), true
}
