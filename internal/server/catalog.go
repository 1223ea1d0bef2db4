package server

import (
	"net/http"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	catalogdomain "github.com/smallbiznis/easysale/internal/catalog/domain"
)

// GetCatalogRows previews a catalog as the checkout form would render it.
func (s *Server) GetCatalogRows(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid catalog id"))
		return
	}

	priceLevel := 1
	if raw := c.Query("price_level"); raw != "" {
		priceLevel, err = strconv.Atoi(raw)
		if err != nil || priceLevel < 1 || priceLevel > 5 {
			AbortWithError(c, newValidationError("price_level", "invalid_price_level", "price level must be 1-5"))
			return
		}
	}

	rows, err := s.catalogSvc.Rows(c.Request.Context(), catalogdomain.RowsRequest{
		CatalogID:  snowflake.ID(id),
		PriceLevel: priceLevel,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
