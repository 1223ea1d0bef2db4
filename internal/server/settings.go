package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	settingsdomain "github.com/smallbiznis/easysale/internal/settings/domain"
)

type settingsRequest struct {
	SubsidiaryID       int64  `json:"subsidiary_id"`
	IsDefault          bool   `json:"is_default"`
	IsInactive         bool   `json:"is_inactive"`
	ProcessorProfileID string `json:"processor_profile_id"`
	CompanyName        string `json:"company_name"`
	CompanyLogoURL     string `json:"company_logo_url"`
	HeaderAddress      string `json:"header_address"`
	AccountID          int64  `json:"account_id"`
	AccountName        string `json:"account_name"`
	CatalogID          int64  `json:"catalog_id"`
	LocationID         int64  `json:"location_id"`
	NotifyEmail        string `json:"notify_email"`
	NotifyAuthor       string `json:"notify_author"`
	PriceLevel         int    `json:"price_level"`
	TransactionType    string `json:"transaction_type"`
	TemplateName       string `json:"template_name"`
	Currency           string `json:"currency"`
}

func (r settingsRequest) toCreateRequest() settingsdomain.CreateSettingsRequest {
	return settingsdomain.CreateSettingsRequest{
		SubsidiaryID:       snowflake.ID(r.SubsidiaryID),
		IsDefault:          r.IsDefault,
		ProcessorProfileID: strings.TrimSpace(r.ProcessorProfileID),
		CompanyName:        strings.TrimSpace(r.CompanyName),
		CompanyLogoURL:     strings.TrimSpace(r.CompanyLogoURL),
		HeaderAddress:      r.HeaderAddress,
		AccountID:          snowflake.ID(r.AccountID),
		AccountName:        strings.TrimSpace(r.AccountName),
		CatalogID:          snowflake.ID(r.CatalogID),
		LocationID:         snowflake.ID(r.LocationID),
		NotifyEmail:        strings.TrimSpace(r.NotifyEmail),
		NotifyAuthor:       strings.TrimSpace(r.NotifyAuthor),
		PriceLevel:         r.PriceLevel,
		TransactionType:    strings.TrimSpace(r.TransactionType),
		TemplateName:       strings.TrimSpace(r.TemplateName),
		Currency:           strings.TrimSpace(r.Currency),
	}
}

func (s *Server) ListSettings(c *gin.Context) {
	resp, err := s.settingsSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetSettings(c *gin.Context) {
	resp, err := s.settingsSvc.GetByID(c.Request.Context(), settingsdomain.GetSettingsRequest{ID: c.Param("id")})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.settingsSvc.Create(c.Request.Context(), req.toCreateRequest())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateSettings(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid settings id"))
		return
	}

	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.settingsSvc.Update(c.Request.Context(), settingsdomain.UpdateSettingsRequest{
		ID:                    snowflake.ID(id),
		CreateSettingsRequest: req.toCreateRequest(),
		IsInactive:            req.IsInactive,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
