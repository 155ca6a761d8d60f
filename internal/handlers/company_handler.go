package handlers

import (
	"net/http"

	"billing-backend/internal/config"
)

// CompanyHandler serves the configured issuer profiles so the invoice
// form can offer a "bill from" picker.
type CompanyHandler struct {
	Config *config.Config
}

func NewCompanyHandler(cfg *config.Config) *CompanyHandler {
	return &CompanyHandler{Config: cfg}
}

func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies := h.Config.Companies
	if companies == nil {
		companies = []config.CompanyProfile{}
	}
	writeJSON(w, http.StatusOK, companies)
}
