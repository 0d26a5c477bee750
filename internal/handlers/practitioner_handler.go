package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/directory"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httpresp"
	ucDirectory "github.com/MediLinkServices01/telehealth-scheduler/internal/usecase/directory"
)

// ======================================================
// HANDLER
// ======================================================

type PractitionerHandler struct {
	searchUC *ucDirectory.SearchPractitioners
}

func NewPractitionerHandler(searchUC *ucDirectory.SearchPractitioners) *PractitionerHandler {
	return &PractitionerHandler{searchUC: searchUC}
}

// ======================================================
// SEARCH
// ======================================================

func (h *PractitionerHandler) Search(c *gin.Context) {
	q := domain.Query{
		Text:           c.Query("q"),
		Category:       c.DefaultQuery("category", domain.CategoryAll),
		AvailableToday: c.Query("available_today") == "true",
		SortBy:         domain.SortKey(c.DefaultQuery("sort_by", string(domain.SortRating))),
	}

	switch q.SortBy {
	case domain.SortRating, domain.SortExperience, domain.SortFeeAsc, domain.SortFeeDesc:
	default:
		httperr.BadRequest(c, "invalid_sort_key", "Unknown sort key.")
		return
	}

	result, err := h.searchUC.Execute(c.Request.Context(), q)
	if err != nil {
		httperr.Internal(c, "search_failed", "Could not search practitioners.")
		return
	}

	httpresp.List(c, result)
}

func (h *PractitionerHandler) Categories(c *gin.Context) {
	httpresp.List(c, domain.Categories)
}
