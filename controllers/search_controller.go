package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"talenthub/middleware"
	"talenthub/models"
	"talenthub/services"
	"talenthub/utils"
)

// SearchController serves the candidate search page: filtered, optionally
// ranked and sorted candidates with query-level suggestions.
type SearchController struct {
	candidates *models.CandidateModel
	search     *services.SearchService
	logger     *utils.Logger
}

func NewSearchController(candidates *models.CandidateModel, search *services.SearchService) *SearchController {
	return &SearchController{
		candidates: candidates,
		search:     search,
		logger:     utils.GlobalLogger.WithComponent("search"),
	}
}

// SearchCandidates runs a filtered candidate search. The fetch is bound to
// the request context, so a client that aborts and reissues the search
// cancels the stale query rather than letting it overwrite newer results.
func (sc *SearchController) SearchCandidates(c *gin.Context) {
	var filters services.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.BadRequestError(c, "Invalid search parameters", err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	candidates, err := sc.candidates.GetAllByUserID(ctx, middleware.UserID(c))
	if err != nil {
		sc.logger.Error("candidate fetch failed", err)
		utils.InternalServerError(c, "Failed to load candidates", err)
		return
	}

	result := sc.search.Search(candidates, filters, middleware.Caps(c), time.Now())
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
