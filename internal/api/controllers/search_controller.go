package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"trendlens/internal/search"
	"trendlens/pkg/utils"
)

type SearchController struct {
	executor search.QueryExecutor
}

func NewSearchController(executor search.QueryExecutor) *SearchController {
	return &SearchController{
		executor: executor,
	}
}

// Autocomplete backs the header search widget. An empty query never touches
// the lookup API; a soft-empty upstream answer comes back as an empty list,
// while real lookup failures map to distinct status codes so the widget can
// tell "no results" from "search broke".
func (sc *SearchController) Autocomplete(c *gin.Context) {

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.RespondSuccess(c, []search.ResultItem{}, "")
		return
	}

	filter := search.Category(c.Query("category"))
	if filter != "" && !filter.IsValid() {
		utils.RespondError(c, http.StatusBadRequest, "category must be profile or hashtag")
		return
	}

	items, err := sc.executor.Execute(c.Request.Context(), query, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}
