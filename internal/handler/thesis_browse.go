package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gtsarchive/gts-backend/internal/repository"
)

// Search handles GET /api/theses. Optional query parameters: search
// (substring of title or author name, case-insensitive), type, language,
// year, limit. Absent or "All" values mean no filter; filters combine with
// AND. Results come newest submission first, capped at limit (default 30,
// max 100). The response is a bare JSON array, matching what the mobile
// client consumes.
func (h *ThesisHandler) Search(c echo.Context) error {
	year, _ := strconv.Atoi(c.QueryParam("year"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 30
	}
	if limit > 100 {
		limit = 100
	}

	q := repository.ThesisSearchQuery{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Type:     strings.TrimSpace(c.QueryParam("type")),
		Language: strings.TrimSpace(c.QueryParam("language")),
		Year:     year,
		Limit:    limit,
	}

	items, err := h.Theses.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// MyTheses handles GET /api/my-theses. An absent author_name yields an
// empty array rather than an error, which is what the profile screen
// expects before a profile exists.
func (h *ThesisHandler) MyTheses(c echo.Context) error {
	authorName := strings.TrimSpace(c.QueryParam("author_name"))
	if authorName == "" {
		return c.JSON(http.StatusOK, []repository.ThesisSummary{})
	}
	items, err := h.Theses.ListByAuthorName(c.Request().Context(), authorName)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// ProfessorTheses handles GET /api/professors/:id/theses: every thesis the
// professor supervises or co-supervises, newest first.
func (h *ThesisHandler) ProfessorTheses(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid professor id"})
	}
	items, err := h.Theses.ListByProfessor(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}
