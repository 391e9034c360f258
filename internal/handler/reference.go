package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gtsarchive/gts-backend/internal/repository"
)

// ReferenceHandler serves the dropdown data of the client: professors,
// universities and institutes. All endpoints are public reads.
type ReferenceHandler struct {
	Professors *repository.ProfessorRepo
	Reference  *repository.ReferenceRepo
}

func NewReferenceHandler(p *repository.ProfessorRepo, r *repository.ReferenceRepo) *ReferenceHandler {
	if p == nil || r == nil {
		panic("nil repository passed to NewReferenceHandler")
	}
	return &ReferenceHandler{Professors: p, Reference: r}
}

// GetProfessors handles GET /api/professors.
func (h *ReferenceHandler) GetProfessors(c echo.Context) error {
	items, err := h.Professors.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "database error"})
	}
	out := make([]echo.Map, 0, len(items))
	for _, p := range items {
		out = append(out, echo.Map{
			"professor_id":    p.ID,
			"professor_name":  p.Name,
			"professor_title": p.Title,
			"university_id":   p.UniversityID,
			"institute_id":    p.InstituteID,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GetUniversities handles GET /api/universities.
func (h *ReferenceHandler) GetUniversities(c echo.Context) error {
	items, err := h.Reference.ListUniversities(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "database error"})
	}
	out := make([]echo.Map, 0, len(items))
	for _, u := range items {
		out = append(out, echo.Map{"university_id": u.ID, "university_name": u.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// GetInstitutes handles GET /api/institutes. The optional university_id
// query parameter narrows the list to one university.
func (h *ReferenceHandler) GetInstitutes(c echo.Context) error {
	universityID, _ := strconv.ParseUint(c.QueryParam("university_id"), 10, 64)
	items, err := h.Reference.ListInstitutes(c.Request().Context(), universityID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "database error"})
	}
	out := make([]echo.Map, 0, len(items))
	for _, i := range items {
		out = append(out, echo.Map{
			"institute_id":   i.ID,
			"institute_name": i.Name,
			"university_id":  i.UniversityID,
		})
	}
	return c.JSON(http.StatusOK, out)
}
