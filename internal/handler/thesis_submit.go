package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gtsarchive/gts-backend/internal/model"
	"github.com/gtsarchive/gts-backend/internal/queue"
	"github.com/gtsarchive/gts-backend/internal/repository"
	"github.com/gtsarchive/gts-backend/internal/service/queue_publisher"
)

// ThesisHandler groups the repositories used to submit, edit and list
// theses. Submission and edit run their multi-statement write sequences
// inside a single transaction; on any failure nothing is persisted.
type ThesisHandler struct {
	DB        *sql.DB
	Users     *repository.UserRepo
	Authors   *repository.AuthorRepo
	Reference *repository.ReferenceRepo
	Theses    *repository.ThesisRepo
}

func NewThesisHandler(db *sql.DB, users *repository.UserRepo, authors *repository.AuthorRepo, ref *repository.ReferenceRepo, theses *repository.ThesisRepo) *ThesisHandler {
	if db == nil || users == nil || authors == nil || ref == nil || theses == nil {
		panic("nil dependency passed to NewThesisHandler")
	}
	return &ThesisHandler{DB: db, Users: users, Authors: authors, Reference: ref, Theses: theses}
}

// thesisReq is the submission/edit payload. Year and page count arrive as
// numbers from newer clients and as text-input strings from older ones, so
// they are coerced after binding.
type thesisReq struct {
	Title          string `json:"title"`
	Abstract       string `json:"abstract"`
	Year           any    `json:"year"`
	PageCount      any    `json:"page_count"`
	Type           string `json:"type"`
	Language       string `json:"language"`
	Keywords       string `json:"keywords"` // comma separated free text
	AuthorID       uint64 `json:"author_id"`
	UniversityID   uint64 `json:"university_id"`
	InstituteID    uint64 `json:"institute_id"`
	SupervisorID   uint64 `json:"supervisor_id"`
	CosupervisorID uint64 `json:"cosupervisor_id"`
}

// validateThesisReq enforces the required-field and cross-field invariants
// at the server boundary, before any transaction work: title, abstract,
// supervisor, institute and university must be present, and a co-supervisor
// must differ from the supervisor. It returns a human-readable reason or ""
// when the payload is acceptable.
func validateThesisReq(req thesisReq) string {
	if strings.TrimSpace(req.Title) == "" {
		return "title is required"
	}
	if strings.TrimSpace(req.Abstract) == "" {
		return "abstract is required"
	}
	if req.SupervisorID == 0 {
		return "supervisor_id is required"
	}
	if req.InstituteID == 0 {
		return "institute_id is required"
	}
	if req.UniversityID == 0 {
		return "university_id is required"
	}
	if req.CosupervisorID != 0 && req.CosupervisorID == req.SupervisorID {
		return "supervisor and co-supervisor must differ"
	}
	return ""
}

// Submit handles POST /api/theses. Inside one transaction it resolves the
// submitting author (explicit author_id, or the caller's account email),
// resolves the language, allocates the thesis number from the sequence,
// inserts the thesis row and fans out the keyword rows. Any failure rolls
// everything back; the thesis.submitted event is published only after
// commit.
func (h *ThesisHandler) Submit(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
	}
	var req thesisReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}
	if reason := validateThesisReq(req); reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": reason})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Resolve the submitting author. An explicit author_id is trusted only
	// after an existence check; otherwise the caller's account supplies the
	// email the profile is keyed on.
	var authorID uint64
	var authorName string
	if req.AuthorID != 0 {
		ok, err := h.Authors.ExistsTx(ctx, tx, req.AuthorID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "submission failed"})
		}
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "submission failed"})
		}
		authorID = req.AuthorID
	} else {
		u, err := h.Users.GetByIDTx(ctx, tx, userID)
		if err != nil {
			// Missing account row is a hard precondition failure: abort
			// the whole transaction rather than inventing an identity.
			if err == sql.ErrNoRows {
				return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "submission failed"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "submission failed"})
		}
		authorID, err = h.Authors.ResolveByEmailTx(ctx, tx, u.FullName, u.Email, req.UniversityID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "submission failed"})
		}
		authorName = u.FullName
	}

	langID, err := h.Reference.ResolveLanguageTx(ctx, tx, req.Language)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "submission failed"})
	}

	thesisNo, err := h.Theses.NextThesisNoTx(ctx, tx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "submission failed"})
	}

	t := model.Thesis{
		ThesisNo:     thesisNo,
		Title:        strings.TrimSpace(req.Title),
		Abstract:     strings.TrimSpace(req.Abstract),
		Year:         coerceInt(req.Year),
		PageCount:    coerceInt(req.PageCount),
		Type:         req.Type,
		AuthorID:     authorID,
		LanguageID:   langID,
		InstituteID:  req.InstituteID,
		SupervisorID: req.SupervisorID,
	}
	if req.CosupervisorID != 0 {
		cid := req.CosupervisorID
		t.CosupervisorID = &cid
	}
	if err := h.Theses.CreateTx(ctx, tx, &t); err != nil {
		// Constraint violations (dangling supervisor/institute ids) land
		// here; the cause is not distinguished, the rollback is.
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "submission failed"})
	}

	words := SplitKeywords(req.Keywords)
	if err := h.Theses.CreateKeywordsBulkTx(ctx, tx, thesisNo, words); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "submission failed"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "failed to commit transaction"})
	}
	committed = true

	// Fire-and-forget after commit; a broker outage never fails the
	// submission.
	go func() {
		_ = queue_publisher.PublishThesisSubmitted(context.Background(), queue.ThesisSubmittedEvent{
			ThesisNo:       t.ThesisNo,
			Title:          t.Title,
			Year:           t.Year,
			Type:           t.Type,
			AuthorID:       t.AuthorID,
			AuthorName:     authorName,
			SupervisorID:   t.SupervisorID,
			InstituteID:    t.InstituteID,
			Keywords:       words,
			SubmittedAt:    t.SubmissionDate.UTC().Format(time.RFC3339),
			SubmittedByUID: userID,
		})
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"success":   true,
		"message":   "Thesis Saved Successfully",
		"thesis_no": t.ThesisNo,
	})
}

// Update handles PUT /api/theses/:thesis_no. It rewrites the thesis fields
// and replaces the keyword set in one transaction. Authors may edit only
// their own theses; professors may edit any.
func (h *ThesisHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
	}
	thesisNo, err := strconv.ParseUint(c.Param("thesis_no"), 10, 64)
	if err != nil || thesisNo == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid thesis_no"})
	}
	var req thesisReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}
	if reason := validateThesisReq(req); reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": reason})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	ownerEmail, err := h.Theses.OwnerEmailTx(ctx, tx, thesisNo)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "thesis not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "update failed"})
	}
	if role, _ := c.Get("role").(string); role != model.RoleProfessor {
		u, err := h.Users.GetByIDTx(ctx, tx, userID)
		if err != nil || !strings.EqualFold(u.Email, ownerEmail) {
			return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "forbidden"})
		}
	}

	langID, err := h.Reference.ResolveLanguageTx(ctx, tx, req.Language)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "update failed"})
	}

	t := model.Thesis{
		ThesisNo:     thesisNo,
		Title:        strings.TrimSpace(req.Title),
		Abstract:     strings.TrimSpace(req.Abstract),
		Year:         coerceInt(req.Year),
		PageCount:    coerceInt(req.PageCount),
		Type:         req.Type,
		LanguageID:   langID,
		InstituteID:  req.InstituteID,
		SupervisorID: req.SupervisorID,
	}
	if req.CosupervisorID != 0 {
		cid := req.CosupervisorID
		t.CosupervisorID = &cid
	}
	if err := h.Theses.UpdateTx(ctx, tx, &t); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "thesis not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "update failed"})
	}

	if err := h.Theses.ReplaceKeywordsTx(ctx, tx, thesisNo, SplitKeywords(req.Keywords)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "update failed"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "failed to commit transaction"})
	}
	committed = true

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Thesis Updated Successfully",
	})
}
