package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mindnotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/mindnotes/internal/app"
	"github.com/jsamuelsen/mindnotes/internal/domain"
)

// NoteHandler serves the note collection.
type NoteHandler struct {
	service *app.NoteService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(service *app.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// ListNotes handles GET /api/v1/notes.
// With q set it returns the matching notes; every note keeps its number in
// the full collection so it can be passed to DELETE.
//
// @Summary List or search notes
// @Tags notes
// @Produce json
// @Param q query string false "Keyword, matched case-insensitively against note text"
// @Param limit query int false "Page size (1-100)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} dto.PaginatedResponse[dto.NoteResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	var req dto.ListNotesRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	ctx := c.Request.Context()

	var (
		notes []domain.NumberedNote
		err   error
	)

	if req.Q != "" {
		notes, err = h.service.Search(ctx, req.Q)
	} else {
		notes, err = h.service.ListNotes(ctx)
	}

	if err != nil {
		dto.WriteError(c, err)
		return
	}

	page, err := dto.Paginate(dto.NewNoteResponses(notes), &req.PaginationRequest,
		func(n dto.NoteResponse) int { return n.Number })
	if err != nil {
		dto.WriteCode(c, dto.ErrorCodeBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, page)
}

// AddNote handles POST /api/v1/notes.
//
// @Summary Add a note
// @Tags notes
// @Accept json
// @Produce json
// @Param body body dto.NoteRequest true "Note text and mood"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/notes [post]
func (h *NoteHandler) AddNote(c *gin.Context) {
	var req dto.NoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	mood, err := domain.ParseMood(req.Mood)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	note, err := h.service.AddNote(c.Request.Context(), app.AddNoteInput{Text: req.Text, Mood: mood})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewNoteResponse(note))
}

// DeleteNote handles DELETE /api/v1/notes/:number. The request is the
// confirmation; the note is removed only if it still sits at that number.
//
// @Summary Delete a note by number
// @Tags notes
// @Produce json
// @Param number path int true "1-based note number"
// @Success 200 {object} dto.DeletedNoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/notes/{number} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	raw := c.Param("number")

	number, err := strconv.Atoi(raw)
	if err != nil {
		dto.WriteError(c, domain.InvalidValue("number", "must be an integer", raw))
		return
	}

	note, err := h.service.DeleteNumber(c.Request.Context(), number)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedNoteResponse{
		Deleted: dto.NewNoteResponse(domain.NumberedNote{Number: number, Note: note}),
	})
}

// RegisterNoteRoutes registers note routes on the given router group.
func (h *NoteHandler) RegisterNoteRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/notes")
	notes.GET("", h.ListNotes)
	notes.POST("", h.AddNote)
	notes.DELETE("/:number", h.DeleteNote)
}
