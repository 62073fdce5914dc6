package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aris-health/aris-backend/internal/store"
)

// CRUDHandler generates the four uniform endpoints for a catalog entity so
// that each resource does not hand-write query and response shaping logic.
// Specialized endpoints stay in the per-resource handler files.
type CRUDHandler[T any] struct {
	store *store.Store[T]
	// name appears in envelope messages ("allergen created").
	name string
	// build returns a validated new record from the request body.
	build func(c *gin.Context) (*T, error)
	// updates returns the partial-update field set from the request body.
	// Only fields present in the input are written.
	updates func(c *gin.Context) (map[string]interface{}, error)
}

func NewCRUDHandler[T any](
	s *store.Store[T],
	name string,
	build func(c *gin.Context) (*T, error),
	updates func(c *gin.Context) (map[string]interface{}, error),
) *CRUDHandler[T] {
	return &CRUDHandler[T]{
		store:   s,
		name:    name,
		build:   build,
		updates: updates,
	}
}

// Create inserts a validated record and returns its assigned identifier.
func (h *CRUDHandler[T]) Create(c *gin.Context) {
	record, err := h.build(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Create(c.Request.Context(), record); err != nil {
		respondInternal(c, err)
		return
	}

	respondCreated(c, h.name+" created", record)
}

// List returns records with optional id/limit/offset query parameters.
// Get-one and get-many share the same filter-then-paginate path.
func (h *CRUDHandler[T]) List(c *gin.Context) {
	q := store.ListQuery{ID: c.Query("id")}
	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			respondError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		q.Limit = limit
	}
	if offsetParam := c.Query("offset"); offsetParam != "" {
		offset, err := strconv.Atoi(offsetParam)
		if err != nil || offset < 0 {
			respondError(c, http.StatusBadRequest, "invalid offset")
			return
		}
		q.Offset = offset
	}

	records, err := h.store.List(c.Request.Context(), q)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, h.name+" list", records)
}

// Get fetches one record by its path identifier.
func (h *CRUDHandler[T]) Get(c *gin.Context) {
	record, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, h.name, record)
}

// Update applies a partial update to the record named by the path
// identifier; a missing record maps to 404.
func (h *CRUDHandler[T]) Update(c *gin.Context) {
	fields, err := h.updates(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(fields) == 0 {
		respondError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	outcome, err := h.store.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if outcome == store.OutcomeNotFound {
		respondError(c, http.StatusNotFound, fmt.Sprintf("%s not found", h.name))
		return
	}
	respondOK(c, h.name+" updated", nil)
}

// Delete removes the record named by the path identifier.
func (h *CRUDHandler[T]) Delete(c *gin.Context) {
	outcome, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternal(c, err)
		return
	}
	if outcome == store.OutcomeNotFound {
		respondError(c, http.StatusNotFound, fmt.Sprintf("%s not found", h.name))
		return
	}
	respondOK(c, h.name+" deleted", nil)
}
