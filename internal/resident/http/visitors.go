package http

import (
	"net/http"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/internal/resident/service"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
)

const visitorNotFound = "Visitor not found"

type VisitorsHandler struct {
	VisitorsService *service.VisitorsService
}

// HandleList handles GET /visitantes/
//
//	@Summary	List Visitors
//	@Tags		Visitors
//	@Produce	json
//	@Param		offset	query		int	false	"Rows to skip (alias: skip)"	default(0)
//	@Param		limit	query		int	false	"Maximum rows to return"		default(100)
//	@Success	200		{array}		residentsdk.Visitor
//	@Failure	400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/visitantes/ [get].
func (h *VisitorsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	visitors, err := h.VisitorsService.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err, visitorNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapSlice(visitors, toVisitor))
}

// HandleGet handles GET /visitantes/{id}
//
//	@Summary	Get Visitor
//	@Tags		Visitors
//	@Produce	json
//	@Param		id	path		int	true	"Visitor ID"
//	@Success	200	{object}	residentsdk.Visitor
//	@Failure	404	{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/visitantes/{id} [get].
func (h *VisitorsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	v, err := h.VisitorsService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, visitorNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toVisitor(v))
}

// HandleCreate handles POST /visitantes/
//
//	@Summary	Create Visitor
//	@Description	Stores the visitor and responds 201 Created (not 200) with the assigned id.
//	@Tags		Visitors
//	@Accept		json
//	@Produce	json
//	@Param		request	body		residentsdk.VisitorRequest	true	"Visitor fields"
//	@Success	201		{object}	residentsdk.Visitor
//	@Failure	400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/visitantes/ [post].
func (h *VisitorsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req residentsdk.VisitorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	v, err := h.VisitorsService.Create(r.Context(), domain.Visitor{
		Name:      deref(req.Name),
		VisitDate: deref(datePtr(req.VisitDate)),
		UserID:    req.UserID.Value,
	})
	if err != nil {
		writeServiceError(w, r, err, visitorNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toVisitor(v))
}

// HandleUpdate handles PUT /visitantes/{id}
//
//	@Summary	Update Visitor
//	@Tags		Visitors
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Visitor ID"
//	@Param		request	body		residentsdk.VisitorRequest	true	"Visitor fields"
//	@Success	200		{object}	residentsdk.Visitor
//	@Failure	400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Failure	404		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/visitantes/{id} [put].
func (h *VisitorsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req residentsdk.VisitorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	v, err := h.VisitorsService.Update(r.Context(), id, domain.VisitorUpdate{
		Name:      req.Name,
		VisitDate: datePtr(req.VisitDate),
		UserID:    optionalRef(req.UserID),
	})
	if err != nil {
		writeServiceError(w, r, err, visitorNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toVisitor(v))
}

// HandleDelete handles DELETE /visitantes/{id}
//
//	@Summary	Delete Visitor
//	@Tags		Visitors
//	@Produce	json
//	@Param		id	path		int	true	"Visitor ID"
//	@Success	200	{object}	residentsdk.Visitor
//	@Failure	404	{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/visitantes/{id} [delete].
func (h *VisitorsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	v, err := h.VisitorsService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, visitorNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toVisitor(v))
}
