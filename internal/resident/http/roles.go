package http

import (
	"net/http"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/internal/resident/service"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
)

const roleNotFound = "Role not found"

// RolesHandler handles all role endpoints.
type RolesHandler struct {
	RolesService *service.RolesService
}

// HandleList handles GET /roles/
//
//	@Summary		List Roles
//	@Description	Returns a page of roles in insertion order.
//	@Tags			Roles
//	@Produce		json
//	@Param			offset	query		int						false	"Rows to skip (alias: skip)"	default(0)
//	@Param			limit	query		int						false	"Maximum rows to return"		default(100)
//	@Success		200		{array}		residentsdk.Role
//	@Failure		400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router			/roles/ [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	roles, err := h.RolesService.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err, roleNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapSlice(roles, toRole))
}

// HandleGet handles GET /roles/{id}
//
//	@Summary	Get Role
//	@Tags		Roles
//	@Produce	json
//	@Param		id	path		int	true	"Role ID"
//	@Success	200	{object}	residentsdk.Role
//	@Failure	404	{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/roles/{id} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	role, err := h.RolesService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, roleNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRole(role))
}

// HandleCreate handles POST /roles/
//
//	@Summary	Create Role
//	@Description	Stores the role and responds 201 Created (not 200) with the assigned id.
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		request	body		residentsdk.RoleRequest	true	"Role fields"
//	@Success	201		{object}	residentsdk.Role
//	@Failure	400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/roles/ [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req residentsdk.RoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	role, err := h.RolesService.Create(r.Context(), domain.Role{Name: deref(req.Name)})
	if err != nil {
		writeServiceError(w, r, err, roleNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRole(role))
}

// HandleUpdate handles PUT /roles/{id}
//
//	@Summary		Update Role
//	@Description	Overwrites the supplied fields; omitted fields keep their stored value.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Role ID"
//	@Param			request	body		residentsdk.RoleRequest	true	"Role fields"
//	@Success		200		{object}	residentsdk.Role
//	@Failure		400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router			/roles/{id} [put].
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req residentsdk.RoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	role, err := h.RolesService.Update(r.Context(), id, domain.RoleUpdate{Name: req.Name})
	if err != nil {
		writeServiceError(w, r, err, roleNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRole(role))
}

// HandleDelete handles DELETE /roles/{id}
//
//	@Summary		Delete Role
//	@Description	Removes the role and returns it. Users holding the role keep their rows with rol_id cleared.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		int	true	"Role ID"
//	@Success		200	{object}	residentsdk.Role
//	@Failure		404	{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router			/roles/{id} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	role, err := h.RolesService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, roleNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRole(role))
}
