package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/internal/resident/service"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
)

const userNotFound = "User not found"

// UsersHandler handles resident endpoints and the email login.
type UsersHandler struct {
	UsersService *service.UsersService
}

// HandleList handles GET /usuarios/
//
//	@Summary	List Users
//	@Tags		Users
//	@Produce	json
//	@Param		offset	query		int	false	"Rows to skip (alias: skip)"	default(0)
//	@Param		limit	query		int	false	"Maximum rows to return"		default(100)
//	@Success	200		{array}		residentsdk.User
//	@Failure	400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/usuarios/ [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	users, err := h.UsersService.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err, userNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapSlice(users, toUser))
}

// HandleGet handles GET /usuarios/{id}
//
//	@Summary		Get User
//	@Description	Returns the user together with the vehicles registered to them.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	residentsdk.User
//	@Failure		404	{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router			/usuarios/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.UsersService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, userNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleCreate handles POST /usuarios/
//
//	@Summary	Create User
//	@Description	Stores the user and responds 201 Created (not 200) with the assigned id.
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		residentsdk.UserRequest	true	"User fields"
//	@Success	201		{object}	residentsdk.User
//	@Failure	400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/usuarios/ [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req residentsdk.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UsersService.Create(r.Context(), domain.User{
		Name:     deref(req.Name),
		Address:  deref(req.Address),
		Phone:    deref(req.Phone),
		Email:    deref(req.Email),
		JoinDate: deref(datePtr(req.JoinDate)),
		RoleID:   req.RoleID.Value,
	})
	if err != nil {
		writeServiceError(w, r, err, userNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUser(user))
}

// HandleUpdate handles PUT /usuarios/{id}
//
//	@Summary		Update User
//	@Description	Overwrites the supplied fields; omitted fields keep their stored value. rol_id null clears the role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		residentsdk.UserRequest	true	"User fields"
//	@Success		200		{object}	residentsdk.User
//	@Failure		400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router			/usuarios/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req residentsdk.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UsersService.Update(r.Context(), id, domain.UserUpdate{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		JoinDate: datePtr(req.JoinDate),
		RoleID:   optionalRef(req.RoleID),
	})
	if err != nil {
		writeServiceError(w, r, err, userNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleDelete handles DELETE /usuarios/{id}
//
//	@Summary		Delete User
//	@Description	Removes the user and returns it. Vehicles, visitors and invitations keep their rows with the reference cleared.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	residentsdk.User
//	@Failure		404	{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router			/usuarios/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.UsersService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, userNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleLogin handles POST /login/
//
//	@Summary		Login
//	@Description	Resolves the first user registered under the email, with vehicles.
//	@Description	This is an identity lookup only: no password or token is checked.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		residentsdk.LoginRequest	true	"Email to look up"
//	@Success		200		{object}	residentsdk.User
//	@Failure		400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router			/login/ [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req residentsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeBadRequest(w, "email is required")
		return
	}

	user, err := h.UsersService.Login(r.Context(), req.Email)
	if err != nil {
		writeServiceError(w, r, err, userNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}
