package http

import (
	"net/http"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/internal/resident/service"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
)

const vehicleNotFound = "Vehicle not found"

type VehiclesHandler struct {
	VehiclesService *service.VehiclesService
}

// HandleList handles GET /vehiculos/
//
//	@Summary	List Vehicles
//	@Tags		Vehicles
//	@Produce	json
//	@Param		offset	query		int	false	"Rows to skip (alias: skip)"	default(0)
//	@Param		limit	query		int	false	"Maximum rows to return"		default(100)
//	@Success	200		{array}		residentsdk.Vehicle
//	@Failure	400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/vehiculos/ [get].
func (h *VehiclesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	vehicles, err := h.VehiclesService.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err, vehicleNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapSlice(vehicles, toVehicle))
}

// HandleGet handles GET /vehiculos/{id}
//
//	@Summary	Get Vehicle
//	@Tags		Vehicles
//	@Produce	json
//	@Param		id	path		int	true	"Vehicle ID"
//	@Success	200	{object}	residentsdk.Vehicle
//	@Failure	404	{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/vehiculos/{id} [get].
func (h *VehiclesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	v, err := h.VehiclesService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, vehicleNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toVehicle(v))
}

// HandleCreate handles POST /vehiculos/
//
//	@Summary	Create Vehicle
//	@Description	Stores the vehicle and responds 201 Created (not 200) with the assigned id.
//	@Tags		Vehicles
//	@Accept		json
//	@Produce	json
//	@Param		request	body		residentsdk.VehicleRequest	true	"Vehicle fields"
//	@Success	201		{object}	residentsdk.Vehicle
//	@Failure	400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/vehiculos/ [post].
func (h *VehiclesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req residentsdk.VehicleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	v, err := h.VehiclesService.Create(r.Context(), domain.Vehicle{
		Plate:  deref(req.Plate),
		Make:   deref(req.Make),
		Model:  deref(req.Model),
		Color:  deref(req.Color),
		UserID: req.UserID.Value,
	})
	if err != nil {
		writeServiceError(w, r, err, vehicleNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toVehicle(v))
}

// HandleUpdate handles PUT /vehiculos/{id}
//
//	@Summary	Update Vehicle
//	@Tags		Vehicles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Vehicle ID"
//	@Param		request	body		residentsdk.VehicleRequest	true	"Vehicle fields"
//	@Success	200		{object}	residentsdk.Vehicle
//	@Failure	400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Failure	404		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/vehiculos/{id} [put].
func (h *VehiclesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req residentsdk.VehicleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	v, err := h.VehiclesService.Update(r.Context(), id, domain.VehicleUpdate{
		Plate:  req.Plate,
		Make:   req.Make,
		Model:  req.Model,
		Color:  req.Color,
		UserID: optionalRef(req.UserID),
	})
	if err != nil {
		writeServiceError(w, r, err, vehicleNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toVehicle(v))
}

// HandleDelete handles DELETE /vehiculos/{id}
//
//	@Summary	Delete Vehicle
//	@Tags		Vehicles
//	@Produce	json
//	@Param		id	path		int	true	"Vehicle ID"
//	@Success	200	{object}	residentsdk.Vehicle
//	@Failure	404	{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router		/vehiculos/{id} [delete].
func (h *VehiclesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	v, err := h.VehiclesService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, vehicleNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toVehicle(v))
}
