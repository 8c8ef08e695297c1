package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/usecases"
	"github.com/architeacher/device-registry/internal/usecases/commands"
	"github.com/architeacher/device-registry/internal/usecases/queries"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const (
	DeviceIDParam = "id"

	brandQueryParam = "brand"
	stateQueryParam = "state"

	devicesPath = "/v1/devices"
)

type (
	CreateDeviceRequest struct {
		Name  string  `json:"name"`
		Brand string  `json:"brand"`
		State *string `json:"state,omitempty"`
	}

	// ReplaceDeviceRequest is the PUT body. Every field is required.
	ReplaceDeviceRequest struct {
		Name  string `json:"name"`
		Brand string `json:"brand"`
		State string `json:"state"`
	}

	// PatchDeviceRequest is the PATCH body. Absent fields are left untouched.
	PatchDeviceRequest struct {
		Name  *string `json:"name,omitempty"`
		Brand *string `json:"brand,omitempty"`
		State *string `json:"state,omitempty"`
	}

	DeviceResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Brand     string    `json:"brand"`
		State     string    `json:"state"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	DeviceHandler struct {
		app          *usecases.Application
		logger       logger.Logger
		maxBodyBytes int64
	}
)

func NewDeviceHandler(app *usecases.Application, log logger.Logger, maxBodyBytes int64) *DeviceHandler {
	return &DeviceHandler{
		app:          app,
		logger:       log.Component("http_handlers"),
		maxBodyBytes: maxBodyBytes,
	}
}

// ListDevices answers GET /v1/devices. A brand filter takes precedence over a
// state filter when both are given.
func (h *DeviceHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	query := queries.ListDevicesQuery{Brand: r.URL.Query().Get(brandQueryParam)}

	if raw := r.URL.Query().Get(stateQueryParam); raw != "" && query.Brand == "" {
		state, err := model.ParseState(raw)
		if err != nil {
			h.fail(w, r, err)

			return
		}

		query.State = state
	}

	devices, err := h.app.Queries.ListDevices.Execute(r.Context(), query)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceListResponse(devices))
}

func (h *DeviceHandler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req CreateDeviceRequest
	if !h.decode(w, r, &req) {
		return
	}

	cmd := commands.CreateDeviceCommand{
		Name:  req.Name,
		Brand: req.Brand,
	}

	if req.State != nil {
		state, err := model.ParseState(*req.State)
		if err != nil {
			h.fail(w, r, err)

			return
		}

		cmd.State = state
	}

	device, err := h.app.Commands.CreateDevice.Handle(r.Context(), cmd)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	w.Header().Set("Location", fmt.Sprintf("%s/%s", devicesPath, device.ID.String()))
	writeJSONResponse(w, http.StatusCreated, toDeviceResponse(device))
}

func (h *DeviceHandler) GetDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	device, err := h.app.Queries.GetDevice.Execute(r.Context(), queries.GetDeviceQuery{ID: id})
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceResponse(device))
}

// ReplaceDevice answers PUT /v1/devices/{id}.
func (h *DeviceHandler) ReplaceDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	var req ReplaceDeviceRequest
	if !h.decode(w, r, &req) {
		return
	}

	cmd := commands.UpdateDeviceCommand{
		ID:    id,
		Name:  req.Name,
		Brand: req.Brand,
	}

	if req.State != "" {
		state, err := model.ParseState(req.State)
		if err != nil {
			h.fail(w, r, err)

			return
		}

		cmd.State = state
	}

	device, err := h.app.Commands.UpdateDevice.Handle(r.Context(), cmd)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceResponse(device))
}

func (h *DeviceHandler) PatchDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	var req PatchDeviceRequest
	if !h.decode(w, r, &req) {
		return
	}

	patch := model.DevicePatch{
		Name:  req.Name,
		Brand: req.Brand,
	}

	if req.State != nil {
		state, err := model.ParseState(*req.State)
		if err != nil {
			h.fail(w, r, err)

			return
		}

		patch.State = &state
	}

	device, err := h.app.Commands.PatchDevice.Handle(r.Context(), commands.PatchDeviceCommand{ID: id, Patch: patch})
	if err != nil {
		h.fail(w, r, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceResponse(device))
}

func (h *DeviceHandler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deviceID(w, r)
	if !ok {
		return
	}

	if _, err := h.app.Commands.DeleteDevice.Handle(r.Context(), commands.DeleteDeviceCommand{ID: id}); err != nil {
		h.fail(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DeviceHandler) OptionsDevices(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "GET, POST, HEAD, OPTIONS")
	w.WriteHeader(http.StatusNoContent)
}

func (h *DeviceHandler) OptionsDevice(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "GET, PUT, PATCH, DELETE, HEAD, OPTIONS")
	w.WriteHeader(http.StatusNoContent)
}

func (h *DeviceHandler) deviceID(w http.ResponseWriter, r *http.Request) (model.DeviceID, bool) {
	id, err := model.ParseDeviceID(chi.URLParam(r, DeviceIDParam))
	if err != nil {
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidID, msgInvalidDeviceID)

		return model.DeviceID{}, false
	}

	return id, true
}

// decode reads a single JSON object, rejecting unknown fields and trailing data.
func (h *DeviceHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeErrorResponse(w, r, http.StatusRequestEntityTooLarge, codeInvalidJSON, "request body too large")

			return false
		}

		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)

		return false
	}

	if decoder.More() {
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)

		return false
	}

	return true
}

func (h *DeviceHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log := h.logger.WithContext(r.Context())

	switch {
	case errors.Is(err, model.ErrDeviceNotFound),
		errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrInvalidState),
		model.IsValidationError(err):
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("request rejected")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Str("method", r.Method).Msg("request failed")
	}

	writeDomainError(w, r, err)
}

func toDeviceResponse(device *model.Device) DeviceResponse {
	return DeviceResponse{
		ID:        device.ID.String(),
		Name:      device.Name,
		Brand:     device.Brand,
		State:     device.State.String(),
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}

func toDeviceListResponse(devices []*model.Device) []DeviceResponse {
	data := make([]DeviceResponse, 0, len(devices))
	for _, device := range devices {
		data = append(data, toDeviceResponse(device))
	}

	return data
}
