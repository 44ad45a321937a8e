package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foratask/foratask-backend-go/internal/domain/organization"
	"github.com/foratask/foratask-backend-go/internal/handler/http/response"
)

type OrganizationHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	AddLocation(w http.ResponseWriter, r *http.Request)
	UpdateLocation(w http.ResponseWriter, r *http.Request)
	DeleteLocation(w http.ResponseWriter, r *http.Request)
	UpcomingHolidays(w http.ResponseWriter, r *http.Request)
	AddHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type organizationHandlerImpl struct {
	settingsService organization.SettingsService
}

func NewOrganizationHandler(settingsService organization.SettingsService) OrganizationHandler {
	return &organizationHandlerImpl{
		settingsService: settingsService,
	}
}

// GetSettings implements OrganizationHandler.
func (h *organizationHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSettings implements OrganizationHandler.
func (h *organizationHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req organization.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settingsService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", result)
}

// AddLocation implements OrganizationHandler.
func (h *organizationHandlerImpl) AddLocation(w http.ResponseWriter, r *http.Request) {
	var req organization.OfficeLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settingsService.AddOfficeLocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office location added", result)
}

// UpdateLocation implements OrganizationHandler.
func (h *organizationHandlerImpl) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req organization.OfficeLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settingsService.UpdateOfficeLocation(r.Context(), chi.URLParam(r, "locationId"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office location updated", result)
}

// DeleteLocation implements OrganizationHandler.
func (h *organizationHandlerImpl) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.settingsService.DeleteOfficeLocation(r.Context(), chi.URLParam(r, "locationId")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office location deleted", nil)
}

// UpcomingHolidays implements OrganizationHandler.
func (h *organizationHandlerImpl) UpcomingHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetUpcomingHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddHoliday implements OrganizationHandler.
func (h *organizationHandlerImpl) AddHoliday(w http.ResponseWriter, r *http.Request) {
	var req organization.HolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settingsService.AddHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday added", result)
}

// DeleteHoliday implements OrganizationHandler.
func (h *organizationHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.settingsService.DeleteHoliday(r.Context(), chi.URLParam(r, "holidayId")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
