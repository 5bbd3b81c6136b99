package http

import (
	"encoding/json"
	"net/http"

	"github.com/bntng-project/esensi-backend/internal/domain/setting"
	"github.com/bntng-project/esensi-backend/internal/handler/http/response"
	settingservice "github.com/bntng-project/esensi-backend/internal/service/setting"
)

type SettingHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService *settingservice.SettingServiceImpl
}

func NewSettingHandler(settingService *settingservice.SettingServiceImpl) SettingHandler {
	return &settingHandlerImpl{settingService: settingService}
}

// Get implements SettingHandler.
func (h *settingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SettingHandler.
func (h *settingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated successfully", result)
}
