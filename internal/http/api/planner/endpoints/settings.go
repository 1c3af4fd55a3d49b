package endpoints

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Onimuxha/wexly/internal/db"
	"github.com/Onimuxha/wexly/internal/http/api"
	"github.com/Onimuxha/wexly/internal/http/api/planner/packets"
	"github.com/Onimuxha/wexly/internal/model"
)

const settingLanguage = "language"

type SettingsController struct {
	store db.Store
}

func NewSettingsController(store db.Store) *SettingsController {
	return &SettingsController{store: store}
}

func SettingsModule(store db.Store) api.Module {
	ctl := NewSettingsController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings/language", ctl.getLanguage)
		c.PUT("/settings/language", ctl.setLanguage)
	})
}

// GET /settings/language — English until the user picks otherwise.
func (s *SettingsController) getLanguage(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	value, err := s.store.GetSetting(user.ID, settingLanguage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return packets.LanguageResponse{Language: "en"}, nil
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load language"}
	}
	return packets.LanguageResponse{Language: value}, nil
}

// PUT /settings/language
func (s *SettingsController) setLanguage(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateLanguageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := s.store.SetSetting(user.ID, settingLanguage, request.Language); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to save language"}
	}
	return packets.LanguageResponse{Language: request.Language}, nil
}
