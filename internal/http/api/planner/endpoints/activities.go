package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Onimuxha/wexly/internal/db"
	"github.com/Onimuxha/wexly/internal/http/api"
	"github.com/Onimuxha/wexly/internal/http/api/planner/packets"
	"github.com/Onimuxha/wexly/internal/model"
)

type ActivityController struct {
	store db.Store
}

func NewActivityController(store db.Store) *ActivityController {
	return &ActivityController{store: store}
}

func ActivityModule(store db.Store) api.Module {
	ctl := NewActivityController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/activities", ctl.listActivities)
		c.PUT("/activities", ctl.replaceActivities)
		c.POST("/activities", ctl.createActivity)
		c.PATCH("/activities/:id", ctl.updateActivity)
		c.DELETE("/activities/:id", ctl.deleteActivity)
	})
}

// GET /activities
// An empty catalog is lazily seeded with the stock activities, mirroring
// how the app behaves for accounts that predate seeding-on-signup.
func (a *ActivityController) listActivities(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := a.store.ListActivities(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list activities"}
	}
	if len(list) > 0 {
		return list, nil
	}

	seed := make([]model.Activity, len(model.DefaultActivities))
	copy(seed, model.DefaultActivities)
	for i := range seed {
		seed[i].ID = uuid.NewString()
		seed[i].SortOrder = i
	}
	if err := a.store.ReplaceActivities(user.ID, seed); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to seed default activities"}
	}
	return seed, nil
}

// PUT /activities — replace the whole catalog; request order becomes the
// persisted sort order.
func (a *ActivityController) replaceActivities(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ReplaceActivitiesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	activities := make([]model.Activity, 0, len(request.Activities))
	for i, p := range request.Activities {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		activities = append(activities, model.Activity{
			ID:        id,
			Name:      p.Name,
			NameKh:    p.NameKh,
			Duration:  p.Duration,
			Completed: p.Completed,
			SortOrder: i,
		})
	}

	if err := a.store.ReplaceActivities(user.ID, activities); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save activities"}
	}
	return activities, nil
}

// POST /activities
func (a *ActivityController) createActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	created, err := a.store.CreateActivity(user.ID, model.Activity{
		ID:       uuid.NewString(),
		Name:     request.Name,
		NameKh:   request.NameKh,
		Duration: request.Duration,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create activity"}
	}
	return created, nil
}

// PATCH /activities/:id
func (a *ActivityController) updateActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid activity id"}
	}

	var request packets.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	updated, err := a.store.UpdateActivity(user.ID, id, request.Name, request.NameKh, request.Duration, request.Completed)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "activity not found"}
	}
	return updated, nil
}

// DELETE /activities/:id
func (a *ActivityController) deleteActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid activity id"}
	}

	if err := a.store.DeleteActivity(user.ID, id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete activity"}
	}
	return gin.H{"message": "deleted"}, nil
}
