package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tickworks/fuzzyclock/internal/clock"
	"github.com/tickworks/fuzzyclock/internal/db"
	"github.com/tickworks/fuzzyclock/internal/fuzzy"
	"github.com/tickworks/fuzzyclock/internal/http/api"
	"github.com/tickworks/fuzzyclock/internal/http/api/admin/control/packets"
	"github.com/tickworks/fuzzyclock/internal/http/middleware"
	"github.com/tickworks/fuzzyclock/internal/model"
	"github.com/tickworks/fuzzyclock/internal/redis"
)

type ScreenController struct {
	store db.Store
	clock clock.Clock
}

func newScreenController(store db.Store, clk clock.Clock) *ScreenController {
	return &ScreenController{store: store, clock: clk}
}

// ScreenModule mounts all authenticated /screens endpoints.
func ScreenModule(store db.Store, clk clock.Clock) api.Module {
	ctl := newScreenController(store, clk)
	return api.ModuleFunc(func(c *api.Controller) {
		// CRUD
		c.GET("/screens", ctl.listScreens)
		c.POST("/screens", ctl.createScreen)
		c.GET("/screens/:id", ctl.getScreen)
		c.PUT("/screens/:id", ctl.updateScreen)
		c.DELETE("/screens/:id", ctl.deleteScreen)

		// what the screen is showing right now
		c.GET("/screens/:id/phrase", ctl.getScreenPhrase)

		// pairing
		c.POST("/screens/pair", ctl.pairScreen)
	})
}

func screenResponse(s model.Screen) packets.ScreenResponse {
	return packets.ScreenResponse{
		ID:        s.ID,
		DeviceID:  s.DeviceID,
		Name:      s.Name,
		Location:  s.Location,
		Timezone:  s.Timezone,
		Paired:    s.Paired,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// GET /api/admin/screens
func (t *ScreenController) listScreens(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := t.store.ListScreens()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}

	out := make([]packets.ScreenResponse, 0, len(all))
	for _, s := range all {
		if s.CreatedBy != user.ID {
			continue
		}
		out = append(out, screenResponse(s))
	}

	return out, nil
}

// POST /api/admin/screens
func (t *ScreenController) createScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	timezone := "UTC"
	if request.Timezone != nil {
		if _, err := time.LoadLocation(*request.Timezone); err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown timezone"}
		}
		timezone = *request.Timezone
	}

	screen, err := t.store.CreateScreen(request.Name, request.Location, timezone, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create screen"}
	}

	return screenResponse(screen), nil
}

// GET /api/admin/screens/:id
func (t *ScreenController) getScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	screen, apiErr := t.ownedScreen(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	return screenResponse(*screen), nil
}

// PUT /api/admin/screens/:id
func (t *ScreenController) updateScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	screen, apiErr := t.ownedScreen(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		log.Error().Err(err).Msg("failed to bind JSON body")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.Timezone != nil {
		if _, err := time.LoadLocation(*request.Timezone); err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown timezone"}
		}
	}

	if err := t.store.UpdateScreen(screen.ID, request.Name, request.Location, request.Timezone); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update screen"}
	}

	updated, err := t.store.GetScreenByID(screen.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated screen"}
	}

	return screenResponse(updated), nil
}

// DELETE /api/admin/screens/:id
func (t *ScreenController) deleteScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	screen, apiErr := t.ownedScreen(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	if screen.DeviceID != nil {
		middleware.DisconnectScreen(*screen.DeviceID)
	}

	if err := t.store.DeleteScreen(screen.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete screen"}
	}

	return gin.H{"deleted": screen.ID}, nil
}

// GET /api/admin/screens/:id/phrase
func (t *ScreenController) getScreenPhrase(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	screen, apiErr := t.ownedScreen(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	loc, err := time.LoadLocation(screen.Timezone)
	if err != nil {
		log.Error().Err(err).Str("timezone", screen.Timezone).Msg("stored timezone no longer loads")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "invalid screen timezone"}
	}

	now := t.clock.Now().In(loc)
	return packets.PhrasePreviewResponse{
		ScreenID: screen.ID,
		Timezone: screen.Timezone,
		Hour:     now.Hour(),
		Minute:   now.Minute(),
		Phrase:   fuzzy.At(now),
	}, nil
}

// POST /api/admin/screens/pair
func (t *ScreenController) pairScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.PairScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	screen, err := t.store.GetScreenByID(request.ScreenID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "screen not found"}
	}
	if screen.CreatedBy != user.ID {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}

	deviceID := redis.Get(ctx, "pairing:"+request.PairingCode)
	if deviceID == "" {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "pairing code not found or expired"}
	}

	if err := t.store.AssignDeviceIDToScreen(screen.ID, deviceID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not assign device"}
	}
	if err := t.store.PairScreen(screen.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not pair screen"}
	}

	paired, err := t.store.GetScreenByID(screen.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch paired screen"}
	}

	return screenResponse(paired), nil
}

// ownedScreen parses :id, loads the screen and checks ownership.
func (t *ScreenController) ownedScreen(ctx *gin.Context, user *model.User) (*model.Screen, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("id_raw", ctx.Param("id")).Msg("invalid id in request")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	screen, err := t.store.GetScreenByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "screen not found"}
	}
	if screen.CreatedBy != user.ID {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}
	return &screen, nil
}
