package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tickworks/fuzzyclock/internal/clock"
	"github.com/tickworks/fuzzyclock/internal/fuzzy"
	"github.com/tickworks/fuzzyclock/internal/http/api"
	"github.com/tickworks/fuzzyclock/internal/http/api/clock/packets"
	"github.com/tickworks/fuzzyclock/internal/redis"
)

type ClockController struct {
	clock clock.Clock
}

func newClockController(clk clock.Clock) *ClockController {
	return &ClockController{clock: clk}
}

// ClockModule mounts the public phrase endpoints.
func ClockModule(clk clock.Clock) api.Module {
	ctl := newClockController(clk)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/phrase", ctl.getPhrase)
		c.PUBLIC_GET("/now", ctl.getNow)
	})
}

// GET /api/clock/phrase?hour=H&minute=M
func (cc *ClockController) getPhrase(ctx *gin.Context) (any, *api.APIError) {
	var query packets.PhraseQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	return packets.PhraseResponse{
		Hour:   *query.Hour,
		Minute: *query.Minute,
		Phrase: fuzzy.Phrase(*query.Hour, *query.Minute),
	}, nil
}

// GET /api/clock/now?timezone=Z
func (cc *ClockController) getNow(ctx *gin.Context) (any, *api.APIError) {
	var query packets.NowQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	timezone := query.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown timezone"}
	}

	now := cc.clock.Now().In(loc)

	phrase := ""
	if redis.Rdb != nil {
		phrase = redis.Get(ctx, redis.PhraseKey(timezone))
	}
	if phrase == "" {
		phrase = fuzzy.At(now)
	}

	return packets.NowResponse{
		Timezone: timezone,
		Hour:     now.Hour(),
		Minute:   now.Minute(),
		Phrase:   phrase,
	}, nil
}
