// Package ticker drives the once-per-minute redraw: on every minute
// boundary it renders the phrase for each screen timezone, refreshes the
// Redis cache, and pushes the update to connected devices over MQTT.
package ticker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tickworks/fuzzyclock/internal/clock"
	"github.com/tickworks/fuzzyclock/internal/fuzzy"
	"github.com/tickworks/fuzzyclock/internal/model"
	"github.com/tickworks/fuzzyclock/internal/redis"
)

// ScreenSource is the slice of db.Store the ticker needs.
type ScreenSource interface {
	ListScreens() ([]model.Screen, error)
	ListScreenTimezones() ([]string, error)
}

// Publisher delivers a rendered update to one device.
type Publisher interface {
	SendToScreen(deviceID string, message []byte) error
}

// PublisherFunc adapts a plain function (e.g. the MQTT send helper) to
// Publisher.
type PublisherFunc func(deviceID string, message []byte) error

func (f PublisherFunc) SendToScreen(deviceID string, message []byte) error {
	return f(deviceID, message)
}

// PhraseUpdate is the wire payload a screen receives on its display topic.
type PhraseUpdate struct {
	Type     string `json:"type"`
	Timezone string `json:"timezone"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Phrase   string `json:"phrase"`
}

type Ticker struct {
	screens  ScreenSource
	pub      Publisher
	clock    clock.Clock
	interval time.Duration
}

func New(screens ScreenSource, pub Publisher, clk clock.Clock, interval time.Duration) *Ticker {
	return &Ticker{screens: screens, pub: pub, clock: clk, interval: interval}
}

// Start runs the tick loop until ctx is cancelled.
func (t *Ticker) Start(ctx context.Context) {
	go t.run(ctx)
}

func (t *Ticker) run(ctx context.Context) {
	for {
		delay := nextTickDelay(t.clock.Now(), t.interval)
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
			t.tick(ctx)
		}
	}
}

// nextTickDelay aligns firing to interval boundaries so updates land
// exactly when the minute flips, not interval-after-startup.
func nextTickDelay(now time.Time, interval time.Duration) time.Duration {
	rate := interval.Milliseconds()
	return time.Duration(rate-now.UnixMilli()%rate) * time.Millisecond
}

// tick renders every zone once, caches the results, and fans the updates
// out to paired devices.
func (t *Ticker) tick(ctx context.Context) {
	now := t.clock.Now()

	zones, err := t.screens.ListScreenTimezones()
	if err != nil {
		log.Error().Err(err).Msg("tick: could not list screen timezones")
		return
	}

	updates := make(map[string][]byte, len(zones))
	for _, zone := range zones {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			log.Error().Err(err).Str("timezone", zone).Msg("tick: skipping unloadable timezone")
			continue
		}
		local := now.In(loc)
		phrase := fuzzy.At(local)

		if redis.Rdb != nil {
			// TTL slightly over one tick so readers never catch a gap
			redis.Set(ctx, redis.PhraseKey(zone), phrase, t.interval+10*time.Second)
		}

		payload, err := json.Marshal(PhraseUpdate{
			Type:     "phrase_update",
			Timezone: zone,
			Hour:     local.Hour(),
			Minute:   local.Minute(),
			Phrase:   phrase,
		})
		if err != nil {
			log.Error().Err(err).Str("timezone", zone).Msg("tick: could not marshal update")
			continue
		}
		updates[zone] = payload
	}

	screens, err := t.screens.ListScreens()
	if err != nil {
		log.Error().Err(err).Msg("tick: could not list screens")
		return
	}

	for _, s := range screens {
		if s.DeviceID == nil || !s.Paired {
			continue
		}
		payload, ok := updates[s.Timezone]
		if !ok {
			continue
		}
		if err := t.pub.SendToScreen(*s.DeviceID, payload); err != nil {
			// devices drop off without unpairing; next tick retries
			log.Warn().Err(err).Str("device_id", *s.DeviceID).Msg("tick: could not push update")
		}
	}
}
