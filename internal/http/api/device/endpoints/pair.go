package endpoints

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tickworks/fuzzyclock/internal/clock"
	"github.com/tickworks/fuzzyclock/internal/db"
	"github.com/tickworks/fuzzyclock/internal/fuzzy"
	"github.com/tickworks/fuzzyclock/internal/http/api"
	"github.com/tickworks/fuzzyclock/internal/http/api/device/packets"
	"github.com/tickworks/fuzzyclock/internal/http/middleware"
	"github.com/tickworks/fuzzyclock/internal/redis"
)

type DeviceController struct {
	store db.Store
	clock clock.Clock
}

func newDeviceController(store db.Store, clk clock.Clock) *DeviceController {
	return &DeviceController{store: store, clock: clk}
}

// DeviceModule mounts the public device endpoints: pairing-code
// registration and the MQTT attach handshake.
func DeviceModule(store db.Store, clk clock.Clock) api.Module {
	ctl := newDeviceController(store, clk)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/register", ctl.registerPairingCode)
		c.PUBLIC_POST("/attach", ctl.attachDevice)
	})
}

// POST /api/device/register
// issues a short-lived pairing code the admin types into the dashboard.
func (d *DeviceController) registerPairingCode(ctx *gin.Context) (any, *api.APIError) {
	var request packets.RegisterPairingCodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	isPaired, err := d.store.IsScreenPairedByDeviceID(request.DeviceID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	if isPaired {
		log.Warn().Str("device_id", request.DeviceID).Msg("device is already paired")
		return nil, &api.APIError{Code: http.StatusConflict, Message: "device is already paired"}
	}

	code := generatePairCode()
	redis.Set(ctx, "pairing:"+code, request.DeviceID, 5*time.Minute)

	return packets.PairingCodeResponse{Code: code}, nil
}

// POST /api/device/attach
// connects a paired device to MQTT so it receives phrase updates.
func (d *DeviceController) attachDevice(ctx *gin.Context) (any, *api.APIError) {
	var request packets.AttachRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		log.Error().Err(err).Msg("error parsing request")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	screen, err := d.store.GetScreenByDeviceID(request.DeviceID)
	if err != nil {
		log.Error().Err(err).Str("device_id", request.DeviceID).Msg("device id not found")
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "unauthorized device"}
	}

	client, err := middleware.CreateMQTTClient(fmt.Sprintf("screen-%s", request.DeviceID))
	if err != nil {
		log.Error().Err(err).Str("device_id", request.DeviceID).Msg("failed to connect device to MQTT")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to connect to broker"}
	}

	topic := fmt.Sprintf("screens/%s/display", request.DeviceID)
	if token := client.Subscribe(topic, 1, nil); token.Wait() && token.Error() != nil {
		log.Error().Err(token.Error()).Str("device_id", request.DeviceID).Str("topic", topic).Msg("failed to subscribe to topic")
		client.Disconnect(250)
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to subscribe to MQTT topic"}
	}

	middleware.RegisterScreenClient(request.DeviceID, client)
	log.Info().Str("device_id", request.DeviceID).Msg("connected device to MQTT")

	// hand the device its first phrase so it doesn't render blank until
	// the next minute boundary
	loc, err := time.LoadLocation(screen.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return packets.AttachResponse{
		Timezone: screen.Timezone,
		Phrase:   fuzzy.At(d.clock.Now().In(loc)),
	}, nil
}

func generatePairCode() string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
