package packets

type PairingCodeResponse struct {
	Code string `json:"code"`
}

// AttachResponse tells the device what to render until the first tick
// reaches it over MQTT.
type AttachResponse struct {
	Timezone string `json:"timezone"`
	Phrase   string `json:"phrase"`
}
