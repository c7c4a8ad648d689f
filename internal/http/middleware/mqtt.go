package middleware

import (
	"fmt"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

var (
	screenClients = make(map[string]mqtt.Client)
	clientMutex   sync.RWMutex
	mqttClient    mqtt.Client
	brokerURL     = "tcp://0.0.0.0:1883" // Default MQTT broker URL
)

// MQTT message handler for display devices
var messagePubHandler mqtt.MessageHandler = func(client mqtt.Client, msg mqtt.Message) {
	log.Info().Str("topic", msg.Topic()).Bytes("payload", msg.Payload()).Msg("received message")
}

// MQTT connection handler
var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

// MQTT connection lost handler
var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// SetBrokerURL allows configuration of the MQTT broker URL
func SetBrokerURL(url string) {
	brokerURL = url
}

// InitMQTT connects the service's own client to the broker.
func InitMQTT() error {
	client, err := CreateMQTTClient("fuzzyclock-server")
	if err != nil {
		return err
	}
	mqttClient = client
	return nil
}

// CreateMQTTClient connects a new client to the configured broker.
func CreateMQTTClient(clientName string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientName)
	opts.SetDefaultPublishHandler(messagePubHandler)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}

	return client, nil
}

// RegisterScreenClient records a connected device so phrase updates reach it.
func RegisterScreenClient(deviceID string, client mqtt.Client) {
	clientMutex.Lock()
	screenClients[deviceID] = client
	clientMutex.Unlock()
}

// displayTopic is where a device listens for its phrase updates.
func displayTopic(deviceID string) string {
	return fmt.Sprintf("screens/%s/display", deviceID)
}

// SendMessageToScreen sends a message to a specific screen via MQTT
func SendMessageToScreen(deviceID string, message []byte) error {
	clientMutex.RLock()
	client, exists := screenClients[deviceID]
	clientMutex.RUnlock()
	if !exists {
		return fmt.Errorf("screen %s not connected", deviceID)
	}
	token := client.Publish(displayTopic(deviceID), 1, false, message)
	token.Wait()

	if token.Error() != nil {
		return fmt.Errorf("failed to send message to screen %s: %v", deviceID, token.Error())
	}

	return nil
}

// SendMessageToAllScreens sends a message to all connected screens
func SendMessageToAllScreens(message []byte) error {
	clientMutex.RLock()
	defer clientMutex.RUnlock()

	var errors []string
	for deviceID, client := range screenClients {
		token := client.Publish(displayTopic(deviceID), 1, false, message)
		token.Wait()

		if token.Error() != nil {
			errors = append(errors, fmt.Sprintf("device %s: %v", deviceID, token.Error()))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to send messages to some devices: %v", errors)
	}

	log.Info().Int("devices", len(screenClients)).Msg("phrase update sent to all connected screens")
	return nil
}

// DisconnectScreen disconnects a specific display device
func DisconnectScreen(deviceID string) {
	clientMutex.Lock()
	defer clientMutex.Unlock()

	if client, exists := screenClients[deviceID]; exists {
		client.Disconnect(250)
		delete(screenClients, deviceID)
		log.Info().Str("device_id", deviceID).Msg("screen disconnected from MQTT")
	}
}

// ConnectedScreens returns a list of connected device IDs
func ConnectedScreens() []string {
	clientMutex.RLock()
	defer clientMutex.RUnlock()

	devices := make([]string, 0, len(screenClients))
	for deviceID := range screenClients {
		devices = append(devices, deviceID)
	}
	return devices
}

// CleanupMQTT disconnects all clients and the main MQTT client
func CleanupMQTT() {
	clientMutex.Lock()
	defer clientMutex.Unlock()

	for deviceID, client := range screenClients {
		client.Disconnect(250)
		log.Info().Str("device_id", deviceID).Msg("disconnected screen")
	}
	screenClients = make(map[string]mqtt.Client)

	if mqttClient != nil {
		mqttClient.Disconnect(250)
		log.Info().Msg("main MQTT client disconnected")
	}
}
