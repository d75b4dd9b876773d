// Package mqtt pushes refresh commands to player devices so a schedule
// change shows up immediately instead of on the next poll cycle. Players
// subscribe to their own command topic; the backend only publishes.
package mqtt

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

type Notifier struct {
	client mqtt.Client
}

type command struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

// Connect dials the broker. The notifier is optional infrastructure: the
// caller may run without one, in which case players rely on polling alone.
func Connect(brokerURL, clientID string) (*Notifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Error().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &Notifier{client: client}, nil
}

// NotifyRefresh tells each device to re-poll its current layout now.
// Delivery is best effort; a device that misses the message still picks up
// the change on its next poll.
func (n *Notifier) NotifyRefresh(deviceIDs []string, reason string) {
	if n == nil {
		return
	}
	payload, _ := json.Marshal(command{Action: "refresh", Reason: reason})
	for _, deviceID := range deviceIDs {
		topic := fmt.Sprintf("players/%s/commands", deviceID)
		token := n.client.Publish(topic, 1, false, payload)
		token.Wait()
		if err := token.Error(); err != nil {
			log.Error().Err(err).Str("device_id", deviceID).Msg("failed to publish refresh")
		}
	}
}

func (n *Notifier) Close() {
	if n == nil {
		return
	}
	n.client.Disconnect(250)
}
