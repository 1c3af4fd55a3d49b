package reminder

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// MQTTDispatcher publishes fired reminders to a per-user topic so any
// subscribed client (web push worker, companion app) can surface them.
type MQTTDispatcher struct {
	client mqtt.Client
}

func NewMQTTDispatcher(brokerURL, clientID string) (*MQTTDispatcher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
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
	return &MQTTDispatcher{client: client}, nil
}

func (d *MQTTDispatcher) Dispatch(userID int, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	topic := fmt.Sprintf("planner/%d/reminders", userID)
	token := d.client.Publish(topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish reminder to %s: %w", topic, token.Error())
	}
	return nil
}

func (d *MQTTDispatcher) Close() {
	d.client.Disconnect(250)
}

// LogDispatcher stands in when no broker is configured.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(userID int, n Notification) error {
	log.Info().Int("user_id", userID).Str("title", n.Title).Str("body", n.Body).Msg("reminder fired")
	return nil
}
