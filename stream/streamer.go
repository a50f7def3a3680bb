package stream

import (
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/flipbook/scene"
)

// Streamer publishes each rendered frame over MQTT.
type Streamer struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = config.Topic
	if s.topic == "" {
		s.topic = "flipbook/frames"
	}
	s.qos = config.Qos
	return s
}

// Submit sends the current state of the scene as one binary frame.
func (s *Streamer) Submit(sc *scene.Scene) error {
	b, err := NewFrame(sc).MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish frame: %w", err)
	}
	return nil
}

// Close disconnects from the broker.
func (s *Streamer) Close() {
	s.client.Disconnect(250)
}

// Connect creates a client for the configured broker and waits for the connection.
func Connect(config Config) (mqtt.Client, error) {
	clientID := config.ClientID
	if clientID == "" {
		clientID = "flipbook"
	}

	options := mqtt.NewClientOptions().
		AddBroker(config.URL).
		SetClientID(clientID).
		SetUsername(config.Username).
		SetPassword(config.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			log.Println("Connected")
		})
	client := mqtt.NewClient(options)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to %s: %w", config.URL, token.Error())
	}
	return client, nil
}
