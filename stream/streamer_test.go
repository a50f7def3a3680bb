package stream

import (
	"encoding/binary"
	"errors"
	"math/rand"
	"testing"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/flipbook/scene"
)

type fakeToken struct {
	mqtt.Token
	err error
}

func (t *fakeToken) Wait() bool   { return true }
func (t *fakeToken) Error() error { return t.err }

type fakeClient struct {
	mqtt.Client
	topic   string
	qos     byte
	payload []byte
	err     error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.topic = topic
	c.qos = qos
	c.payload, _ = payload.([]byte)
	return &fakeToken{err: c.err}
}

func testScene() *scene.Scene {
	cfg := scene.PageConfig{XResolution: 2, YResolution: 2, Width: 1, Thickness: 0.01}
	return scene.Compose(cfg, scene.V3(0, 0, 0), rand.New(rand.NewSource(9)))
}

func TestStreamerPublishesFrame(t *testing.T) {
	client := new(fakeClient)
	s := NewStreamer(Config{Topic: "desk/frames", Qos: 1}, client)
	if err := s.Submit(testScene()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if client.topic != "desk/frames" || client.qos != 1 {
		t.Fatalf("published to %q qos %d", client.topic, client.qos)
	}
	if n := binary.LittleEndian.Uint16(client.payload); n != 8 {
		t.Fatalf("frame count %d, want 8", n)
	}
}

func TestStreamerDefaultTopic(t *testing.T) {
	client := new(fakeClient)
	s := NewStreamer(Config{}, client)
	if err := s.Submit(testScene()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if client.topic != "flipbook/frames" {
		t.Fatalf("topic %q", client.topic)
	}
}

func TestStreamerPublishError(t *testing.T) {
	client := &fakeClient{err: errors.New("not connected")}
	s := NewStreamer(Config{}, client)
	if err := s.Submit(testScene()); err == nil {
		t.Fatalf("expected publish error")
	}
}
