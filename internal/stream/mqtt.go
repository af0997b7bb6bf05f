package stream

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Options configures the broker connection.
type Options struct {
	URL      string
	ClientID string
	Username string
	Password string
	QoS      byte
	Timeout  time.Duration
}

// MQTTPublisher publishes over a paho client.
type MQTTPublisher struct {
	client  mqtt.Client
	qos     byte
	timeout time.Duration
}

// Connect dials the broker and waits for the connection.
func Connect(o Options) (*MQTTPublisher, error) {
	if o.ClientID == "" {
		o.ClientID = "keyframe"
	}
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}
	if o.QoS > 2 {
		return nil, fmt.Errorf("invalid qos %d", o.QoS)
	}

	options := mqtt.NewClientOptions().
		AddBroker(o.URL).
		SetClientID(o.ClientID).
		SetUsername(o.Username).
		SetPassword(o.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	client := mqtt.NewClient(options)

	token := client.Connect()
	if !token.WaitTimeout(o.Timeout) {
		return nil, fmt.Errorf("connect to %s: timed out after %s", o.URL, o.Timeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", o.URL, err)
	}

	return NewMQTTPublisher(client, o.QoS, o.Timeout), nil
}

// NewMQTTPublisher wraps an already configured client.
func NewMQTTPublisher(client mqtt.Client, qos byte, timeout time.Duration) *MQTTPublisher {
	return &MQTTPublisher{client: client, qos: qos, timeout: timeout}
}

func (p *MQTTPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, p.qos, false, payload)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("publish timed out after %s", p.timeout)
	}
	return token.Error()
}

// Close disconnects, allowing in-flight messages 250ms to drain.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
