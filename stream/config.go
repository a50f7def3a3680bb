package stream

// Config selects the MQTT broker and topic frames are streamed to.
type Config struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"clientID"`
	Topic    string `yaml:"topic"`
	Qos      byte   `yaml:"qos"`
}

// Enabled reports whether a broker has been configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}
