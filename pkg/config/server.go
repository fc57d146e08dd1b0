package config

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"
)

type ServerConfig struct {
	Port     string
	LogLevel string
	Codec    CodecConfig
}

func (c *ServerConfig) PopulateUnsetConfigVars() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.Codec.PopulateUnsetConfigVars()
}
