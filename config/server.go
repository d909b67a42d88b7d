package config

const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

type ServerConfig struct {
	Host      string `env:"HOST"`
	Port      int    `env:"PORT"`
	Transport string `env:"MCP_TRANSPORT"`
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:      "localhost",
		Port:      3000,
		Transport: TransportStdio,
	}
}
