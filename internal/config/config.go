package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	PanelURL    string `env:"PANEL_URL"` // payer lands back here after the gateway redirect
	DatabaseURL string `env:"DATABASE_URL"`

	Gateway Gateway `envPrefix:"GATEWAY_"`
	JWT     JWT     `envPrefix:"JWT_"`
}

type Gateway struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://payment.zarinpal.com"`
	MerchantID string `env:"MERCHANT_ID"`
}

type JWT struct {
	Secret string `env:"SECRET"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
