package gateway

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidBackendURL = errors.New("gateway: backend url is invalid")

// Config declares where the gateway listens and which backend serves
// each /api/* prefix.
type Config struct {
	ServerPort string
	Services   Services
}

// Services holds the root URL of each backend service.
type Services struct {
	Auth       *url.URL
	Pizza      *url.URL
	Orders     *url.URL
	Payments   *url.URL
	Deliveries *url.URL
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	raw := struct {
		Port     string `yaml:"port"`
		Services struct {
			Auth       string `yaml:"auth"`
			Pizza      string `yaml:"pizza"`
			Orders     string `yaml:"orders"`
			Payments   string `yaml:"payments"`
			Deliveries string `yaml:"deliveries"`
		} `yaml:"services"`
	}{}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	if raw.Port == "" {
		raw.Port = "8080"
	}

	svc := Services{}
	for _, b := range []struct {
		name string
		raw  string
		dest **url.URL
	}{
		{"auth", raw.Services.Auth, &svc.Auth},
		{"pizza", raw.Services.Pizza, &svc.Pizza},
		{"orders", raw.Services.Orders, &svc.Orders},
		{"payments", raw.Services.Payments, &svc.Payments},
		{"deliveries", raw.Services.Deliveries, &svc.Deliveries},
	} {
		u, err := url.Parse(b.raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidBackendURL, b.name, err)
		}
		if !u.IsAbs() {
			return fmt.Errorf("%w: %s: not absolute: %s", ErrInvalidBackendURL, b.name, b.raw)
		}
		if u.Hostname() == "" {
			return fmt.Errorf("%w: %s: no hostname: %s", ErrInvalidBackendURL, b.name, b.raw)
		}
		*b.dest = u
	}

	c.ServerPort = raw.Port
	c.Services = svc
	return nil
}

// Backend pairs a path prefix under the gateway with the backend root
// receiving requests for that prefix.
type Backend struct {
	// Prefix is the gateway-side path prefix, e.g. /api/auth.
	Prefix string

	// ProxyTo is the root URL of the backend. The sub-path after Prefix
	// is appended to it.
	ProxyTo *url.URL
}

// Backends enumerates the /api/* prefixes and their backends.
func (c Config) Backends() []Backend {
	return []Backend{
		{Prefix: "/api/auth", ProxyTo: c.Services.Auth},
		{Prefix: "/api/pizza", ProxyTo: c.Services.Pizza},
		{Prefix: "/api/orders", ProxyTo: c.Services.Orders},
		{Prefix: "/api/payments", ProxyTo: c.Services.Payments},
		{Prefix: "/api/deliveries", ProxyTo: c.Services.Deliveries},
	}
}

// Load reads and validates a gateway config file.
func Load(file string) (Config, error) {
	f, err := os.Open(file)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	cfg := Config{}
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
