package gateway_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pizza-net/pizza-frontend/pkg/configs/gateway"
)

func TestLoad(t *testing.T) {

	write := func(t *testing.T, content string) string {
		t.Helper()
		file := filepath.Join(t.TempDir(), "gateway.yaml")
		if err := os.WriteFile(file, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return file
	}

	t.Run("it can be created from a config file", func(t *testing.T) {
		file := write(t, `
port: "8088"
services:
    auth: http://auth-svc:8000
    pizza: http://pizza-svc:8001
    orders: http://order-svc:8002
    payments: http://payment-svc:8003
    deliveries: http://delivery-svc:8004
`)
		conf, err := gateway.Load(file)
		if err != nil {
			t.Fatalf("failed to parse config: %v", err)
		}

		if conf.ServerPort != "8088" {
			t.Errorf("unmatch port: %s, expected: 8088", conf.ServerPort)
		}

		backends := conf.Backends()
		if len(backends) != 5 {
			t.Fatalf("unexpected backends: %+v", backends)
		}
		for _, expected := range []struct{ prefix, root string }{
			{"/api/auth", "http://auth-svc:8000"},
			{"/api/pizza", "http://pizza-svc:8001"},
			{"/api/orders", "http://order-svc:8002"},
			{"/api/payments", "http://payment-svc:8003"},
			{"/api/deliveries", "http://delivery-svc:8004"},
		} {
			found := false
			for _, b := range backends {
				if b.Prefix != expected.prefix {
					continue
				}
				found = true
				if b.ProxyTo.String() != expected.root {
					t.Errorf(
						"unmatch backend for %s: %s, expected: %s",
						expected.prefix, b.ProxyTo, expected.root,
					)
				}
			}
			if !found {
				t.Errorf("no backend for %s", expected.prefix)
			}
		}
	})

	t.Run("when port is omitted, it defaults to 8080", func(t *testing.T) {
		file := write(t, `
services:
    auth: http://auth-svc:8000
    pizza: http://pizza-svc:8001
    orders: http://order-svc:8002
    payments: http://payment-svc:8003
    deliveries: http://delivery-svc:8004
`)
		conf, err := gateway.Load(file)
		if err != nil {
			t.Fatalf("failed to parse config: %v", err)
		}
		if conf.ServerPort != "8080" {
			t.Errorf("unmatch port: %s, expected: 8080", conf.ServerPort)
		}
	})

	t.Run("a relative backend url is rejected", func(t *testing.T) {
		file := write(t, `
services:
    auth: auth-svc:8000
    pizza: http://pizza-svc:8001
    orders: http://order-svc:8002
    payments: http://payment-svc:8003
    deliveries: http://delivery-svc:8004
`)
		if _, err := gateway.Load(file); !errors.Is(err, gateway.ErrInvalidBackendURL) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("a missing backend is rejected", func(t *testing.T) {
		file := write(t, `
services:
    auth: http://auth-svc:8000
`)
		if _, err := gateway.Load(file); !errors.Is(err, gateway.ErrInvalidBackendURL) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
