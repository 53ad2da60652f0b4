package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pizza-net/pizza-frontend/cmd/gateway/handlers"
	"github.com/pizza-net/pizza-frontend/pkg/buildtime"
	"github.com/pizza-net/pizza-frontend/pkg/configs/gateway"
	"github.com/pizza-net/pizza-frontend/pkg/echoutil"
	"github.com/pizza-net/pizza-frontend/pkg/utils/filewatch"
)

func main() {

	configPath := flag.String("config-path", "", "gateway config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	pver := flag.Bool("version", false, "show version and quit")
	flag.Parse()

	if *pver {
		log.Println(buildtime.VersionString())
		return
	}

	e := echo.New()

	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	conf, err := gateway.Load(*configPath)
	if err != nil {
		log.Fatalf("can not read configuration: %s", err)
	}

	// quit for supervisor restart when the config file is rewritten
	{
		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
		if err != nil {
			log.Fatalf("can not watch configuration: %s", err)
		}
		defer cancel()
		context.AfterFunc(ctx, func() {
			log.Println("config file is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by config update: %s", err)
			}
		})
	}

	e.GET("/health", handlers.HealthHandler())

	for _, b := range conf.Backends() {
		log.Printf("register backend: %s => %s", b.Prefix, b.ProxyTo)
		if err := handlers.ProxyAPI(e, b, echoutil.Proxy); err != nil {
			log.Fatalf("can not set proxy for %s: %s", b.Prefix, err)
		}
	}

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+conf.ServerPort, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + conf.ServerPort))
	}
}
