package echoutil

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// SetLevel sets the log level of e by name. Unknown names fall back to info.
func SetLevel(e *echo.Echo, level string) {
	switch strings.ToLower(level) {
	case "debug":
		e.Logger.SetLevel(log.DEBUG)
	case "warn":
		e.Logger.SetLevel(log.WARN)
	case "error":
		e.Logger.SetLevel(log.ERROR)
	case "off":
		e.Logger.SetLevel(log.OFF)
	default:
		e.Logger.SetLevel(log.INFO)
	}
}

// LogHandlerFunc is an echo middleware logging each request with its
// response status and elapsed time.
func LogHandlerFunc(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		c.Logger().Infof(
			"%s %s => %d (%s)",
			c.Request().Method, c.Request().RequestURI,
			c.Response().Status, time.Since(start),
		)
		return err
	}
}
