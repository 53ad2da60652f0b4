package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pizza-net/pizza-frontend/pkg/configs/gateway"
)

// Rewriter maps a gateway-side request URL to the backend URL it should be
// forwarded to.
type Rewriter func(req *url.URL) (*url.URL, error)

var ErrRewrite = errors.New("rewrite error")

// RewriteWith builds a Rewriter translating requests under b.Prefix into
// requests against b.ProxyTo. Query and fragment are carried over.
func RewriteWith(b gateway.Backend) (Rewriter, error) {

	sourcePath := strings.TrimSuffix(b.Prefix, "/")

	return func(req *url.URL) (*url.URL, error) {

		dest := b.ProxyTo
		{
			// taking copy
			d := *dest
			dest = &d
		}
		if p := req.Path; p == sourcePath {
			// its okay. no-op.
		} else if strings.HasPrefix(p, sourcePath) {
			pp := strings.TrimPrefix(p, sourcePath+"/")
			if pp == "" && strings.HasSuffix(p, "/") {
				pp = "/"
			}
			dest = dest.JoinPath(pp)
		} else {
			return nil, fmt.Errorf("%w: path prefix is not match", ErrRewrite)
		}

		dest.Fragment = req.Fragment
		dest.RawQuery = req.RawQuery

		return dest, nil
	}, nil
}

// ProxyAPI registers proxy routes for b on e: every method under b.Prefix
// (and b.Prefix itself) is forwarded through proxyFn.
func ProxyAPI(
	e *echo.Echo,
	b gateway.Backend,
	proxyFn func(c *echo.Context, url string) error,
) error {

	rew, err := RewriteWith(b)
	if err != nil {
		return err
	}

	proxyer := func(c echo.Context) error {
		requrl := c.Request().URL
		dest, err := rew(requrl)
		if err != nil {
			return err
		}
		return proxyFn(&c, dest.String())
	}

	for _, dest := range []string{b.Prefix, path.Join(b.Prefix, "*")} {
		e.GET(dest, proxyer)
		e.POST(dest, proxyer)
		e.PUT(dest, proxyer)
		e.DELETE(dest, proxyer)
		e.PATCH(dest, proxyer)
		e.OPTIONS(dest, proxyer)
		e.HEAD(dest, proxyer)
	}

	return nil
}

// HealthHandler answers liveness probes. It does not reach out to backends.
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
