package echoutil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	xio "github.com/pizza-net/pizza-frontend/pkg/utils/io"
)

// Proxy forwards the request held by c to url and relays the response back,
// streaming the body and preserving trailers.
func Proxy(cp *echo.Context, url string) error {
	c := *cp

	req, err := buildBackendRequest(c.Request().Context(), url, cp)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return err
	}

	resp, err := sendToBackend(req)
	if err != nil {
		c.String(http.StatusBadGateway, err.Error())
		return err
	}
	defer resp.Body.Close()

	if err := CopyResponse(cp, resp); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return err
	}

	return nil
}

func sendToBackend(req *http.Request) (*http.Response, error) {
	client := &http.Client{
		CheckRedirect: nil,
	}
	return client.Do(req)
}

func buildBackendRequest(ctx context.Context, url string, cp *echo.Context) (*http.Request, error) {
	c := *cp
	req, err := http.NewRequestWithContext(ctx, c.Request().Method, url, c.Request().Body)
	if err != nil {
		return nil, err
	}

	CopyHeader(&req.Header, &c.Request().Header)
	req.Body = c.Request().Body
	if c.Request().Trailer != nil {
		req.Trailer = http.Header{}
		for k, vs := range c.Request().Trailer {
			for _, v := range vs {
				req.Trailer.Add(k, v)
			}
		}
	}

	return req, nil
}

// CopyHeader adds every header in src to dest, skipping names listed in except
// (compared case-insensitively).
func CopyHeader(dest *http.Header, src *http.Header, except ...string) {
	exc := map[string]interface{}{}
	for _, x := range except {
		exc[strings.ToLower(x)] = nil
	}

	for k, vs := range *src {
		if _, ok := exc[strings.ToLower(k)]; ok {
			continue
		}
		for _, v := range vs {
			dest.Add(k, v)
		}
	}
}

// CopyResponse writes resp out as the response of c.
//
// When the backend answers with chunked transfer encoding, chunks are flushed
// to the client as they arrive, so long-polling backends keep working through
// the proxy.
func CopyResponse(cp *echo.Context, resp *http.Response) error {
	c := *cp
	ctx := c.Request().Context()

	dstResp := c.Response()
	dstHeader := dstResp.Header()
	CopyHeader(&dstHeader, &resp.Header)

	chunked := false
	for _, te := range resp.TransferEncoding {
		dstHeader.Add("Transfer-Encoding", te)
		if strings.ToLower(te) == "chunked" {
			chunked = true
		}
	}
	for trailer := range resp.Trailer {
		dstHeader.Add("Trailer", trailer)
	}

	dstResp.WriteHeader(resp.StatusCode)

	src := xio.NewTriggerReader(resp.Body)
	src.OnEnd(func() {
		trailer := c.Response().Header()
		for k, vs := range resp.Trailer {
			for _, v := range vs {
				trailer.Add(k, v)
			}
		}
	})
	if !chunked {
		_, err := io.Copy(dstResp.Writer, src)
		return err
	}

	buf := make([]byte, 1024*1024)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := src.Read(buf)
		if err != nil {
			dstResp.Flush()
			if errors.Is(err, io.EOF) {
				_, err := dstResp.Write(buf[:n])
				return err
			}
			return err
		}
		if n == 0 {
			continue
		}

		if _, err := dstResp.Write(buf[:n]); err != nil {
			return err
		}
		dstResp.Flush()
	}
}
