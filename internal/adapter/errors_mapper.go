package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 1024

func mapHTTPError(resp *resty.Response) error {
	return statusError(resp.StatusCode(), resp.Body())
}

func statusError(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return &RemoteAPIError{
		Status: status,
		Body:   strings.TrimSpace(string(body)),
	}
}
