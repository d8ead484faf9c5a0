package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/utils"
	"github.com/MKhiriev/mirror-gallery/models"
)

type httpAttachmentFetcher struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAttachmentFetcher builds a streaming [AttachmentFetcher]. Attachment
// URLs are absolute, the base URL only serves relative ones.
func NewHTTPAttachmentFetcher(cfg config.Adapter, logger *logger.Logger) (AttachmentFetcher, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	return &httpAttachmentFetcher{client: client, logger: logger}, nil
}

func (f *httpAttachmentFetcher) Download(ctx context.Context, cred Credential, contentURL string) (*models.Download, error) {
	log := logger.FromContext(ctx)

	if contentURL == "" {
		return nil, fmt.Errorf("%w: empty content url", ErrDownload)
	}

	for {
		token, err := cred.AccessToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDownload, err)
		}

		resp, err := f.client.Authorized(ctx, token).
			SetHeader("Accept", "*/*").
			SetDoNotParseResponse(true).
			Get(contentURL)
		if err != nil {
			log.Err(err).Str("func", "*httpAttachmentFetcher.Download").Msg("request failed")
			return nil, fmt.Errorf("%w: %w", ErrDownload, err)
		}

		raw := resp.RawBody()
		status := resp.StatusCode()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			return &models.Download{
				Body:          &downloadBody{ReadCloser: raw},
				ContentType:   resp.Header().Get("Content-Type"),
				ContentLength: resp.RawResponse.ContentLength,
			}, nil
		}

		body, _ := io.ReadAll(io.LimitReader(raw, maxErrorBody))
		raw.Close()

		if status == http.StatusUnauthorized && cred.Invalidate() {
			log.Debug().Str("func", "*httpAttachmentFetcher.Download").Msg("access token rejected, refreshing")
			continue
		}

		return nil, fmt.Errorf("%w: %w", ErrDownload, statusError(status, body))
	}
}

// downloadBody marks read failures of a streamed attachment with ErrDownload.
// io.EOF is passed through untouched.
type downloadBody struct {
	io.ReadCloser
}

func (b *downloadBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if err != nil && err != io.EOF {
		err = fmt.Errorf("%w: reading body: %w", ErrDownload, err)
	}
	return n, err
}
