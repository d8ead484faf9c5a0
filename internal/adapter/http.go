package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/utils"
	"github.com/MKhiriev/mirror-gallery/models"
)

// Fixed payloads of the user bootstrap.
const (
	WelcomeText        = "Welcome to Mirror-Board"
	ContactID          = "mirror-board-contact"
	ContactDisplayName = "MirrorBoard"
	TimelineCollection = "timeline"
)

type httpMirrorAPI struct {
	client      *utils.HTTPClient
	userInfoURL string
	logger      *logger.Logger
}

// NewHTTPMirrorAPI builds the resty-backed [MirrorAPI]. Relative paths are
// resolved against adapterCfg.BaseURL; the userinfo endpoint is absolute.
func NewHTTPMirrorAPI(adapterCfg config.Adapter, oauthCfg config.OAuth, logger *logger.Logger) (MirrorAPI, error) {
	client, err := newClient(adapterCfg)
	if err != nil {
		return nil, err
	}

	return &httpMirrorAPI{client: client, userInfoURL: oauthCfg.UserInfoURL, logger: logger}, nil
}

func newClient(cfg config.Adapter) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader("Accept", "application/json")

	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (a *httpMirrorAPI) InsertWelcomeItem(ctx context.Context, cred Credential) (models.TimelineItem, error) {
	var item models.TimelineItem
	err := a.doJSON(ctx, cred, http.MethodPost, "/timeline", models.TimelineInsert{Text: WelcomeText}, &item)
	return item, err
}

func (a *httpMirrorAPI) InsertContact(ctx context.Context, cred Credential, imageURL string) (models.Contact, error) {
	contact := models.Contact{
		ID:          ContactID,
		DisplayName: ContactDisplayName,
		ImageURLs:   []string{imageURL},
	}

	var created models.Contact
	err := a.doJSON(ctx, cred, http.MethodPost, "/contacts", contact, &created)
	return created, err
}

func (a *httpMirrorAPI) InsertSubscription(ctx context.Context, cred Credential, userToken, callbackURL string) (models.Subscription, error) {
	sub := models.Subscription{
		Collection:  TimelineCollection,
		UserToken:   userToken,
		CallbackURL: callbackURL,
	}

	var created models.Subscription
	err := a.doJSON(ctx, cred, http.MethodPost, "/subscriptions", sub, &created)
	return created, err
}

func (a *httpMirrorAPI) FetchTimelineItem(ctx context.Context, cred Credential, itemID string) (models.TimelineItem, error) {
	var item models.TimelineItem
	err := a.doJSON(ctx, cred, http.MethodGet, "/timeline/"+url.PathEscape(itemID), nil, &item)
	return item, err
}

func (a *httpMirrorAPI) GetUserInfo(ctx context.Context, cred Credential) (models.UserInfo, error) {
	var info models.UserInfo
	err := a.doJSON(ctx, cred, http.MethodGet, a.userInfoURL, nil, &info)
	return info, err
}

// doJSON sends an authenticated request and decodes a 2xx answer into out.
// A 401 invalidates the credential and the request is sent once more with a
// refreshed token.
func (a *httpMirrorAPI) doJSON(ctx context.Context, cred Credential, method, path string, body, out any) error {
	log := logger.FromContext(ctx)

	for {
		token, err := cred.AccessToken(ctx)
		if err != nil {
			return err
		}

		req := a.client.Authorized(ctx, token)
		if body != nil {
			req.SetHeader("Content-Type", "application/json").SetBody(body)
		}

		resp, err := req.Execute(method, path)
		if err != nil {
			log.Err(err).Str("func", "*httpMirrorAPI.doJSON").Str("method", method).Str("path", path).Msg("request failed")
			return fmt.Errorf("%w: %s %s: %w", ErrRemoteAPI, method, path, err)
		}

		if resp.StatusCode() == http.StatusUnauthorized && cred.Invalidate() {
			log.Debug().Str("func", "*httpMirrorAPI.doJSON").Str("path", path).Msg("access token rejected, refreshing")
			continue
		}

		if err = mapHTTPError(resp); err != nil {
			log.Warn().Err(err).Str("func", "*httpMirrorAPI.doJSON").Str("method", method).Str("path", path).Msg("remote api error")
			return err
		}

		if out == nil || len(resp.Body()) == 0 {
			return nil
		}
		if err = json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("%w: decode %s response: %w", ErrRemoteAPI, path, err)
		}
		return nil
	}
}
