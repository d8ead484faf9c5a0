package service

import (
	"context"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/mock"
	"github.com/MKhiriev/mirror-gallery/internal/oauth"
	"github.com/MKhiriev/mirror-gallery/models"
	"go.uber.org/mock/gomock"
)

// testProvider never reaches the network: credentials built from it carry
// non-expiring tokens.
func testProvider() *oauth.Provider {
	return oauth.NewProvider(config.OAuth{
		ClientID:    "client",
		AuthURL:     "https://provider.example.com/auth",
		TokenURL:    "http://127.0.0.1:1/token",
		RedirectURL: "https://gallery.example.com" + config.CallbackPath,
	}, time.Second)
}

func testCredential() *oauth.Credential {
	return testProvider().Credential(models.TokenSet{AccessToken: "tok", RefreshToken: "ref"})
}

// eventLog records events emitted through a gomock Sink.
type eventLog struct {
	mu     sync.Mutex
	events []models.IngestEvent
}

func newEventLog(ctrl *gomock.Controller) (*mock.MockSink, *eventLog) {
	l := &eventLog{}
	sink := mock.NewMockSink(ctrl)
	sink.EXPECT().Emit(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ev models.IngestEvent) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.events = append(l.events, ev)
	}).AnyTimes()
	return sink, l
}

func (l *eventLog) kinds() []models.EventKind {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.EventKind, 0, len(l.events))
	for _, ev := range l.events {
		out = append(out, ev.Kind)
	}
	return out
}

func (l *eventLog) byAttachment(id string) (models.IngestEvent, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, ev := range l.events {
		if ev.AttachmentID == id {
			return ev, true
		}
	}
	return models.IngestEvent{}, false
}

// trackedBody is a download body that records being closed.
type trackedBody struct {
	io.Reader
	closed atomic.Bool
}

func newTrackedBody(s string) *trackedBody {
	return &trackedBody{Reader: strings.NewReader(s)}
}

func (b *trackedBody) Close() error {
	b.closed.Store(true)
	return nil
}

func download(body io.ReadCloser, contentType string) *models.Download {
	return &models.Download{Body: body, ContentType: contentType}
}

func assertNoLeak(t *testing.T, bodies ...*trackedBody) {
	t.Helper()
	for i, b := range bodies {
		if !b.closed.Load() {
			t.Errorf("body %d was not closed", i)
		}
	}
}
