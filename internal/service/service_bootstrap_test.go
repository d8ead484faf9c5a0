package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/mirror-gallery/internal/adapter"
	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/mock"
	"github.com/MKhiriev/mirror-gallery/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBootstrap_AllSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	mirror := mock.NewMockMirrorAPI(ctrl)
	cred := mock.NewMockCredential(ctrl)
	svc := NewBootstrapService(mirror, config.App{PublicURL: "https://gallery.example.com"}, logger.Nop())

	gomock.InOrder(
		mirror.EXPECT().InsertWelcomeItem(gomock.Any(), cred).Return(models.TimelineItem{ID: "w"}, nil),
		mirror.EXPECT().InsertContact(gomock.Any(), cred, "https://gallery.example.com/contact.png").Return(models.Contact{}, nil),
		mirror.EXPECT().InsertSubscription(gomock.Any(), cred, "uid-1", "https://gallery.example.com/provider/notify").Return(models.Subscription{}, nil),
	)

	assert.NoError(t, svc.Bootstrap(context.Background(), "uid-1", cred))
}

// TestBootstrap_ContinuesAfterFailure verifies that a failing step does not
// prevent the remaining ones and that every failure is reported.
func TestBootstrap_ContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mirror := mock.NewMockMirrorAPI(ctrl)
	svc := NewBootstrapService(mirror, config.App{PublicURL: "https://g.example.com"}, logger.Nop())

	welcomeErr := &adapter.RemoteAPIError{Status: 500}
	subErr := errors.New("timeout")
	mirror.EXPECT().InsertWelcomeItem(gomock.Any(), gomock.Any()).Return(models.TimelineItem{}, welcomeErr)
	mirror.EXPECT().InsertContact(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Contact{}, nil)
	mirror.EXPECT().InsertSubscription(gomock.Any(), gomock.Any(), "uid-1", gomock.Any()).Return(models.Subscription{}, subErr)

	err := svc.Bootstrap(context.Background(), "uid-1", testCredential())

	assert.ErrorIs(t, err, adapter.ErrRemoteAPI)
	assert.ErrorIs(t, err, subErr)
	assert.Contains(t, err.Error(), "welcome item")
	assert.NotContains(t, err.Error(), "contact:")
}
