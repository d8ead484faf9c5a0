package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mirror-gallery/internal/adapter"
	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/internal/oauth"
	"github.com/MKhiriev/mirror-gallery/internal/store"
	"github.com/MKhiriev/mirror-gallery/internal/utils"
	"github.com/MKhiriev/mirror-gallery/internal/validators"
	"github.com/MKhiriev/mirror-gallery/models"
)

// PendingRegistrationTTL is how long an authorized but unregistered user has
// to submit the registration form.
const PendingRegistrationTTL = 15 * time.Minute

// AuthDeps are the collaborators of the login and registration flow.
type AuthDeps struct {
	Provider    *oauth.Provider
	Mirror      adapter.MirrorAPI
	Users       store.UserRepository
	Pending     store.PendingRegistrationStore
	Credentials CredentialService
	Bootstrap   BootstrapService
}

// authService drives the OAuth login of gallery members.
//
// Returning users get their stored tokens rotated and are logged in. A uid
// the gallery has never seen is parked in the pending registration store
// until the user picks a username; only then is the account created and the
// wearable bootstrapped.
type authService struct {
	provider    *oauth.Provider
	mirror      adapter.MirrorAPI
	users       store.UserRepository
	pending     store.PendingRegistrationStore
	credentials CredentialService
	bootstrap   BootstrapService
	validator   validators.Validator
	ids         *utils.UUIDGenerator

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every session.
	sessionIssuer string

	sessionDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(deps AuthDeps, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		provider:        deps.Provider,
		mirror:          deps.Mirror,
		users:           deps.Users,
		pending:         deps.Pending,
		credentials:     deps.Credentials,
		bootstrap:       deps.Bootstrap,
		validator:       validators.NewRequestValidator(),
		ids:             utils.NewUUIDGenerator(),
		sessionSignKey:  cfg.SessionSignKey,
		sessionIssuer:   cfg.SessionIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// BeginLogin returns the consent page URL together with an anonymous session
// carrying the anti-forgery state.
func (a *authService) BeginLogin(ctx context.Context) (string, models.Session, error) {
	state := a.ids.GenerateSecret()

	session, err := a.sign(models.Session{OAuthState: state})
	if err != nil {
		return "", models.Session{}, err
	}

	return a.provider.AuthCodeURL(state), session, nil
}

// CompleteLogin handles the provider's redirect.
//
// Errors:
//   - ErrInvalidState if state does not match the session.
//   - oauth.ErrCodeExchange if the code was rejected.
//   - A wrapped adapter error if the identity could not be fetched.
func (a *authService) CompleteLogin(ctx context.Context, session models.Session, state, code string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if session.OAuthState == "" || session.OAuthState != state {
		log.Warn().Str("func", "*authService.CompleteLogin").Msg("oauth state mismatch")
		return models.LoginResult{}, ErrInvalidState
	}

	tokens, err := a.provider.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*authService.CompleteLogin").Msg("code exchange failed")
		return models.LoginResult{}, err
	}

	cred := a.credentials.FromTokens(tokens)
	info, err := a.mirror.GetUserInfo(ctx, cred)
	if err != nil {
		log.Err(err).Str("func", "*authService.CompleteLogin").Msg("fetching user info failed")
		return models.LoginResult{}, fmt.Errorf("fetching user info failed: %w", err)
	}
	uid, err := info.UID()
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("fetching user info failed: %w", err)
	}
	tokens = cred.Tokens()

	lookup, err := a.users.LookupUser(ctx, uid)
	if err != nil {
		log.Err(err).Str("func", "*authService.CompleteLogin").Str("uid", uid).Msg("user lookup failed")
		return models.LoginResult{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if lookup.Found {
		if err = a.users.UpdateTokens(ctx, uid, tokens); err != nil {
			log.Err(err).Str("func", "*authService.CompleteLogin").Str("uid", uid).Msg("token rotation failed")
			return models.LoginResult{}, fmt.Errorf("token rotation failed: %w", err)
		}

		loggedIn, err := a.sign(models.NewUserSession(uid))
		if err != nil {
			return models.LoginResult{}, err
		}

		log.Info().Str("uid", uid).Msg("user logged in")
		return models.LoginResult{Session: loggedIn, User: lookup.User}, nil
	}

	key := a.ids.GenerateSecret()
	rec := models.PendingRegistration{UID: uid, Email: info.Email, Name: info.Name, Tokens: tokens}
	if err = a.pending.Put(ctx, key, rec, PendingRegistrationTTL); err != nil {
		log.Err(err).Str("func", "*authService.CompleteLogin").Str("uid", uid).Msg("parking pending registration failed")
		return models.LoginResult{}, fmt.Errorf("parking pending registration failed: %w", err)
	}

	pendingSession, err := a.sign(models.Session{PendingKey: key})
	if err != nil {
		return models.LoginResult{}, err
	}

	return models.LoginResult{
		Session:           pendingSession,
		User:              models.User{UID: uid},
		NeedsRegistration: true,
	}, nil
}

// Register consumes the pending registration referenced by session and
// creates the account. When the username is taken the record is put back so
// the user can pick another name.
func (a *authService) Register(ctx context.Context, session models.Session, registration models.Registration) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, registration); err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrInvalidUsername, err)
	}
	if session.PendingKey == "" {
		return models.User{}, models.Session{}, ErrNoPendingRegistration
	}

	rec, ok, err := a.pending.Take(ctx, session.PendingKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("taking pending registration failed")
		return models.User{}, models.Session{}, fmt.Errorf("taking pending registration failed: %w", err)
	}
	if !ok {
		return models.User{}, models.Session{}, ErrNoPendingRegistration
	}

	user := models.User{UID: rec.UID, Username: registration.Username}
	rec.Tokens.ApplyTo(&user)

	if err = a.users.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			if putErr := a.pending.Put(ctx, session.PendingKey, rec, PendingRegistrationTTL); putErr != nil {
				log.Err(putErr).Str("func", "*authService.Register").Msg("restoring pending registration failed")
			}
			return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrUsernameTaken, err)
		case errors.Is(err, store.ErrUIDAlreadyExists):
			return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrAlreadyRegistered, err)
		default:
			log.Err(err).Str("func", "*authService.Register").Str("uid", user.UID).Msg("user creation ended with error")
			return models.User{}, models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
		}
	}

	if err = a.bootstrap.Bootstrap(ctx, user.UID, a.credentials.FromTokens(rec.Tokens)); err != nil {
		log.Warn().Err(err).Str("uid", user.UID).Msg("bootstrap incomplete")
	}

	loggedIn, err := a.sign(models.NewUserSession(user.UID))
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	log.Info().Str("uid", user.UID).Str("username", user.Username).Msg("user registered")
	return user, loggedIn, nil
}

// ParseSession normalizes every verification failure to ErrSessionInvalid.
func (a *authService) ParseSession(ctx context.Context, token string) (models.Session, error) {
	session, err := utils.ParseSession(token, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	return session, nil
}

func (a *authService) sign(session models.Session) (models.Session, error) {
	signed, err := utils.SignSession(session, a.sessionIssuer, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return signed, nil
}
