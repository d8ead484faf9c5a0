package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		PublicURL          string   `json:"public_url"`
		SessionSignKey     string   `json:"session_sign_key"`
		SessionIssuer      string   `json:"session_issuer"`
		SessionDuration    Duration `json:"session_duration"`
		UnknownContentType string   `json:"unknown_content_type"`
		GenericExtension   string   `json:"generic_extension"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	OAuth struct {
		ClientID     string   `json:"client_id"`
		ClientSecret string   `json:"client_secret"`
		AuthURL      string   `json:"auth_url"`
		TokenURL     string   `json:"token_url"`
		UserInfoURL  string   `json:"userinfo_url"`
		RedirectURL  string   `json:"redirect_url"`
		Scopes       []string `json:"scopes"`
	} `json:"oauth,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			UserContentDir string `json:"user_content_dir"`
			StaticDir      string `json:"static_dir"`
		} `json:"files,omitempty"`

		S3 struct {
			Bucket    string `json:"bucket"`
			Region    string `json:"region"`
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Prefix    string `json:"prefix"`
			URLExpiry Duration `json:"url_expiry"`
		} `json:"s3,omitempty"`

		Redis struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`

		ContentBackend string `json:"content_backend"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress         string   `json:"http_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		NotificationTimeout Duration `json:"notification_timeout"`
		ShutdownTimeout     Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Events struct {
		AMQPURL string `json:"amqp_url"`
		Queue   string `json:"queue"`
	} `json:"events,omitempty"`

	Workers struct {
		AttachmentConcurrency int `json:"attachment_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PublicURL:          j.App.PublicURL,
			SessionSignKey:     j.App.SessionSignKey,
			SessionIssuer:      j.App.SessionIssuer,
			SessionDuration:    time.Duration(j.App.SessionDuration),
			UnknownContentType: j.App.UnknownContentType,
			GenericExtension:   j.App.GenericExtension,
			Version:            j.App.Version,
		},
		OAuth: OAuth{
			ClientID:     j.OAuth.ClientID,
			ClientSecret: j.OAuth.ClientSecret,
			AuthURL:      j.OAuth.AuthURL,
			TokenURL:     j.OAuth.TokenURL,
			UserInfoURL:  j.OAuth.UserInfoURL,
			RedirectURL:  j.OAuth.RedirectURL,
			Scopes:       j.OAuth.Scopes,
		},
		Adapter: Adapter{
			BaseURL:        j.Adapter.BaseURL,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Driver: j.Storage.DB.Driver,
				DSN:    j.Storage.DB.DSN,
			},
			Files: Files{
				UserContentDir: j.Storage.Files.UserContentDir,
				StaticDir:      j.Storage.Files.StaticDir,
			},
			S3: S3{
				Bucket:    j.Storage.S3.Bucket,
				Region:    j.Storage.S3.Region,
				Endpoint:  j.Storage.S3.Endpoint,
				AccessKey: j.Storage.S3.AccessKey,
				SecretKey: j.Storage.S3.SecretKey,
				Prefix:    j.Storage.S3.Prefix,
				URLExpiry: time.Duration(j.Storage.S3.URLExpiry),
			},
			Redis: Redis{
				Addr:     j.Storage.Redis.Addr,
				Password: j.Storage.Redis.Password,
				DB:       j.Storage.Redis.DB,
			},
			ContentBackend: j.Storage.ContentBackend,
		},
		Server: Server{
			HTTPAddress:         j.Server.HTTPAddress,
			RequestTimeout:      time.Duration(j.Server.RequestTimeout),
			NotificationTimeout: time.Duration(j.Server.NotificationTimeout),
			ShutdownTimeout:     time.Duration(j.Server.ShutdownTimeout),
		},
		Events: Events{
			AMQPURL: j.Events.AMQPURL,
			Queue:   j.Events.Queue,
		},
		Workers: Workers{
			AttachmentConcurrency: j.Workers.AttachmentConcurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
