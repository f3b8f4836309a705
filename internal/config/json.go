package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Env     string `json:"env"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Security struct {
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		RateLimitMax       int      `json:"rate_limit_max"`
		RateLimitWindow    Duration `json:"rate_limit_window"`
		RateLimitMessage   string   `json:"rate_limit_message"`
		BodyLimit          int64    `json:"body_limit"`
		HPPWhitelist       []string `json:"hpp_whitelist"`
	} `json:"security,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Query struct {
		DefaultPage   int    `json:"default_page"`
		DefaultLimit  int    `json:"default_limit"`
		DefaultSort   string `json:"default_sort"`
		TieBreakField string `json:"tie_break_field"`
		ExcludedField string `json:"excluded_field"`
	} `json:"query,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:     jsonCfg.App.Env,
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Security: Security{
			CORSAllowedOrigins: jsonCfg.Security.CORSAllowedOrigins,
			RateLimitMax:       jsonCfg.Security.RateLimitMax,
			RateLimitWindow:    time.Duration(jsonCfg.Security.RateLimitWindow),
			RateLimitMessage:   jsonCfg.Security.RateLimitMessage,
			BodyLimit:          jsonCfg.Security.BodyLimit,
			HPPWhitelist:       jsonCfg.Security.HPPWhitelist,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Query: Query{
			DefaultPage:   jsonCfg.Query.DefaultPage,
			DefaultLimit:  jsonCfg.Query.DefaultLimit,
			DefaultSort:   jsonCfg.Query.DefaultSort,
			TieBreakField: jsonCfg.Query.TieBreakField,
			ExcludedField: jsonCfg.Query.ExcludedField,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
