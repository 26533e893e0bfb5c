package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Service struct {
	URL string `mapstructure:"url"`
}
type Services struct {
	Sentiment Service `mapstructure:"sentiment"`
	Segmenter Service `mapstructure:"segmenter"`
}
type Windowing struct {
	GapMinutes          int    `mapstructure:"gap_minutes" validate:"gt=0"`
	MaxWindowsToSegment int    `mapstructure:"max_windows_to_segment" validate:"gt=0"`
	SpeakerColumn       string `mapstructure:"speaker_column" validate:"required"`
	TimeColumn          string `mapstructure:"time_column" validate:"required"`
	TextColumn          string `mapstructure:"text_column" validate:"required"`
}
type Scoring struct {
	BatchSize  int    `mapstructure:"batch_size" validate:"gt=0"`
	TextColumn string `mapstructure:"text_column" validate:"required"`
}
type Root struct {
	Pipeline struct {
		Name    string `mapstructure:"name"`
		Version string `mapstructure:"version"`
		LogLvl  string `mapstructure:"log_level"`
	} `mapstructure:"pipeline"`
	Services  Services  `mapstructure:"services"`
	Windowing Windowing `mapstructure:"windowing"`
	Scoring   Scoring   `mapstructure:"scoring"`
	Paths     struct {
		Outputs string `mapstructure:"outputs" validate:"required"`
	} `mapstructure:"paths"`
}

// Gap returns the conversation-window split threshold.
func (w Windowing) Gap() time.Duration { return time.Duration(w.GapMinutes) * time.Minute }

func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "doll-pipeline")
	v.SetDefault("pipeline.version", "0.1.0")
	v.SetDefault("pipeline.log_level", "info")
	// empty defaults so viper knows the keys and env overrides reach Unmarshal
	v.SetDefault("services.sentiment.url", "")
	v.SetDefault("services.segmenter.url", "")
	v.SetDefault("windowing.gap_minutes", 5)
	v.SetDefault("windowing.max_windows_to_segment", 30)
	v.SetDefault("windowing.speaker_column", "doll_id")
	v.SetDefault("windowing.time_column", "uttered_at")
	v.SetDefault("windowing.text_column", "text")
	v.SetDefault("scoring.batch_size", 32)
	v.SetDefault("scoring.text_column", "text")
	v.SetDefault("paths.outputs", "outputs")
}

// Load reads configuration from path (or ./config/config.yaml when empty),
// with DOLL_* environment overrides on top of built-in defaults.
func Load(path string) (*Root, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("DOLL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
			// defaults + env are enough to run without a file
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
