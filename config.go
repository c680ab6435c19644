package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	BLSAPIKey  string `yaml:"bls_api_key"`
	BLSBaseURL string `yaml:"bls_base_url"`

	DatabaseURL    string `yaml:"database_url"`
	DBPath         string `yaml:"db_path"`
	LocalStorePath string `yaml:"local_store_path"`

	OverridesPath       string `yaml:"overrides_path"`
	UnknownGrowthPolicy string `yaml:"unknown_growth_policy"`
	SimilarJobLimit     int    `yaml:"similar_job_limit"`

	RefreshSchedule   string `yaml:"refresh_schedule"`
	RefreshSampleSize int    `yaml:"refresh_sample_size"`

	SlackBotToken  string `yaml:"slack_bot_token"`
	SlackChannelID string `yaml:"slack_channel_id"`

	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	AdviceModel     string `yaml:"advice_model"`

	Timezone string `yaml:"timezone"`

	Location *time.Location `yaml:"-"`
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.ListenAddr, "LISTEN_ADDR")
	envOverride(&cfg.BLSAPIKey, "BLS_API_KEY")
	envOverride(&cfg.BLSBaseURL, "BLS_BASE_URL")
	envOverride(&cfg.DatabaseURL, "DATABASE_URL")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.LocalStorePath, "LOCAL_STORE_PATH")
	envOverride(&cfg.OverridesPath, "OVERRIDES_PATH")
	envOverride(&cfg.UnknownGrowthPolicy, "UNKNOWN_GROWTH_POLICY")
	envOverrideInt(&cfg.SimilarJobLimit, "SIMILAR_JOB_LIMIT")
	envOverride(&cfg.RefreshSchedule, "REFRESH_SCHEDULE")
	envOverrideInt(&cfg.RefreshSampleSize, "REFRESH_SAMPLE_SIZE")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.SlackChannelID, "SLACK_CHANNEL_ID")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.AdviceModel, "ADVICE_MODEL")
	envOverride(&cfg.Timezone, "TIMEZONE")

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.BLSBaseURL == "" {
		cfg.BLSBaseURL = defaultBLSBaseURL
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./jobrisk.db"
	}
	if cfg.LocalStorePath == "" {
		cfg.LocalStorePath = "./jobrisk_local.json"
	}
	if cfg.UnknownGrowthPolicy == "" {
		cfg.UnknownGrowthPolicy = GrowthPolicyNeutral
	}
	if cfg.SimilarJobLimit == 0 {
		cfg.SimilarJobLimit = 4
	}
	if cfg.RefreshSampleSize == 0 {
		cfg.RefreshSampleSize = 3
	}
	if cfg.AdviceModel == "" {
		cfg.AdviceModel = "claude-sonnet-4-20250514"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}

	// Validate
	switch cfg.UnknownGrowthPolicy {
	case GrowthPolicyNeutral, GrowthPolicyUnknown:
	default:
		log.Fatalf("unknown_growth_policy must be '%s' or '%s', got '%s'",
			GrowthPolicyNeutral, GrowthPolicyUnknown, cfg.UnknownGrowthPolicy)
	}
	if cfg.SimilarJobLimit < 1 {
		log.Fatalf("invalid similar_job_limit '%d': must be >= 1", cfg.SimilarJobLimit)
	}
	if cfg.RefreshSampleSize < 1 {
		log.Fatalf("invalid refresh_sample_size '%d': must be >= 1", cfg.RefreshSampleSize)
	}
	if cfg.RefreshSchedule != "" {
		parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
		if _, err := parser.Parse(cfg.RefreshSchedule); err != nil {
			log.Fatalf("invalid refresh_schedule '%s': %v", cfg.RefreshSchedule, err)
		}
	}
	if cfg.OverridesPath != "" {
		if _, err := LoadOverrides(cfg.OverridesPath); err != nil {
			log.Fatalf("invalid overrides_path '%s': %v", cfg.OverridesPath, err)
		}
	}
	if cfg.SlackBotToken != "" && cfg.SlackChannelID == "" {
		log.Fatalf("slack_channel_id is required when slack_bot_token is set")
	}

	if strings.EqualFold(cfg.Timezone, "Local") {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Fatalf("invalid timezone '%s': %v", cfg.Timezone, err)
		}
		cfg.Location = loc
	}

	return cfg
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}

func (c Config) SlackConfigured() bool {
	return c.SlackBotToken != "" && c.SlackChannelID != ""
}

func (c Config) AdviceConfigured() bool {
	return c.AnthropicAPIKey != ""
}
