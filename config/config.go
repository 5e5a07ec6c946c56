package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"famgo/mogoherald/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Source site configuration
	SiteBaseURL string
	Timezone    string

	// Discord configuration
	DiscordToken          string
	DiscordChannelID      string
	DiscordTestChannelID  string
	DiscordImageChannelID string

	// Twitch configuration
	TwitchUsername string
	TwitchOAuth    string
	TwitchChannel  string

	// Redis configuration
	RedisAddr         string
	RedisDB           int
	RedisStreamPrefix string
	RedisStreamMaxLen int

	// Memcache configuration
	MemcacheAddr string

	// Announce configuration
	AnnounceCron    string
	UseChrome       bool
	ChromeTimeout   time.Duration
	MaxImageEmbeds  int
	CommandCooldown time.Duration

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAXLEN", "100"))
	chromeTimeout, _ := strconv.Atoi(getEnv("CHROME_TIMEOUT_SECONDS", "45"))
	maxImageEmbeds, _ := strconv.Atoi(getEnv("MAX_IMAGE_EMBEDS", "4"))
	cooldown, _ := strconv.Atoi(getEnv("COMMAND_COOLDOWN_SECONDS", "30"))

	return Config{
		SiteBaseURL:           getEnv("SITE_BASE_URL", "https://monopolygo.wiki"),
		Timezone:              getEnv("SITE_TIMEZONE", "America/New_York"),
		DiscordToken:          getEnv("DISCORD_BOT_TOKEN", ""),
		DiscordChannelID:      getEnv("DISCORD_CHANNEL_ID", ""),
		DiscordTestChannelID:  getEnv("DISCORD_TEST_CHANNEL_ID", ""),
		DiscordImageChannelID: getEnv("DISCORD_IMG_CHANNEL_ID", ""),
		TwitchUsername:        getEnv("TWITCH_BOT_USERNAME", ""),
		TwitchOAuth:           getEnv("TWITCH_OAUTH_TOKEN", ""),
		TwitchChannel:         getEnv("TWITCH_CHANNEL", ""),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:               redisDB,
		RedisStreamPrefix:     getEnv("REDIS_STREAM_PREFIX", "announcements"),
		RedisStreamMaxLen:     streamMaxLen,
		MemcacheAddr:          getEnv("MEMCACHE_ADDR", ""),
		AnnounceCron:          getEnv("ANNOUNCE_CRON", "0 9 * * *"),
		UseChrome:             getEnv("USE_CHROME", "false") == "true",
		ChromeTimeout:         time.Duration(chromeTimeout) * time.Second,
		MaxImageEmbeds:        maxImageEmbeds,
		CommandCooldown:       time.Duration(cooldown) * time.Second,
		Environment:           getEnv("MOGO_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values that would break the pipeline
func (c *Config) Validate() error {
	u, err := url.Parse(c.SiteBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.NewConfiguration("SITE_BASE_URL must be an absolute URL", err)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return errors.NewConfiguration("SITE_TIMEZONE is not a valid IANA zone", err)
	}

	if c.MaxImageEmbeds < 0 || c.MaxImageEmbeds > 9 {
		return errors.NewConfiguration("MAX_IMAGE_EMBEDS must be between 0 and 9", nil)
	}

	if strings.TrimSpace(c.AnnounceCron) == "" {
		return errors.NewConfiguration("ANNOUNCE_CRON must not be empty", nil)
	}

	return nil
}

// Location returns the reference timezone; Validate must have passed
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
