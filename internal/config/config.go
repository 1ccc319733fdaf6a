package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	TrustedProxies []string

	// MeetLinkBase is the base URL generated meeting links point at.
	MeetLinkBase string
	// PublicBookingURL is the shareable public booking page.
	PublicBookingURL string
	// VideoLinkBase backs the auto-generated link on Video tasks.
	VideoLinkBase string
	// PaymentSettleDelay is the simulated payment settlement delay.
	PaymentSettleDelay time.Duration
	// MeetingLinkStable keeps one meeting link token per booking session
	// instead of regenerating it on every slot change.
	MeetingLinkStable bool
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		TrustedProxies:     parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		MeetLinkBase:       getEnv("MEET_LINK_BASE", "https://dontforget.app/meet"),
		PublicBookingURL:   getEnv("PUBLIC_BOOKING_URL", "https://dontforget.app/book"),
		VideoLinkBase:      getEnv("VIDEO_LINK_BASE", "https://meet.dontforget.app"),
		PaymentSettleDelay: getDurationEnv("PAYMENT_SETTLE_DELAY_MS", 400) * time.Millisecond,
		MeetingLinkStable:  getBoolEnv("MEETING_LINK_STABLE", false),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback int64) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return time.Duration(fallback)
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 0 {
		return time.Duration(fallback)
	}
	return time.Duration(parsed)
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
