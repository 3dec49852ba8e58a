package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL  = "https://www.nationstates.net/cgi-bin/api.cgi"
	DefaultSiteURL = "https://www.nationstates.net"
	DefaultOutput  = "output.txt"
)

type Config struct {
	UserAgent  string
	Nation     string
	APIURL     string
	SiteURL    string
	OutputPath string
}

var loadOnce sync.Once

func Load() Config {
	loadOnce.Do(func() {
		_ = godotenv.Load(".env.local")
	})
	return Config{
		UserAgent:  os.Getenv("NS_USER_AGENT"),
		Nation:     os.Getenv("NS_NATION"),
		APIURL:     getenv("NS_API_URL", DefaultAPIURL),
		SiteURL:    strings.TrimRight(getenv("NS_SITE_URL", DefaultSiteURL), "/"),
		OutputPath: getenv("DUPECHECK_OUTPUT", DefaultOutput),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
