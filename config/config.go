package config

import (
	"os"
	"time"
)

// Settings is the environment-derived configuration, read once at startup.
type Settings struct {
	Port        string
	RedisAddr   string
	RedisPass   string
	MongoURI    string
	DBName      string
	SubmitDelay time.Duration
}

func Load() Settings {
	s := Settings{
		Port:        getenv("PORT", "8080"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      getenv("DB", "realestate"),
		SubmitDelay: time.Second,
	}

	if raw := os.Getenv("SUBMIT_DELAY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d >= 0 {
			s.SubmitDelay = d
		}
	}
	return s
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
