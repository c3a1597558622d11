package configuration

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dr-lamia/med-nexus-portal/logger"
)

// LatencyScale multiplies every simulated-latency sleep. The portal fakes
// network delays the way the original mock backend did; tests set this to 0.
var LatencyScale = 1.0

// LoadEnv reads the .env file if present. Missing file is fine in
// containerized deployments where the environment is injected directly.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		logger.WithComponent("configuration").Info("no .env file found, using process environment")
	}

	if scale := os.Getenv("LATENCY_SCALE"); scale != "" {
		if parsed, err := strconv.ParseFloat(scale, 64); err == nil && parsed >= 0 {
			LatencyScale = parsed
		}
	}
}

// Port returns the HTTP listen address.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

// JWTSecret returns the session token signing key.
func JWTSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("med-nexus-dev-secret")
}

// SessionTTL is how long an idle session survives in the store.
func SessionTTL() time.Duration {
	return durationEnv("SESSION_TTL_MINUTES", 24*60)
}

// ConsultationTTL is how long an idle guided consultation or chat session
// survives before the sweeper removes it.
func ConsultationTTL() time.Duration {
	return durationEnv("CONSULTATION_TTL_MINUTES", 60)
}

func durationEnv(key string, defaultMinutes int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return time.Duration(defaultMinutes) * time.Minute
}

// SimulateLatency sleeps for the given base delay scaled by LatencyScale.
func SimulateLatency(base time.Duration) {
	if LatencyScale <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(base) * LatencyScale))
}
