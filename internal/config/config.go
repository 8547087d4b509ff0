package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
			if err = viper.MergeInConfig(); err != nil {
				GetLogger().Errorw("Error merging test config file", "error", err)
			}
		}

		_ = godotenv.Load(filepath.Join(root, ".env"))
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}

func GetServerPort() string {
	initConfig()
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	port := viper.GetString("server.port")
	if port == "" {
		port = "8080"
	}
	return port
}

// GetServerTimeout returns the named server timeout as a duration, defaulting to 15s.
func GetServerTimeout(key string) time.Duration {
	initConfig()
	return durationOrDefault("server."+key, 15*time.Second)
}

func GetGeocodingURL() string {
	initConfig()
	return viper.GetString("openmeteo.geocoding_url")
}

func GetForecastURL() string {
	initConfig()
	return viper.GetString("openmeteo.forecast_url")
}

func GetRedisAddr() string {
	initConfig()
	return viper.GetString("redis.addr")
}

func GetForecastCacheExpiration() time.Duration {
	initConfig()
	return durationOrDefault("cache.forecast_expiration", 10*time.Minute)
}

func GetGeocodeCacheExpiration() time.Duration {
	initConfig()
	return durationOrDefault("cache.geocode_expiration", 24*time.Hour)
}

// GetSuggestDebounce returns the autocomplete debounce window. Defaults to 280ms.
func GetSuggestDebounce() time.Duration {
	initConfig()
	return durationOrDefault("suggest.debounce", 280*time.Millisecond)
}

// GetSuggestMinQueryLen returns the minimum trimmed query length that triggers
// an autocomplete lookup. Defaults to 2.
func GetSuggestMinQueryLen() int {
	initConfig()
	n := viper.GetInt("suggest.min_query_len")
	if n == 0 {
		n = 2
	}
	return n
}

func GetChartAssetURL() string {
	initConfig()
	return viper.GetString("chart.asset_url")
}

func GetChartProbeTimeout() time.Duration {
	initConfig()
	return durationOrDefault("chart.probe_timeout", 5*time.Second)
}

func GetDefaultPlace() string {
	initConfig()
	place := viper.GetString("dashboard.default_place")
	if place == "" {
		place = "Kathmandu"
	}
	return place
}

func GetWebDir() string {
	initConfig()
	dir := viper.GetString("web.dir")
	if dir == "" {
		dir = "web"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	root, err := getProjectRoot()
	if err != nil {
		return dir
	}
	return filepath.Join(root, dir)
}

// GetRateLimiterCleanupTimeout returns the rate limiter cleanup timeout as a time.Duration.
// Defaults to 3m if not set or invalid.
func GetRateLimiterCleanupTimeout() time.Duration {
	initConfig()
	return durationOrDefault("rate_limiter.cleanup_timeout", 3*time.Minute)
}

// GetGlobalRateLimiterConfig returns the rate and burst for the global rate limiter from config.
func GetGlobalRateLimiterConfig() (rate float64, burst int) {
	initConfig()
	rate = viper.GetFloat64("rate_limiter.global.rate")
	if rate == 0 {
		rate = 10
	}
	burst = viper.GetInt("rate_limiter.global.burst")
	if burst == 0 {
		burst = 10
	}
	return
}

// GetParamRateLimiterConfig returns the rate and burst for the param rate limiter from config.
func GetParamRateLimiterConfig() (rate float64, burst int) {
	initConfig()
	rate = viper.GetFloat64("rate_limiter.param.rate")
	if rate == 0 {
		rate = 2
	}
	burst = viper.GetInt("rate_limiter.param.burst")
	if burst == 0 {
		burst = 2
	}
	return
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	durStr := viper.GetString(key)
	if durStr == "" {
		return fallback
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return fallback
	}
	return dur
}
