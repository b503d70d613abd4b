package main

import (
	"bytes"
	"flag"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/lomik/zapwriter"
	"github.com/natefinch/atomic"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ChuckFork/ZedGraph/cache"
	"github.com/ChuckFork/ZedGraph/chart/render"
)

var defaultLoggerConfig = zapwriter.Config{
	Logger:           "",
	File:             "stdout",
	Level:            "info",
	Encoding:         "console",
	EncodingTime:     "iso8601",
	EncodingDuration: "seconds",
}

type cacheConfig struct {
	Type              string   `mapstructure:"type"`
	Size              int      `mapstructure:"size_mb"`
	MemcachedServers  []string `mapstructure:"memcachedServers"`
	DefaultTimeoutSec int32    `mapstructure:"defaultTimeoutSec"`
}

var config = struct {
	Listen         string             `mapstructure:"listen"`
	GraphTemplates string             `mapstructure:"graphTemplates"`
	Cache          cacheConfig        `mapstructure:"cache"`
	Logger         []zapwriter.Config `mapstructure:"logger"`

	queryCache cache.BytesCache
}{
	Listen: "localhost:8081",
	Cache: cacheConfig{
		Type:              "mem",
		DefaultTimeoutSec: 60,
	},
	Logger:     []zapwriter.Config{defaultLoggerConfig},
	queryCache: cache.NullCache{},
}

func setUpViper(logger *zap.Logger, configPath string) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			logger.Fatal("failed to read config", zap.Error(err))
		}
	}

	viper.SetEnvPrefix("ZEDGRAPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("listen", config.Listen)
	viper.SetDefault("cache.type", config.Cache.Type)
	viper.SetDefault("cache.size_mb", 0)
	viper.SetDefault("cache.defaultTimeoutSec", config.Cache.DefaultTimeoutSec)
	viper.SetDefault("cache.memcachedServers", []string{})

	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("failed to parse config", zap.Error(err))
	}
}

func setUpConfig(logger *zap.Logger) {
	if err := zapwriter.ApplyConfig(config.Logger); err != nil {
		logger.Fatal("failed to apply logger config", zap.Error(err))
	}

	switch config.Cache.Type {
	case "memcache":
		if len(config.Cache.MemcachedServers) == 0 {
			logger.Fatal("memcache cache requires cache.memcachedServers")
		}
		logger.Info("memcached configured",
			zap.Strings("servers", config.Cache.MemcachedServers),
		)
		config.queryCache = cache.NewMemcachedCache(config.Cache.MemcachedServers)
	case "mem":
		config.queryCache = cache.NewExpireCache(uint64(config.Cache.Size * 1024 * 1024))
	case "null", "":
		config.queryCache = cache.NullCache{}
	default:
		logger.Fatal("unknown cache type",
			zap.String("cache_type", config.Cache.Type),
		)
	}

	if config.GraphTemplates != "" {
		if err := render.LoadTemplates(logger, config.GraphTemplates); err != nil {
			logger.Fatal("failed to load graph templates",
				zap.String("path", config.GraphTemplates),
				zap.Error(err),
			)
		}
	}
}

// renderFile renders one document from disk and writes the PNG next to
// the caller's chosen path. The write is atomic so a half-rendered
// image never lands under the final name.
func renderFile(logger *zap.Logger, in, out, template string) {
	doc, err := os.ReadFile(in)
	if err != nil {
		logger.Fatal("failed to read document", zap.Error(err))
	}

	form := make(url.Values)
	if template != "" {
		form.Set("template", template)
	}
	params, err := render.GetPictureParams(form)
	if err != nil {
		logger.Fatal("bad parameters", zap.Error(err))
	}

	p, err := parseDocument(doc, filepath.Dir(in))
	if err != nil {
		logger.Fatal("bad document", zap.String("path", in), zap.Error(err))
	}

	b, err := render.Render(p, params)
	if err != nil {
		logger.Fatal("render failed", zap.Error(err))
	}

	if err := atomic.WriteFile(out, bytes.NewReader(b)); err != nil {
		logger.Fatal("failed to write output", zap.String("path", out), zap.Error(err))
	}

	logger.Info("rendered",
		zap.String("in", in),
		zap.String("out", out),
		zap.Int("bytes", len(b)),
	)
}

func main() {
	if err := zapwriter.ApplyConfig([]zapwriter.Config{defaultLoggerConfig}); err != nil {
		log.Fatal("failed to initialize logger with default configuration")
	}
	logger := zapwriter.Logger("main")

	configPath := flag.String("config", "", "Path to the `config file`.")
	in := flag.String("in", "", "Chart document to render; omit to run the HTTP server.")
	out := flag.String("out", "chart.png", "Output path for -in.")
	template := flag.String("template", "", "Graph template name for -in.")
	listen := flag.String("listen", "", "Override the listen address.")
	flag.Parse()

	setUpViper(logger, *configPath)
	setUpConfig(logger)
	if *listen != "" {
		config.Listen = *listen
	}

	if *in != "" {
		renderFile(logger, *in, *out, *template)
		return
	}

	handler := initHandlers()
	logger.Info("listening", zap.String("address", config.Listen))
	if err := http.ListenAndServe(config.Listen, handler); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
