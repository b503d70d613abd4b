package main

import (
	"expvar"
	"io"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/gorilla/handlers"
	"github.com/lomik/zapwriter"
	"go.uber.org/zap"

	"github.com/ChuckFork/ZedGraph/cache"
	"github.com/ChuckFork/ZedGraph/chart/render"
)

var apiMetrics = struct {
	Requests          *expvar.Int
	RenderRequests    *expvar.Int
	RenderErrors      *expvar.Int
	RenderCacheHits   *expvar.Int
	RenderCacheMisses *expvar.Int
}{
	Requests:          expvar.NewInt("requests"),
	RenderRequests:    expvar.NewInt("render_requests"),
	RenderErrors:      expvar.NewInt("render_errors"),
	RenderCacheHits:   expvar.NewInt("render_cache_hits"),
	RenderCacheMisses: expvar.NewInt("render_cache_misses"),
}

const maxDocumentSize = 4 << 20

// renderHandler accepts a YAML chart document in the request body and
// replies with the rendered PNG. Render parameters come in as query
// arguments.
func renderHandler(w http.ResponseWriter, r *http.Request) {
	t0 := time.Now()
	logger := zapwriter.Logger("render")

	apiMetrics.Requests.Add(1)
	apiMetrics.RenderRequests.Add(1)

	if r.Method != http.MethodPost {
		http.Error(w, "use POST", http.StatusMethodNotAllowed)
		return
	}

	doc, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		apiMetrics.RenderErrors.Add(1)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := r.URL.Query()
	key := cache.RenderKey(doc, form)

	if b, err := config.queryCache.Get(key); err == nil {
		apiMetrics.RenderCacheHits.Add(1)
		writePNG(w, b)
		return
	}
	apiMetrics.RenderCacheMisses.Add(1)

	params, err := render.GetPictureParams(form)
	if err != nil {
		apiMetrics.RenderErrors.Add(1)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := parseDocument(doc, ".")
	if err != nil {
		apiMetrics.RenderErrors.Add(1)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := render.Render(p, params)
	if err != nil {
		apiMetrics.RenderErrors.Add(1)
		logger.Error("render failed",
			zap.Error(err),
			zap.Duration("runtime", time.Since(t0)),
		)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	config.queryCache.Set(key, b, config.Cache.DefaultTimeoutSec)

	logger.Info("request served",
		zap.String("title", p.Title),
		zap.Int("series", len(p.Curves)),
		zap.Int("bytes", len(b)),
		zap.Duration("runtime", time.Since(t0)),
	)
	writePNG(w, b)
}

func writePNG(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Write(b)
}

func initHandlers() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/render", renderHandler)
	mux.HandleFunc("/render/", renderHandler)
	mux.Handle("/debug/vars", expvar.Handler())

	var handler http.Handler = mux
	handler = handlers.CompressHandler(handler)
	handler = handlers.CombinedLoggingHandler(accessLogWriter{}, handler)
	handler = handlers.ProxyHeaders(handler)
	return handler
}

// accessLogWriter routes the access log through the shared logger
// setup instead of a separate file.
type accessLogWriter struct{}

func (accessLogWriter) Write(p []byte) (int, error) {
	zapwriter.Logger("access").Info(string(p))
	return len(p), nil
}
