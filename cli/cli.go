package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Context carries the process identity and logger for one daemon run.
type Context struct {
	ID     string
	Logger *zap.Logger
}

// Bootstrap assigns the node id and builds the logger.
func Bootstrap(cmd *cobra.Command) *Context {
	id := uuid.New().String()
	var logger *zap.Logger
	var err error
	opts := []zap.Option{
		zap.Fields(zap.String("node_id", id)),
	}
	if os.Getenv("ENABLE_PRETTY_LOG") == "true" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		logger, err = zap.NewProduction(opts...)
	}
	if err != nil {
		panic(err)
	}
	if viper.GetBool("pprof") {
		go func() {
			logger.Info("pprof endpoint is running on port 8080")
			http.ListenAndServe(":8080", nil)
		}()
	}
	return &Context{
		ID:     id,
		Logger: logger,
	}
}

// ServeMonitoring exposes prometheus metrics, a health probe and the
// operator status map over HTTP.
func (ctx *Context) ServeMonitoring(port int, health func() string, status func() map[string]string, extra map[string]http.HandlerFunc) {
	mux := http.NewServeMux()
	for pattern, handler := range extra {
		mux.HandleFunc(pattern, handler)
	}
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		state := health()
		if state != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(map[string]string{"status": state})
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(status())
	})
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
		if err != nil {
			ctx.Logger.Error("failed to serve monitoring endpoint", zap.Error(err))
		}
	}()
}

// WaitSignals blocks until the process receives a termination signal,
// then runs the shutdown sequence.
func (ctx *Context) WaitSignals(onShutdown func()) {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	<-sigc
	ctx.Logger.Info("received termination signal")
	onShutdown()
	ctx.Logger.Sync()
}
