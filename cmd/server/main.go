package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"memorygame-server/internal/config"
	"memorygame-server/internal/mux"
	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/playable/memory"
	"memorygame-server/pkg/room"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), gameOptions(), config.Instance().Game.IdleTimeout)
	pitBoss.StartShift()
	defer pitBoss.EndShift()

	c := cors.New(cors.Options{
		AllowedOrigins: config.Instance().CORS.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, pitBoss))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil {
		logrus.WithError(err).Error("server stopped")
	}
}

// gameOptions returns the template every hosted game is created from
func gameOptions() memory.Options {
	cfg := config.Instance().Game

	opts := memory.DefaultOptions()
	opts.RevealDelay = cfg.RevealDelay
	opts.TickInterval = cfg.TickInterval

	if len(cfg.Symbols) > 0 {
		opts.Symbols = deck.SymbolsFromStrings(cfg.Symbols)
		if err := memory.ValidateSymbols(opts.Symbols); err != nil {
			logrus.WithError(err).Fatal("invalid game symbols in configuration")
		}
	}

	return opts
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
