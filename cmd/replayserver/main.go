package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cbodonnell/saltclient/pkg/auth/providers"
	"github.com/cbodonnell/saltclient/pkg/log"
	"github.com/cbodonnell/saltclient/pkg/replay"
	"github.com/cbodonnell/saltclient/pkg/repositories"
	"github.com/cbodonnell/saltclient/pkg/version"
	"github.com/google/uuid"
)

func main() {
	port := flag.Int("port", 9000, "Port to listen on")
	scriptPath := flag.String("script", "", "Path to a JSON replay script")
	transcriptURL := flag.String("transcript-url", "", "Transcript database to replay from (sqlite://... or postgresql://...)")
	migrations := flag.String("migrations", "migrations", "Migrations directory for the transcript database")
	sessionID := flag.String("session", "", "Recorded session to replay, defaults to the latest")
	firebaseProject := flag.String("firebase-project", "", "Firebase project id, enables token verification")
	firebaseAPIKey := flag.String("firebase-api-key", "", "Firebase API key")
	token := flag.String("token", "", "Static bearer token(s) to accept, comma separated")
	certFile := flag.String("tls-cert", "", "TLS certificate file")
	keyFile := flag.String("tls-key", "", "TLS key file")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)
	log.Info("Starting replay server version %s", version.Get())

	ctx := context.Background()

	script, err := loadScript(ctx, *scriptPath, *transcriptURL, *migrations, *sessionID)
	if err != nil {
		log.Error("Failed to load script: %v", err)
		os.Exit(1)
	}
	log.Info("Loaded script %q with %d steps", script.Name, len(script.Steps))

	var authProvider providers.AuthProvider
	switch {
	case *firebaseProject != "":
		authProvider, err = providers.NewFirebaseAuthProvider(ctx, *firebaseProject, *firebaseAPIKey)
		if err != nil {
			log.Error("Failed to create Firebase auth provider: %v", err)
			os.Exit(1)
		}
		log.Info("Verifying tokens with Firebase project %s", *firebaseProject)
	case *token != "":
		tokens := make(map[string]string)
		for i, t := range strings.Split(*token, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tokens[t] = fmt.Sprintf("static-%d", i)
			}
		}
		authProvider = providers.NewStaticAuthProvider(tokens)
		log.Info("Accepting %d static token(s)", len(tokens))
	}

	var tls *replay.TLSConfig
	if *certFile != "" && *keyFile != "" {
		tls = &replay.TLSConfig{
			CertFile: *certFile,
			KeyFile:  *keyFile,
		}
	}

	server := replay.NewServer(replay.NewServerOptions{
		Port:         *port,
		Script:       script,
		AuthProvider: authProvider,
		TLS:          tls,
	})
	go server.Start()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	<-signals

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}

func loadScript(ctx context.Context, path, transcriptURL, migrations, rawSessionID string) (*replay.Script, error) {
	if path != "" {
		return replay.LoadScript(path)
	}
	if transcriptURL == "" {
		return nil, fmt.Errorf("either -script or -transcript-url is required")
	}

	var sessionID uuid.UUID
	if rawSessionID != "" {
		parsed, err := uuid.Parse(rawSessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse session id: %w", err)
		}
		sessionID = parsed
	}

	repo, err := repositories.NewRepository(ctx, transcriptURL, migrations)
	if err != nil {
		return nil, err
	}
	defer repo.Close(ctx)

	return replay.LoadTranscriptScript(ctx, repo, sessionID)
}
