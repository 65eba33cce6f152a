package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/saltclient/client/agent"
	"github.com/cbodonnell/saltclient/client/driver"
	"github.com/cbodonnell/saltclient/client/network"
	"github.com/cbodonnell/saltclient/client/session"
	"github.com/cbodonnell/saltclient/client/world"
	"github.com/cbodonnell/saltclient/pkg/analytics"
	"github.com/cbodonnell/saltclient/pkg/config"
	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/cbodonnell/saltclient/pkg/log"
	"github.com/cbodonnell/saltclient/pkg/repositories"
	"github.com/cbodonnell/saltclient/pkg/version"
	"github.com/google/uuid"
)

const frameInterval = time.Second / 30

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	envFile := flag.String("env", "", "Path to a .env file")
	addr := flag.String("addr", "", "Server address, overrides the config")
	agentMode := flag.String("agent", "", "Agent: bus (interactive) or auto, overrides the config")
	logLevel := flag.String("log-level", "", "Log level, overrides the config")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *agentMode != "" {
		cfg.Session.Agent = *agentMode
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	// stdout is the player's console
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)
	log.Info("Starting client version %s", version.Get())

	if err := run(cfg); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func loadConfig(path string, envFile string) (config.Config, error) {
	if envFile != "" {
		if err := config.LoadEnvFile(envFile); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(cfg config.Config) error {
	ctx := context.Background()
	sessionID := uuid.New()

	opts := session.NewSessionOptions{
		ID: sessionID,
		Dial: network.DialOptions{
			Addr:           cfg.Server.Addr,
			Transport:      network.TransportKind(cfg.Server.Transport),
			Token:          cfg.Server.Token,
			ConnectTimeout: cfg.Session.ConnectTimeout,
		},
		Driver: driver.Config{
			HandshakeTimeout: cfg.Session.HandshakeTimeout,
			ReadTimeout:      cfg.Session.ReadTimeout,
		},
		Agent: session.AgentMode(cfg.Session.Agent),
		Bus: agent.BusOptions{
			ToConsumerCapacity: cfg.Bus.ToConsumerCapacity,
			DropOldestState:    cfg.Bus.Overflow == config.OverflowDropOldestState,
		},
	}

	if cfg.Transcript.DatabaseURL != "" {
		repo, err := repositories.NewRepository(ctx, cfg.Transcript.DatabaseURL, cfg.Transcript.Migrations)
		if err != nil {
			return fmt.Errorf("failed to open transcript repository: %w", err)
		}
		defer repo.Close(ctx)
		opts.Transcripts = repo
		log.Info("Recording transcript %s", sessionID)
	}

	if len(cfg.Analytics.Brokers) > 0 {
		publisher, err := analytics.NewPublisher(cfg.Analytics.Brokers, cfg.Analytics.Topic, sessionID.String())
		if err != nil {
			return fmt.Errorf("failed to create analytics publisher: %w", err)
		}
		defer publisher.Close()
		opts.EventSinks = append(opts.EventSinks, publisher)
	}

	s := session.NewSession(opts)
	if err := s.Start(); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer s.Stop()

	w := world.NewWorld(s.Consumer(), cfg.Bus.MaxMessagesPerTick)
	p := &printer{out: os.Stdout}
	commands := readCommands(os.Stdin)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-signals:
			log.Info("Interrupted, leaving the game")
			return nil
		case line, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			if quit := handleCommand(w, line); quit {
				return nil
			}
		case <-ticker.C:
			if err := w.Update(); err != nil {
				return fmt.Errorf("failed to update world: %w", err)
			}
			p.frame(w)
			if w.Ended() {
				return endReason(w, s)
			}
		}
	}
}

// endReason prefers the error the frame loop saw and falls back to the session's.
func endReason(w *world.World, s *session.Session) error {
	if err := w.Err(); err != nil {
		return err
	}
	<-s.Done()
	return s.Err()
}

// readCommands feeds stdin lines to the frame loop without blocking it.
func readCommands(in *os.File) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func handleCommand(w *world.World, line string) (quit bool) {
	cmd, err := ParseCommand(line)
	if err != nil {
		fmt.Println(err)
		return false
	}

	switch cmd.Kind {
	case CommandQuit:
		return true
	case CommandHelp:
		fmt.Println(usage)
	case CommandState:
		printView(os.Stdout, w.View())
	case CommandEndTurn:
		err = w.EndTurn()
	case CommandSummon:
		err = w.SummonFromHand(cmd.Card, types.NewBoardPos(w.PlayerID(), cmd.Row, cmd.Index))
	case CommandSlot:
		owner := w.PlayerID()
		if cmd.Opponent {
			owner = w.OpponentID()
		}
		err = w.SelectSlot(types.NewBoardPos(owner, cmd.Row, cmd.Index))
	}
	if err != nil {
		fmt.Println(err)
	}
	return false
}
