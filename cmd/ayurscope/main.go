package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/ayurscope/ayurscope/pkg/chat"
	"github.com/ayurscope/ayurscope/pkg/config"
	"github.com/ayurscope/ayurscope/pkg/content"
	"github.com/ayurscope/ayurscope/pkg/domain"
	"github.com/ayurscope/ayurscope/pkg/feed"
	"github.com/ayurscope/ayurscope/pkg/llm"
	"github.com/ayurscope/ayurscope/pkg/repository"
	"github.com/ayurscope/ayurscope/pkg/scheduler"
	"github.com/ayurscope/ayurscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address override"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads configuration, wires dependencies and runs the server until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	var secrets []string
	if cfg.LLM.APIKey != "" {
		secrets = append(secrets, cfg.LLM.APIKey)
	}
	setupLog(opts.Debug, secrets...)
	log.Printf("[INFO] starting ayurscope version %s", revision)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	for _, f := range cfg.Sources.Feeds {
		src := &domain.Source{
			URL:           f.URL,
			Title:         f.Title,
			FetchInterval: time.Duration(f.Interval) * time.Minute,
			Enabled:       true,
		}
		if err := repos.Source.Ensure(ctx, src); err != nil {
			return fmt.Errorf("failed to seed source %s: %w", f.URL, err)
		}
	}
	if len(cfg.Sources.Feeds) > 0 {
		log.Printf("[INFO] seeded %d configured sources", len(cfg.Sources.Feeds))
	}

	userAgent := "ayurscope/" + revision
	sched := scheduler.NewScheduler(scheduler.Params{
		Sources:        repos.Source,
		Articles:       repos.Article,
		Parser:         feed.NewParser(30*time.Second, userAgent),
		Extractor:      content.NewHTTPExtractor(30*time.Second, userAgent),
		UpdateInterval: time.Duration(cfg.Sources.UpdateInterval) * time.Minute,
		MaxWorkers:     cfg.Sources.MaxWorkers,
	})
	sched.Start(ctx)
	defer sched.Stop()

	chatSvc := chat.NewService(chat.Params{
		Profiles:      repos.Profile,
		Consultations: repos.Consultation,
		Articles:      repos.Article,
		Advisor:       llm.NewAdvisor(cfg.GetLLMConfig()),
		Config:        cfg.GetChatConfig(),
		SystemPrompt:  cfg.LLM.SystemPrompt,
	})

	srv := server.New(server.Params{
		Config:        cfg,
		Chat:          chatSvc,
		Profiles:      repos.Profile,
		Consultations: repos.Consultation,
		Articles:      repos.Article,
		Version:       revision,
		Debug:         opts.Debug,
	})

	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
