package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/hacsa-board/hacsa-cli/internal/config"
	"github.com/hacsa-board/hacsa-cli/internal/controller"
	"github.com/hacsa-board/hacsa-cli/internal/session"
	"github.com/hacsa-board/hacsa-cli/internal/transport"
	pkglogger "github.com/hacsa-board/hacsa-cli/pkg/logger"
)

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}

	configPath := config.Path()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pkglogger.InitStructured(env, cfg.Log.Level)
	pkglogger.GetLogger().Info().
		Str("env", env).
		Strs("dotenv", dotenvFiles).
		Str("config", configPath).
		Str("server", cfg.Server.URL).
		Msg("starting hacsa client")

	client, err := transport.New(transport.Config{
		BaseURL: cfg.Server.URL,
		Timeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		log.Fatalf("Failed to create transport: %v", err)
	}

	term := newTerminal()
	sess := session.NewManager(client)
	client.SetAuthFailureHook(sess.AuthFailureHook(term, term))

	comments := controller.NewComments(client, sess, term)
	app := &app{
		cfg:       cfg,
		term:      term,
		sess:      sess,
		board:     controller.NewBoard(client, cfg.Board.PageSize),
		comments:  comments,
		detail:    controller.NewDetail(client, sess, comments, term, term),
		authoring: controller.NewAuthoring(client, sess, term, term),
	}
	term.onNavigate = app.handleNavigate

	ctx := context.Background()

	// Identity-gated rendering waits for this; static content does not.
	sess.ResolveCurrentIdentity(ctx)

	app.run(ctx)
}
