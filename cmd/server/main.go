package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/srinipusuluri/sfdc-adminX/internal/audit"
	chatrepo "github.com/srinipusuluri/sfdc-adminX/internal/chat/repo"
	chatrest "github.com/srinipusuluri/sfdc-adminX/internal/chat/rest"
	chatservice "github.com/srinipusuluri/sfdc-adminX/internal/chat/service"
	"github.com/srinipusuluri/sfdc-adminX/internal/config"
	"github.com/srinipusuluri/sfdc-adminX/internal/interpreter"
	"github.com/srinipusuluri/sfdc-adminX/internal/llm"
	"github.com/srinipusuluri/sfdc-adminX/internal/router"
	"github.com/srinipusuluri/sfdc-adminX/internal/salesforce"
	"github.com/srinipusuluri/sfdc-adminX/internal/validator"
	"github.com/srinipusuluri/sfdc-adminX/pkg/db"
)

func main() {
	// Context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// Initialize config
	cfg := config.MustLoad()

	// Connect to DB
	DB, err := db.OpenDB(ctx, cfg.DB)
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("failed to connect to DB")
	}

	// Initialize validator
	v := validator.New()

	// Initialize external clients
	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Timeout)
	sfClient := salesforce.NewClient(
		cfg.Salesforce.InstanceURL,
		cfg.Salesforce.ClientID,
		cfg.Salesforce.ClientSecret,
		cfg.Salesforce.APIVersion,
		cfg.Salesforce.Timeout,
	)

	if err := sfClient.Connect(ctx); err != nil {
		log.Logger.Fatal().Err(err).Msg("failed to connect to Salesforce")
	}

	// Initialize chat history repository and audit log
	historyRepo := chatrepo.New(DB)
	auditLog := audit.New(cfg.Audit.LogFile)

	// Initialize interpreter and chat service
	parser := interpreter.NewModelParser(llmClient)
	chat := chatservice.NewChat(parser, sfClient, historyRepo, auditLog)

	// Initialize chat handler
	chatHandler := chatrest.NewChatHandler(chat, sfClient, v)

	// Initialize Gin engine and set routes
	engine := router.New(chatHandler)

	// Initialize and start http server
	server := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: engine,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			log.Logger.Fatal().Err(err).Msg("failed to listen start http server")
		}
	}()

	<-ctx.Done()

	// Graceful shutdown
	withTimeout, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := server.Shutdown(withTimeout); err != nil {
		log.Logger.Error().Err(err).Msg("server shutdown failed")
	}

	DB.Close()
}
