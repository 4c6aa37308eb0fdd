package main

import (
	"fmt"
	"os"

	"github.com/apricot12/concierge/internal/cli"
	"github.com/apricot12/concierge/internal/db"
	"github.com/apricot12/concierge/internal/intelligence"
	"github.com/apricot12/concierge/internal/llm"
	"github.com/apricot12/concierge/internal/nldate"
	"github.com/apricot12/concierge/internal/repository"
	"github.com/apricot12/concierge/internal/service"
	"github.com/apricot12/concierge/internal/session"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; real env always wins.
	_ = godotenv.Load()

	llmCfg := llm.LoadConfig()
	if llmCfg.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}

	database, err := db.OpenMemory()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	eventRepo := repository.NewSQLiteEventRepo(database)

	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOpenAIClient(llmCfg, observer)

	eventSvc := service.NewEventService(eventRepo)
	assistantSvc := service.NewAssistantService(
		eventSvc,
		eventRepo,
		session.NewStore(),
		intelligence.NewIntentService(llmClient),
		intelligence.NewResponderService(llmClient),
		nldate.NewResolver(nldate.NewWhenParser()),
	)

	app := &cli.App{
		Assistant: assistantSvc,
		Events:    eventSvc,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
