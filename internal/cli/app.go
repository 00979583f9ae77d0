package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/meeting-flow/internal/agent"
	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/crew"
	"github.com/nguyentantai21042004/meeting-flow/internal/llm"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/internal/mailer"
	"github.com/nguyentantai21042004/meeting-flow/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-flow/internal/processor"
	"github.com/nguyentantai21042004/meeting-flow/internal/report"
	"github.com/nguyentantai21042004/meeting-flow/internal/session"
	"github.com/nguyentantai21042004/meeting-flow/internal/transcribe"
	"github.com/nguyentantai21042004/meeting-flow/pkg/executor"
)

// app holds what every command needs: config, env file values, logger and the session store.
type app struct {
	cfg       *config.Config
	env       config.Env
	log       logger.Logger
	exec      executor.Executor
	store     session.Store
	presenter report.Presenter
	session   string
}

func loadApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	env, err := config.ReadEnvFile(cfg.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}

	store, err := session.Open(cfg.Paths.StateDB)
	if err != nil {
		return nil, err
	}

	name := sessionName
	if name == "" {
		name = cfg.Session.Name
	}

	return &app{
		cfg:       cfg,
		env:       env,
		log:       logger.New(cfg.Logging.Level),
		exec:      executor.New(),
		store:     store,
		presenter: report.NewTerminal(os.Stdout),
		session:   name,
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn(context.Background(), "Failed to close state db: %v", err)
	}
}

// processor wires a Processor able to run the steps in flags. The LLM client
// is created only when a model-backed step is enabled.
func (a *app) processor(flags pipeline.Flags) (processor.Processor, error) {
	var caps pipeline.Capabilities

	if flags.Summarize || flags.Actions || flags.Email {
		client, err := llm.New(a.cfg, a.env, a.log)
		if err != nil {
			return nil, fmt.Errorf("init llm: %w", err)
		}
		caps.Summarizer = agent.NewSummarizer(client)
		caps.ActionItems = agent.NewActionItemExtractor(client)
		caps.EmailDrafter = agent.NewEmailDrafter(client)
	}

	sender := mailer.NewSMTP(a.cfg.SMTP.Host, a.cfg.SMTP.Port)
	caps.Mailer = func(creds mailer.Credentials) crew.Agent {
		return agent.NewMailer(sender, creds)
	}

	t, err := transcribe.New(a.cfg, a.exec, a.env, a.log)
	if err != nil {
		return nil, fmt.Errorf("init transcriber: %w", err)
	}

	return processor.New(a.cfg, processor.Deps{
		Registry:    pipeline.NewRegistry(caps),
		Executor:    pipeline.NewExecutor(a.log, a.cfg.Logging.Verbose),
		Transcriber: t,
		Presenter:   a.presenter,
		Store:       a.store,
	}, a.log), nil
}
