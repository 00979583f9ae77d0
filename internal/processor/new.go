package processor

import (
	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-flow/internal/report"
	"github.com/nguyentantai21042004/meeting-flow/internal/session"
	"github.com/nguyentantai21042004/meeting-flow/internal/transcribe"
)

// Deps are the collaborators of a Processor.
type Deps struct {
	Registry    *pipeline.Registry
	Executor    *pipeline.Executor
	Transcriber transcribe.Transcriber
	Presenter   report.Presenter
	Store       session.Store
	Guard       *session.Guard
}

type implProcessor struct {
	cfg         *config.Config
	registry    *pipeline.Registry
	executor    *pipeline.Executor
	transcriber transcribe.Transcriber
	presenter   report.Presenter
	store       session.Store
	guard       *session.Guard
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, d Deps, log logger.Logger) Processor {
	guard := d.Guard
	if guard == nil {
		guard = session.NewGuard()
	}
	return &implProcessor{
		cfg:         cfg,
		registry:    d.Registry,
		executor:    d.Executor,
		transcriber: d.Transcriber,
		presenter:   d.Presenter,
		store:       d.Store,
		guard:       guard,
		logger:      log,
	}
}
