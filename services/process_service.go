package services

import (
	"context"
	"math/rand"
	"time"

	"echo-analytics/classify"
	"echo-analytics/config"
	"echo-analytics/db"
	"echo-analytics/enrich"
	"echo-analytics/entities"
	"echo-analytics/repositories"
	"echo-analytics/schema"
)

// ProcessService builds and runs one enrichment pipeline per invocation,
// mirroring the one-session-per-workflow-run model. Collaborator clients are
// created at run time so the server can start without LLM credentials.
type ProcessService struct {
	reg *schema.Registry
}

func NewProcessService(reg *schema.Registry) *ProcessService {
	return &ProcessService{reg: reg}
}

func (s *ProcessService) Run(ctx context.Context) (enrich.Summary, error) {
	classifier, err := classify.NewGeminiClassifier(ctx)
	if err != nil {
		return enrich.Summary{}, err
	}
	extractor, err := entities.NewGeminiExtractor(ctx, s.reg.EntityTypes)
	if err != nil {
		return enrich.Summary{}, err
	}

	cfg := config.GetConfig().Pipeline
	d := db.Database()
	pipeline := enrich.NewPipeline(
		repositories.NewUploadRepository(d),
		repositories.NewPostRepository(d),
		repositories.NewKeywordRepository(d),
		classifier,
		extractor,
		enrich.NewVideoSynthesizer(rand.New(rand.NewSource(time.Now().UnixNano()))),
		enrich.Options{
			DuplicateThreshold: cfg.DuplicateThreshold,
			EntityBatchSize:    cfg.EntityBatchSize,
			EntityWorkers:      cfg.EntityWorkers,
		},
	)
	return pipeline.Run(ctx)
}
