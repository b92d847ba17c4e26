// Package enrich runs the asynchronous enrichment workflow over newly
// ingested records: classification, near-duplicate tagging, entity
// extraction, scoring and the final commit to the posts collection.
package enrich

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"echo-analytics/classify"
	"echo-analytics/dedupe"
	"echo-analytics/entities"
	"echo-analytics/logger"
	"echo-analytics/models"
	"echo-analytics/repositories"
)

// Summary reports what one pipeline run did.
type Summary struct {
	Fetched             int `json:"fetched"`
	Inserted            int `json:"inserted"`
	DroppedNoEntities   int `json:"dropped_no_entities"`
	DroppedEmptyMessage int `json:"dropped_empty_message"`
}

// Options tunes one pipeline run.
type Options struct {
	DuplicateThreshold float64
	EntityBatchSize    int
	EntityWorkers      int
}

// Pipeline orchestrates the enrichment workflow. It owns the posts
// collection exclusively; concurrent runs are not coordinated, so the caller
// must ensure at most one run at a time.
type Pipeline struct {
	uploads    *repositories.UploadRepository
	posts      *repositories.PostRepository
	keywords   *repositories.KeywordRepository
	classifier classify.Classifier
	extractor  entities.Extractor
	video      *VideoSynthesizer
	opts       Options
}

func NewPipeline(
	uploads *repositories.UploadRepository,
	posts *repositories.PostRepository,
	keywords *repositories.KeywordRepository,
	classifier classify.Classifier,
	extractor entities.Extractor,
	video *VideoSynthesizer,
	opts Options,
) *Pipeline {
	if opts.DuplicateThreshold == 0 {
		opts.DuplicateThreshold = dedupe.DefaultThreshold
	}
	return &Pipeline{
		uploads:    uploads,
		posts:      posts,
		keywords:   keywords,
		classifier: classifier,
		extractor:  extractor,
		video:      video,
		opts:       opts,
	}
}

// Run executes one enrichment pass. Everything between fetching new entries
// and the single bulk insert happens in memory, so a failure at any step
// leaves the posts collection untouched.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	newEntries, err := p.fetchNewEntries(ctx)
	if err != nil {
		return summary, fmt.Errorf("fetching new entries: %w", err)
	}
	if len(newEntries) == 0 {
		logger.Log.Info("no new entries found, exiting workflow")
		return summary, nil
	}
	summary.Fetched = len(newEntries)
	logger.Log.Infof("number of new entries fetched: %d", len(newEntries))

	rules, err := p.keywords.FindAll(ctx)
	if err != nil {
		return summary, fmt.Errorf("loading keyword rules: %w", err)
	}

	enriched := make([]models.EnrichedPost, len(newEntries))
	rawMessages := make([]string, len(newEntries))
	cleaned := make([]string, len(newEntries))
	for i, entry := range newEntries {
		rawMessages[i] = entry.Message
		cleaned[i] = classify.CleanText(entry.Message)

		transformID := entry.ID
		entry.ID = primitive.NilObjectID
		entry.Message = cleaned[i]

		enriched[i] = models.EnrichedPost{
			CanonicalPost:   entry,
			TransformDataID: transformID,
			Tag:             true,
		}
	}

	// Keyword overrides first; only unmatched records reach the model.
	for i := range enriched {
		label, matched := classify.MatchKeyword(cleaned[i], rules)
		if !matched {
			label, err = p.classifier.Predict(ctx, cleaned[i])
			if err != nil {
				return summary, fmt.Errorf("predicting labels: %w", err)
			}
		}
		enriched[i].Themes = label.Theme
		enriched[i].Subthemes = label.Subtheme
		enriched[i].Subsubthemes = label.Subsubtheme
	}

	for i := range enriched {
		cal, err := DeriveCalendarFields(enriched[i].PublishDateTime)
		if err != nil {
			return summary, err
		}
		enriched[i].Timestamp = cal
	}

	for i, canonical := range dedupe.Tag(cleaned, p.opts.DuplicateThreshold) {
		enriched[i].Tag = canonical
	}

	// The extractor sees the raw message, not the cleaned one; hashtags and
	// URLs are exactly what it is there to find.
	entityMaps := entities.ProcessBatches(ctx, p.extractor, rawMessages, p.opts.EntityBatchSize, p.opts.EntityWorkers)

	surviving := enriched[:0]
	for i := range enriched {
		if entityMaps[i] == nil {
			summary.DroppedNoEntities++
			continue
		}
		if enriched[i].Message == "" {
			summary.DroppedEmptyMessage++
			continue
		}
		enriched[i].Entities = map[string]*string(entityMaps[i])

		enriched[i].EngagementScore = EngagementScore(enriched[i].Engagement, enriched[i].Audience)
		enriched[i].EngagementBucket = trimBucketSuffix(enriched[i].EngagementBucket)
		p.video.Backfill(&enriched[i])

		surviving = append(surviving, enriched[i])
	}

	if len(surviving) == 0 {
		logger.Log.Info("no valid data to insert, skipping commit")
		return summary, nil
	}

	inserted, err := p.posts.InsertMany(ctx, surviving)
	if err != nil {
		return summary, fmt.Errorf("inserting enriched posts: %w", err)
	}
	summary.Inserted = inserted
	logger.Log.Infof("data processing workflow completed successfully, inserted %d posts", inserted)
	return summary, nil
}

// fetchNewEntries is the set difference between uploaded records and already
// enriched ones: two scans, not one query per record.
func (p *Pipeline) fetchNewEntries(ctx context.Context) ([]models.CanonicalPost, error) {
	processed, err := p.posts.DistinctTransformIDs(ctx)
	if err != nil {
		return nil, err
	}
	return p.uploads.FindNotProcessed(ctx, processed)
}

// trimBucketSuffix reduces "0-100 Engagement" to "0-100" for the stored
// posts; the reporting layer re-labels buckets itself.
func trimBucketSuffix(bucket string) string {
	return strings.TrimSpace(strings.ReplaceAll(bucket, "Engagement", ""))
}
