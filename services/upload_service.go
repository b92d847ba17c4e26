package services

import (
	"context"
	"fmt"
	"time"

	"echo-analytics/etl"
	"echo-analytics/logger"
	"echo-analytics/models"
	"echo-analytics/repositories"
	"echo-analytics/schema"
)

// IngestResult is the per-batch outcome: every input record ends up either
// inserted or routed to the duplicates collection, never silently dropped.
type IngestResult struct {
	FileName   string `json:"file_name"`
	Inserted   int    `json:"inserted"`
	Duplicates int    `json:"duplicates"`
}

// UploadService turns an uploaded file into canonical records and stores
// them with deduplication on the Link natural key.
type UploadService struct {
	reg        *schema.Registry
	mapper     *etl.Mapper
	uploads    *repositories.UploadRepository
	duplicates *repositories.DuplicateRepository
	metadata   *repositories.MetadataRepository
	tz         *time.Location
}

func NewUploadService(
	reg *schema.Registry,
	uploads *repositories.UploadRepository,
	duplicates *repositories.DuplicateRepository,
	metadata *repositories.MetadataRepository,
	timezone string,
) (*UploadService, error) {
	tz, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading upload timezone %q: %w", timezone, err)
	}
	return &UploadService{
		reg:        reg,
		mapper:     etl.NewMapper(reg),
		uploads:    uploads,
		duplicates: duplicates,
		metadata:   metadata,
		tz:         tz,
	}, nil
}

// HandleFile parses, detects, maps and ingests one uploaded file.
func (s *UploadService) HandleFile(ctx context.Context, fileName string, data []byte) (IngestResult, error) {
	table, err := etl.ReadTable(fileName, data)
	if err != nil {
		return IngestResult{}, err
	}

	source, err := s.reg.Detect(table.Columns)
	if err != nil {
		return IngestResult{}, err
	}
	logger.Log.Infof("detected source %q for file %s", source, fileName)

	posts, err := s.mapper.Map(table, source)
	if err != nil {
		return IngestResult{}, err
	}

	return s.Ingest(ctx, posts, fileName)
}

// Ingest stores canonical records for one file: write the batch metadata,
// attach its id to every record, bulk-insert unordered, and route unique-key
// conflicts to the duplicates collection.
func (s *UploadService) Ingest(ctx context.Context, posts []models.CanonicalPost, fileName string) (IngestResult, error) {
	result := IngestResult{FileName: fileName}

	if err := s.uploads.EnsureLinkIndex(ctx); err != nil {
		return result, fmt.Errorf("ensuring link index: %w", err)
	}

	now := time.Now().UTC()
	metaID, err := s.metadata.Insert(ctx, models.UploadMeta{
		FileName:       fileName,
		UploadDate:     now.Format("02-01-2006"),
		UploadTime:     now.In(s.tz).Format("15:04:05"),
		TotalDataCount: len(posts),
	})
	if err != nil {
		return result, fmt.Errorf("inserting upload metadata: %w", err)
	}

	for i := range posts {
		posts[i].MetadataID = metaID
	}

	inserted, duplicateIdx, err := s.uploads.InsertManyUnordered(ctx, posts)
	if err != nil {
		return result, err
	}
	result.Inserted = inserted

	for _, idx := range duplicateIdx {
		if err := s.duplicates.Insert(ctx, posts[idx]); err != nil {
			return result, fmt.Errorf("routing duplicate record: %w", err)
		}
		result.Duplicates++
	}
	if result.Duplicates > 0 {
		logger.Log.Infof("routed %d duplicate records from %s", result.Duplicates, fileName)
	}

	return result, nil
}
