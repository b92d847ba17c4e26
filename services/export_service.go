package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"echo-analytics/repositories"
)

// preferredColumns fixes the leading column order of the export; any other
// fields found on the documents follow alphabetically.
var preferredColumns = []string{
	"Publish Date / Time", "Company Name", "Social Media Channel", "Handle Name",
	"Message", "Link", "Docu_Link", "Image", "Post Type",
	"Like / applause", "Comment / conversation", "Share / Repost / amplification",
	"Engagement", "engagement_bucket",
	"Video Views", "Video Duration", "Video Duration Bucket",
	"audience", "Themes", "Subthemes", "Subsubthemes", "Tag", "engagementScore",
}

// ExportService renders the enriched posts collection as a spreadsheet.
type ExportService struct {
	posts *repositories.PostRepository
}

func NewExportService(posts *repositories.PostRepository) *ExportService {
	return &ExportService{posts: posts}
}

// ExportXLSX builds an xlsx workbook from every enriched post. The internal
// metadata_id reference is not part of the export.
func (s *ExportService) ExportXLSX(ctx context.Context) ([]byte, int, error) {
	docs, err := s.posts.FindAllRaw(ctx)
	if err != nil {
		return nil, 0, err
	}
	if len(docs) == 0 {
		return nil, 0, nil
	}

	columns := exportColumns(docs)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for c, col := range columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return nil, 0, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, 0, err
		}
	}
	for r, doc := range docs {
		for c, col := range columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, 0, err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(doc[col])); err != nil {
				return nil, 0, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), len(docs), nil
}

// exportColumns is the preferred order plus whatever else the documents
// carry (entity columns, calendar sub-document), minus internal fields.
func exportColumns(docs []bson.M) []string {
	seen := map[string]bool{"_id": true, "metadata_id": true}
	var columns []string
	for _, col := range preferredColumns {
		seen[col] = true
		columns = append(columns, col)
	}

	var extra []string
	for _, doc := range docs {
		for key := range doc {
			if !seen[key] {
				seen[key] = true
				extra = append(extra, key)
			}
		}
	}
	sort.Strings(extra)
	return append(columns, extra...)
}

func cellValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return val.Hex()
	case string, bool, int, int32, int64, float32, float64:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
