package etl

import (
	"fmt"
	"strconv"
	"strings"

	"echo-analytics/models"
	"echo-analytics/schema"
)

// Mapper transforms a detected-format table into canonical records. It is
// stateless per call and performs no I/O.
type Mapper struct {
	reg *schema.Registry
}

func NewMapper(reg *schema.Registry) *Mapper {
	return &Mapper{reg: reg}
}

// Map applies the per-source derivation rules to every row of the table.
// A timestamp that cannot be interpreted aborts the whole file.
func (m *Mapper) Map(t *Table, source schema.Source) ([]models.CanonicalPost, error) {
	switch source {
	case schema.SourceRivalIQ:
		return m.mapRivalIQ(t)
	case schema.SourcePhantomBuster:
		return m.mapPhantomBuster(t)
	}
	return nil, fmt.Errorf("no field mapping for source %q", source)
}

func (m *Mapper) mapRivalIQ(t *Table) ([]models.CanonicalPost, error) {
	posts := make([]models.CanonicalPost, 0, len(t.Rows))
	for i, row := range t.Rows {
		engagement := intCell(row["applause"]) + intCell(row["conversation"]) + intCell(row["amplification"])

		ts, err := FormatTimestamp(row["published_at"])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		company := m.companyName(row["company"])
		posts = append(posts, models.CanonicalPost{
			PublishDateTime:  ts,
			CompanyName:      company,
			Channel:          row["channel"],
			HandleName:       m.handleName(row["presence_handle"], company, row["channel"]),
			Message:          messageOrFallback(row["message"], row["link_title"]),
			Link:             row["post_link"],
			DocuLink:         row["link"],
			Image:            row["image"],
			PostType:         normalizePostType(row["post_type"]),
			Likes:            intCell(row["applause"]),
			Comments:         intCell(row["conversation"]),
			Shares:           intCell(row["amplification"]),
			Engagement:       engagement,
			EngagementBucket: schema.EngagementBucket(engagement),
			VideoViews:       optIntCell(row["video_views"]),
			Audience:         optIntCell(row["audience"]),
		})
	}
	return posts, nil
}

func (m *Mapper) mapPhantomBuster(t *Table) ([]models.CanonicalPost, error) {
	posts := make([]models.CanonicalPost, 0, len(t.Rows))
	for i, row := range t.Rows {
		engagement := intCell(row["likeCount"]) + intCell(row["commentCount"]) + intCell(row["repostCount"])

		ts, err := FormatTimestamp(row["postTimestamp"])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		company := m.companyFromProfileURL(row["profileUrl"])
		posts = append(posts, models.CanonicalPost{
			PublishDateTime:  ts,
			CompanyName:      company,
			Channel:          "LinkedIn",
			HandleName:       company,
			Message:          row["postContent"],
			Link:             row["postUrl"],
			DocuLink:         "",
			Image:            row["imgUrl"],
			PostType:         normalizePostType(row["type"]),
			Likes:            intCell(row["likeCount"]),
			Comments:         intCell(row["commentCount"]),
			Shares:           intCell(row["repostCount"]),
			Engagement:       engagement,
			EngagementBucket: schema.EngagementBucket(engagement),
		})
	}
	return posts, nil
}

// companyName resolves a raw company cell through the alias table; names
// without an alias are kept verbatim with only the first letter upper-cased.
func (m *Mapper) companyName(raw string) string {
	if mapped, ok := m.reg.CompanyAliases[strings.ToLower(raw)]; ok {
		return mapped
	}
	return capitalize(raw)
}

// companyFromProfileURL derives the company from a LinkedIn profile URL slug.
func (m *Mapper) companyFromProfileURL(profileURL string) string {
	name := strings.TrimSpace(strings.Trim(strings.TrimSpace(profileURL), "/"))
	if name == "" || strings.EqualFold(name, "nan") {
		return "Unknown"
	}
	if mapped, ok := m.reg.CompanyAliases[strings.ToLower(name)]; ok {
		return mapped
	}
	return capitalize(name)
}

// handleName prefers the per-company YouTube handle on that channel;
// elsewhere the presence handle is used as-is (capitalized).
func (m *Mapper) handleName(presenceHandle, companyName, channel string) string {
	if channel == "YouTube" {
		if handle, ok := m.reg.YouTubeHandles[companyName]; ok {
			return handle
		}
		return companyName
	}
	if presenceHandle == "" {
		return ""
	}
	return capitalize(presenceHandle)
}

// normalizePostType folds vendor spellings into the canonical set:
// photo becomes Image, platform-qualified video variants become Video,
// anything else is capitalized verbatim.
func normalizePostType(raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case lower == "photo":
		return "Image"
	case strings.Contains(lower, "video (") && strings.Contains(lower, "source)"):
		return "Video"
	}
	return capitalize(raw)
}

// messageOrFallback substitutes the link title when the message cell is
// absent or NaN.
func messageOrFallback(message, linkTitle string) string {
	if message == "" || strings.EqualFold(message, "nan") {
		return linkTitle
	}
	return message
}

// capitalize matches Python's str.capitalize: first rune upper, rest lower.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// intCell parses a numeric cell, tolerating float renderings like "10.0".
// Missing or unparseable cells count as 0.
func intCell(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// optIntCell is intCell for optional fields: empty cells stay nil.
func optIntCell(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil
	}
	n := intCell(s)
	return &n
}
