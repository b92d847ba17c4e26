package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"echo-analytics/schema"
)

func rivalIQRow(overrides map[string]string) map[string]string {
	row := map[string]string{
		"published_at":    "21-01-2025 18:00:29",
		"company":         "tata group",
		"channel":         "Facebook",
		"presence_handle": "tatacompanies",
		"message":         "Steel that builds the nation",
		"post_link":       "https://facebook.com/p/1",
		"link":            "https://example.com/article",
		"link_title":      "Article title",
		"image":           "https://img.example.com/1.jpg",
		"post_type":       "photo",
		"applause":        "10",
		"conversation":    "5",
		"amplification":   "2",
		"audience":        "200",
		"video_views":     "",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestMapRivalIQRow(t *testing.T) {
	m := NewMapper(schema.NewRegistry())
	table := &Table{Rows: []map[string]string{rivalIQRow(nil)}}

	posts, err := m.Map(table, schema.SourceRivalIQ)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}

	p := posts[0]
	assert.Equal(t, "Tata Group", p.CompanyName)
	assert.Equal(t, "21-01-2025 18:00:29", p.PublishDateTime)
	assert.Equal(t, "Image", p.PostType)
	assert.Equal(t, 10, p.Likes)
	assert.Equal(t, 5, p.Comments)
	assert.Equal(t, 2, p.Shares)
	assert.Equal(t, 17, p.Engagement)
	assert.Equal(t, "0-100 Engagement", p.EngagementBucket)
	assert.Nil(t, p.VideoViews)
	if assert.NotNil(t, p.Audience) {
		assert.Equal(t, 200, *p.Audience)
	}
}

func TestMapRivalIQMessageFallback(t *testing.T) {
	m := NewMapper(schema.NewRegistry())
	table := &Table{Rows: []map[string]string{
		rivalIQRow(map[string]string{"message": "nan"}),
		rivalIQRow(map[string]string{"message": ""}),
	}}

	posts, err := m.Map(table, schema.SourceRivalIQ)
	assert.NoError(t, err)
	assert.Equal(t, "Article title", posts[0].Message)
	assert.Equal(t, "Article title", posts[1].Message)
}

func TestMapRivalIQVideoPostType(t *testing.T) {
	m := NewMapper(schema.NewRegistry())
	table := &Table{Rows: []map[string]string{
		rivalIQRow(map[string]string{"post_type": "Video (Facebook Source)"}),
		rivalIQRow(map[string]string{"post_type": "status"}),
	}}

	posts, err := m.Map(table, schema.SourceRivalIQ)
	assert.NoError(t, err)
	assert.Equal(t, "Video", posts[0].PostType)
	assert.Equal(t, "Status", posts[1].PostType)
}

func TestMapRivalIQYouTubeHandle(t *testing.T) {
	m := NewMapper(schema.NewRegistry())
	table := &Table{Rows: []map[string]string{
		rivalIQRow(map[string]string{"channel": "YouTube"}),
	}}

	posts, err := m.Map(table, schema.SourceRivalIQ)
	assert.NoError(t, err)
	assert.Equal(t, "TataCompanies", posts[0].HandleName)
}

func TestMapRivalIQBadTimestampAbortsFile(t *testing.T) {
	m := NewMapper(schema.NewRegistry())
	table := &Table{Rows: []map[string]string{
		rivalIQRow(nil),
		rivalIQRow(map[string]string{"published_at": "garbage value"}),
	}}

	_, err := m.Map(table, schema.SourceRivalIQ)
	assert.ErrorIs(t, err, ErrBadTimestamp)
}

func TestMapPhantomBusterRow(t *testing.T) {
	m := NewMapper(schema.NewRegistry())
	table := &Table{Rows: []map[string]string{{
		"postTimestamp": "2025-01-21T18:00:29Z",
		"profileUrl":    "mahindragroup/",
		"postContent":   "Rise for good",
		"postUrl":       "https://linkedin.com/posts/1",
		"imgUrl":        "https://img.example.com/2.jpg",
		"type":          "image",
		"likeCount":     "100",
		"commentCount":  "20",
		"repostCount":   "3",
	}}}

	posts, err := m.Map(table, schema.SourcePhantomBuster)
	if err != nil {
		t.Fatal(err)
	}

	p := posts[0]
	assert.Equal(t, "Mahindra & Mahindra", p.CompanyName)
	assert.Equal(t, "Mahindra & Mahindra", p.HandleName)
	assert.Equal(t, "LinkedIn", p.Channel)
	assert.Equal(t, 123, p.Engagement)
	assert.Equal(t, "101-500 Engagement", p.EngagementBucket)
	assert.Equal(t, "Rise for good", p.Message)
	assert.Equal(t, "", p.DocuLink)
	assert.Nil(t, p.Audience)
}

func TestCompanyFromProfileURL(t *testing.T) {
	m := NewMapper(schema.NewRegistry())

	assert.Equal(t, "Unknown", m.companyFromProfileURL(""))
	assert.Equal(t, "Unknown", m.companyFromProfileURL("nan"))
	assert.Equal(t, "Somecompany", m.companyFromProfileURL("someCompany/"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Tata group", capitalize("TATA GROUP"))
	assert.Equal(t, "Video", capitalize("video"))
}

func TestIntCell(t *testing.T) {
	assert.Equal(t, 0, intCell(""))
	assert.Equal(t, 0, intCell("nan"))
	assert.Equal(t, 10, intCell("10"))
	assert.Equal(t, 10, intCell("10.0"))
	assert.Equal(t, 0, intCell("abc"))
}
