package schema

// Source identifies a known vendor export schema.
type Source string

const (
	SourceRivalIQ       Source = "Rival IQ"
	SourcePhantomBuster Source = "Phantom Buster"
)

// Registry holds the static lookup tables used during source detection and
// field mapping. Build one with NewRegistry at startup and pass it explicitly;
// none of the tables are mutated afterwards.
type Registry struct {
	CompanyAliases map[string]string
	YouTubeHandles map[string]string
	Formats        []Format
	EntityTypes    []string
}

// Format is a vendor schema: its name and the columns that must all be
// present for an input table to match it.
type Format struct {
	Source         Source
	RequiredFields []string
}

func NewRegistry() *Registry {
	return &Registry{
		CompanyAliases: map[string]string{
			"reliance":                         "Reliance Industries",
			"reliance industries":              "Reliance Industries",
			"tata-group":                       "Tata Group",
			"tata group":                       "Tata Group",
			"unilever":                         "Unilever Global",
			"unilever global":                  "Unilever Global",
			"nestle-s-a-":                      "Nestle Global",
			"nestl√© global":                   "Nestle Global",
			"aditya-birla-group":               "Aditya Birla Group",
			"aditya birla group":               "Aditya Birla Group",
			"maricolimited":                    "Marico",
			"marico":                           "Marico",
			"hul":                              "HUL",
			"mahindragroup":                    "Mahindra & Mahindra",
			"mahindra & mahindra":              "Mahindra & Mahindra",
			"itc-limited":                      "ITC Limited",
			"https://www.loreal.com/en/india/": "ITC Limited",
			"mondelezinternational":            "Mondelez International",
			"mondelez international":           "Mondelez International",
		},
		YouTubeHandles: map[string]string{
			"Mahindra & Mahindra":    "MahindraRise",
			"Marico":                 "Marico",
			"Mondelez International": "Mondelez International",
			"Reliance Industries":    "RelianceUpdates",
			"Tata Group":             "TataCompanies",
			"Unilever Global":        "Unilever Global",
			"Aditya Birla Group":     "aditya birla group",
		},
		// Detection checks formats in this order and takes the first full match.
		Formats: []Format{
			{
				Source: SourceRivalIQ,
				RequiredFields: []string{
					"published_at", "report_generated_at", "captured_at", "company", "channel",
					"presence_handle", "message", "post_link", "link", "link_title",
					"link_description", "image", "post_type", "posted_domain", "posted_url",
					"engagement_total", "applause", "conversation", "amplification", "audience",
					"engagement_rate_by_follower", "engagement_rate_lift", "post_tag_ugc",
					"post_tag_contests", "video_views",
				},
			},
			{
				Source: SourcePhantomBuster,
				RequiredFields: []string{
					"postUrl", "imgUrl", "type", "postContent", "likeCount",
					"commentCount", "repostCount", "postDate", "action",
					"profileUrl", "timestamp", "postTimestamp", "videoUrl",
					"sharedPostUrl",
				},
			},
		},
		EntityTypes: []string{
			"Person Names", "Organization", "Hash Tags", "Location", "Brand", "Category", "URLs",
		},
	}
}
