package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CanonicalPost is one normalized social-media post as stored in the
// uploaded_data collection. The bson keys match the historical column names
// used by the reporting side, so they are kept verbatim.
//
// A CanonicalPost is created once by the field mapper and not mutated until
// the enrichment pipeline copies it into an EnrichedPost.
type CanonicalPost struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PublishDateTime string             `bson:"Publish Date / Time" json:"publish_datetime"`
	CompanyName     string             `bson:"Company Name" json:"company_name"`
	Channel         string             `bson:"Social Media Channel" json:"channel"`
	HandleName      string             `bson:"Handle Name" json:"handle_name"`
	Message         string             `bson:"Message" json:"message"`
	Link            string             `bson:"Link" json:"link"`
	DocuLink        string             `bson:"Docu_Link" json:"docu_link"`
	Image           string             `bson:"Image" json:"image"`
	PostType        string             `bson:"Post Type" json:"post_type"`
	Likes           int                `bson:"Like / applause" json:"likes"`
	Comments        int                `bson:"Comment / conversation" json:"comments"`
	Shares          int                `bson:"Share / Repost / amplification" json:"shares"`
	Engagement      int                `bson:"Engagement" json:"engagement"`
	// EngagementBucket is empty when engagement is undefined (negative input).
	EngagementBucket string `bson:"engagement_bucket,omitempty" json:"engagement_bucket,omitempty"`
	// Video fields are populated only for Video posts. Rival IQ exports carry
	// real view counts; everything else is backfilled during enrichment.
	VideoViews          *int   `bson:"Video Views,omitempty" json:"video_views,omitempty"`
	VideoDuration       string `bson:"Video Duration,omitempty" json:"video_duration,omitempty"`
	VideoDurationBucket string `bson:"Video Duration Bucket,omitempty" json:"video_duration_bucket,omitempty"`
	Audience            *int   `bson:"audience,omitempty" json:"audience,omitempty"`
	// MetadataID references the UploadMeta document of the file this record
	// came from. Set by the ingest service before insertion.
	MetadataID primitive.ObjectID `bson:"metadata_id,omitempty" json:"metadata_id,omitempty"`
}
