package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CalendarFields are the date/time parts derived from Publish Date / Time.
// Stored as a sub-document under Timestamp.
type CalendarFields struct {
	FormattedDate string `bson:"Formatted_Date" json:"formatted_date"`
	FormattedTime string `bson:"Formatted_Time" json:"formatted_time"`
	DayOfMonth    int    `bson:"Day_of_Month" json:"day_of_month"`
	Month         int    `bson:"Month" json:"month"`
	Year          int    `bson:"Year" json:"year"`
	DayOfWeek     string `bson:"Day_of_Week" json:"day_of_week"`
	WeekNumber    string `bson:"Week_Number" json:"week_number"`
	// DateType is "Weekend" for Saturday/Sunday, otherwise "Weekday".
	DateType     string `bson:"Date_Type" json:"date_type"`
	Hour24Format string `bson:"Hour_24_Format" json:"hour_24_format"`
	Hour12Format string `bson:"Hour_12_Format" json:"hour_12_format"`
	Minute       string `bson:"Minute" json:"minute"`
	AMPM         string `bson:"AM_PM" json:"am_pm"`
}

// EnrichedPost is a CanonicalPost after classification, entity extraction and
// scoring. Created once by the enrichment pipeline and never mutated.
// Collection: posts
type EnrichedPost struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CanonicalPost `bson:",inline"`
	// TransformDataID is the _id of the source record in uploaded_data; the
	// new-entry fetch uses it as the already-processed marker.
	TransformDataID primitive.ObjectID `bson:"transform_data_id" json:"transform_data_id"`
	Themes          string             `bson:"Themes" json:"themes"`
	Subthemes       string             `bson:"Subthemes" json:"subthemes"`
	Subsubthemes    string             `bson:"Subsubthemes" json:"subsubthemes"`
	// Tag is true when this record is the canonical member of its
	// near-duplicate cluster (or belongs to no cluster).
	Tag             bool           `bson:"Tag" json:"tag"`
	EngagementScore float64        `bson:"engagementScore" json:"engagement_score"`
	Timestamp       CalendarFields `bson:"Timestamp" json:"timestamp"`
	// Entities holds one nullable value per configured entity type, flattened
	// into top-level document fields.
	Entities map[string]*string `bson:",inline" json:"entities,omitempty"`
}
