package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// KeywordRule maps a keyword to a theme/subtheme pair. When a message
// contains the keyword, the rule overrides the classifier for that record.
// Collection: keyword_data
type KeywordRule struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Keyword  string             `bson:"Keyword" json:"keyword"`
	Theme    string             `bson:"Theme" json:"theme"`
	SubTheme string             `bson:"Sub Theme" json:"sub_theme"`
}
