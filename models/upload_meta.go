package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UploadMeta describes one uploaded file. One document per upload; every
// record from that file references it via metadata_id.
// Collection: metadata
type UploadMeta struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FileName string             `bson:"file_name" json:"file_name"`
	// UploadDate is the UTC date as DD-MM-YYYY; UploadTime is HH:MM:SS in the
	// configured local timezone.
	UploadDate     string `bson:"upload_date" json:"upload_date"`
	UploadTime     string `bson:"upload_time" json:"upload_time"`
	TotalDataCount int    `bson:"total_data_count" json:"total_data_count"`
}
