package domain

// FileMetadata is the canonical record for an uploaded file. It is written once
// during upload (DynamoDB item + Firehose event) and never mutated afterwards.
type FileMetadata struct {
	UserID       string `json:"user_id" dynamodbav:"user_id"`
	FileID       string `json:"file_id" dynamodbav:"file_id"`
	FileName     string `json:"file_name" dynamodbav:"file_name"`
	FileKey      string `json:"file_key" dynamodbav:"file_key"`
	Timestamp    string `json:"timestamp" dynamodbav:"timestamp"`
	PreSignedURL string `json:"pre_signed_url,omitempty" dynamodbav:"pre_signed_url,omitempty"`
}

// AllowedExtensions lists the file extensions accepted at the HTTP boundary.
var AllowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"pdf":  {},
}
