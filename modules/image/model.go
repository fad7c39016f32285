package image

import (
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Image is an uploaded picture stored in object storage.
type Image struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	AccountID bson.ObjectID `bson:"accountId" json:"accountId"`
	Key       string        `bson:"key" json:"key"`
	URL       string        `bson:"url" json:"url"`
	FileName  string        `bson:"fileName" json:"fileName"`
	Size      int64         `bson:"size" json:"size"`
	MIMEType  string        `bson:"mimeType" json:"mimeType"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

// UploadRequest is the multipart upload form.
type UploadRequest struct {
	Image *multipart.FileHeader `file:"image"`
}

// IDParam selects one image.
type IDParam struct {
	ID string `path:"id"`
}
