package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại media của Lesson.
const (
	MediaTypeVideo = "video"
	MediaTypeAudio = "audio"
)

// Trạng thái xử lý media của Lesson.
const (
	LessonStatusDraft      = "draft"
	LessonStatusUploading  = "uploading"
	LessonStatusProcessing = "processing"
	LessonStatusReady      = "ready"
	LessonStatusFailed     = "failed"
)

// Rendition là một phiên bản chất lượng của media đã transcode xong.
type Rendition struct {
	Quality string `json:"quality" bson:"quality"`
	Path    string `json:"path" bson:"path"`
	Bitrate int64  `json:"bitrate" bson:"bitrate,omitempty"`
}

// Lesson là một bài học thuộc Program. ProgramID không có ràng buộc
// tham chiếu ở tầng database, bài mồ côi được sửa bằng script.
type Lesson struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" index:"text"`
	MediaType   string             `json:"mediaType" bson:"mediaType"`
	ProgramID   primitive.ObjectID `json:"programId" bson:"programId,omitempty" index:"single:1"`
	Order       int                `json:"order" bson:"order,omitempty"`
	Status      string             `json:"status" bson:"status" index:"single:1"`
	StoragePath string             `json:"storagePath" bson:"storagePath,omitempty"`
	DurationSec int64              `json:"durationSec" bson:"durationSec,omitempty"`
	Renditions  []Rendition        `json:"renditions" bson:"renditions,omitempty"`
	FailReason  string             `json:"failReason,omitempty" bson:"failReason,omitempty"`
	PublishAt   int64              `json:"publishAt" bson:"publishAt,omitempty"`
	AuthorID    primitive.ObjectID `json:"authorId" bson:"authorId,omitempty" index:"single:1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// lessonTransitions định nghĩa các chuyển trạng thái media hợp lệ của Lesson.
var lessonTransitions = map[string][]string{
	LessonStatusDraft:      {LessonStatusUploading},
	LessonStatusUploading:  {LessonStatusProcessing, LessonStatusFailed},
	LessonStatusProcessing: {LessonStatusReady, LessonStatusFailed},
	LessonStatusReady:      {LessonStatusUploading},
	LessonStatusFailed:     {LessonStatusUploading},
}

// CanTransitionLesson kiểm tra chuyển trạng thái from -> to có hợp lệ không.
func CanTransitionLesson(from, to string) bool {
	for _, allowed := range lessonTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
