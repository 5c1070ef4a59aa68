package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái vòng đời của Program.
const (
	ProgramStatusDraft     = "draft"
	ProgramStatusPublished = "published"
	ProgramStatusArchived  = "archived"
)

// Độ khó của Program.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Program là một chương trình nội dung (thiền, yoga, ...) gồm nhiều Lesson có thứ tự.
type Program struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title          string               `json:"title" bson:"title" index:"text"`
	Description    string               `json:"description" bson:"description,omitempty"`
	Category       string               `json:"category" bson:"category,omitempty" index:"single:1"`
	Difficulty     string               `json:"difficulty" bson:"difficulty,omitempty"`
	DurationDays   int                  `json:"durationDays" bson:"durationDays,omitempty"`
	LessonIDs      []primitive.ObjectID `json:"lessonIds" bson:"lessonIds,omitempty"`
	Status         string               `json:"status" bson:"status" index:"single:1"`
	PublishAt      int64                `json:"publishAt" bson:"publishAt,omitempty"`
	ArchiveAt      int64                `json:"archiveAt" bson:"archiveAt,omitempty"`
	PublishedAt    int64                `json:"publishedAt" bson:"publishedAt,omitempty"`
	ArchivedAt     int64                `json:"archivedAt" bson:"archivedAt,omitempty"`
	AuthorID       primitive.ObjectID   `json:"authorId" bson:"authorId,omitempty" index:"single:1"`
	CoverImagePath string               `json:"coverImagePath" bson:"coverImagePath,omitempty"`
	CreatedAt      int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64                `json:"updatedAt" bson:"updatedAt"`
}

// programTransitions định nghĩa các chuyển trạng thái hợp lệ của Program.
var programTransitions = map[string][]string{
	ProgramStatusDraft:     {ProgramStatusPublished},
	ProgramStatusPublished: {ProgramStatusArchived},
	ProgramStatusArchived:  {ProgramStatusPublished},
}

// CanTransitionProgram kiểm tra chuyển trạng thái from -> to có hợp lệ không.
func CanTransitionProgram(from, to string) bool {
	for _, allowed := range programTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
