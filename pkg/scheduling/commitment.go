package scheduling

import (
	"time"

	"github.com/allocator-app/allocator-backend/pkg/date"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FixedCommitment is a busy timespan the allocator must schedule around, like a
// meeting or an appointment
type FixedCommitment struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId" validate:"required"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	LastModifiedAt time.Time          `json:"lastModifiedAt" bson:"lastModifiedAt"`

	Date  date.Timespan `json:"date" bson:"date" validate:"required"`
	Label string        `json:"label" bson:"label"`
}
