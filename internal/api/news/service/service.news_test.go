package newssvc

import (
	"testing"

	models "github.com/dahlialee/Skybooks-sub000/internal/api/news/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPublishedFilter(t *testing.T) {
	filter := PublishedFilter(nil)
	assert.Equal(t, bson.M{"status": models.NewsStatusPublished}, filter)

	filter = PublishedFilter(bson.M{"slug": "nha-gia-kim"})
	assert.Equal(t, "nha-gia-kim", filter["slug"])
	assert.Equal(t, models.NewsStatusPublished, filter["status"])
}

func TestPublishedFilter_OverridesStatus(t *testing.T) {
	// Route public không cho client đọc bài ở trạng thái khác
	filter := PublishedFilter(bson.M{"status": models.NewsStatusDraft})
	assert.Equal(t, models.NewsStatusPublished, filter["status"])
}
