// Package newssvc - service bài viết tin tức.
package newssvc

import (
	"context"
	"fmt"
	"strings"

	basesvc "github.com/dahlialee/Skybooks-sub000/internal/api/base/service"
	newsdto "github.com/dahlialee/Skybooks-sub000/internal/api/news/dto"
	models "github.com/dahlialee/Skybooks-sub000/internal/api/news/models"
	"github.com/dahlialee/Skybooks-sub000/internal/common"
	"github.com/dahlialee/Skybooks-sub000/internal/global"
	"github.com/dahlialee/Skybooks-sub000/internal/utility"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsService là cấu trúc chứa các phương thức liên quan đến bài viết
type NewsService struct {
	*basesvc.BaseServiceMongoImpl[models.News]
}

// NewNewsService tạo mới NewsService
func NewNewsService() (*NewsService, error) {
	col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.News)
	if !exist {
		return nil, fmt.Errorf("failed to get news collection: %v", common.ErrNotFound)
	}
	return &NewsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.News](col),
	}, nil
}

// PublishedFilter thêm điều kiện chỉ lấy bài "đã đăng" vào filter
func PublishedFilter(filter bson.M) bson.M {
	if filter == nil {
		filter = bson.M{}
	}
	filter["status"] = models.NewsStatusPublished
	return filter
}

// CreateNews tạo bài viết, slug để trống sẽ sinh từ tiêu đề.
// Slug trùng với bài đã có sẽ được nối thêm hậu tố ngẫu nhiên.
func (s *NewsService) CreateNews(ctx context.Context, input *newsdto.NewsCreateInput) (models.News, error) {
	var zero models.News

	slug := input.Slug
	if slug == "" {
		slug = utility.Slugify(input.Title)
	}
	exists, err := s.DocumentExists(ctx, bson.M{"slug": slug})
	if err != nil {
		return zero, err
	}
	if exists {
		slug = slug + "-" + strings.Split(uuid.New().String(), "-")[0]
	}

	news := models.News{
		Title:   input.Title,
		Slug:    slug,
		Summary: input.Summary,
		Content: input.Content,
		Image:   input.Image,
		Status:  input.Status,
	}
	if input.AuthorID != "" {
		news.AuthorID = utility.String2ObjectID(input.AuthorID)
	}
	return s.InsertOne(ctx, news)
}

// FindPublishedBySlug trả về bài "đã đăng" theo slug và tăng lượt xem
func (s *NewsService) FindPublishedBySlug(ctx context.Context, slug string) (models.News, error) {
	updateData := &basesvc.UpdateData{
		Inc: bson.M{"views": 1},
	}
	return s.FindOneAndUpdate(ctx, PublishedFilter(bson.M{"slug": slug}), updateData)
}

// FindPublishedById trả về bài "đã đăng" theo id và tăng lượt xem
func (s *NewsService) FindPublishedById(ctx context.Context, id primitive.ObjectID) (models.News, error) {
	updateData := &basesvc.UpdateData{
		Inc: bson.M{"views": 1},
	}
	return s.FindOneAndUpdate(ctx, PublishedFilter(bson.M{"_id": id}), updateData)
}

// AddComment thêm bình luận của khách hàng vào bài "đã đăng"
func (s *NewsService) AddComment(ctx context.Context, id primitive.ObjectID, input *newsdto.NewsCommentInput) (models.News, error) {
	comment := models.NewsComment{
		CustomerID: utility.String2ObjectID(input.CustomerID),
		FullName:   input.FullName,
		Content:    input.Content,
		CreatedAt:  utility.CurrentTimeInMilli(),
	}
	updateData := &basesvc.UpdateData{
		Push: bson.M{"comments": comment},
	}
	return s.FindOneAndUpdate(ctx, PublishedFilter(bson.M{"_id": id}), updateData)
}
