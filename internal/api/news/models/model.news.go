package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Các trạng thái bài viết
const (
	NewsStatusDraft     = "bản nháp"
	NewsStatusPublished = "đã đăng"
	NewsStatusHidden    = "đã ẩn"
)

// NewsComment bình luận của khách hàng trên bài viết
type NewsComment struct {
	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId"`
	FullName   string             `json:"fullName" bson:"fullName"`
	Content    string             `json:"content" bson:"content"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
}

// News là bài viết tin tức của cửa hàng
type News struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Slug      string             `json:"slug" bson:"slug,omitempty" index:"unique,sparse"`
	Summary   string             `json:"summary,omitempty" bson:"summary,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	AuthorID  primitive.ObjectID `json:"authorId,omitempty" bson:"authorId,omitempty" index:"single"`
	Views     int64              `json:"views" bson:"views"`
	Status    string             `json:"status" bson:"status" default:"bản nháp" index:"single"`
	Comments  []NewsComment      `json:"comments" bson:"comments,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
