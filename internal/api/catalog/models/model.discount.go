package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiscountCategory đại diện cho một đợt giảm giá áp lên sản phẩm
type DiscountCategory struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Percent   int                `json:"percent" bson:"percent"` // 0-100
	StartAt   int64              `json:"startAt,omitempty" bson:"startAt,omitempty"`
	EndAt     int64              `json:"endAt,omitempty" bson:"endAt,omitempty"`
	Status    string             `json:"status" bson:"status" default:"hoạt động"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// ActiveAt kiểm tra đợt giảm giá có hiệu lực tại thời điểm cho trước (UnixMilli)
func (d *DiscountCategory) ActiveAt(at int64) bool {
	if d.Status != "hoạt động" {
		return false
	}
	if d.StartAt > 0 && at < d.StartAt {
		return false
	}
	if d.EndAt > 0 && at > d.EndAt {
		return false
	}
	return true
}

// Apply tính giá sau giảm, làm tròn xuống đơn vị đồng
func (d *DiscountCategory) Apply(price int64) int64 {
	if d.Percent <= 0 || d.Percent > 100 {
		return price
	}
	return price - price*int64(d.Percent)/100
}
