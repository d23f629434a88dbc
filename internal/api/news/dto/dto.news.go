package newsdto

// NewsCreateInput đầu vào tạo bài viết, slug để trống sẽ sinh từ tiêu đề.
type NewsCreateInput struct {
	Title    string `json:"title" validate:"required,no_xss,max=300"`
	Slug     string `json:"slug" validate:"omitempty,max=300"`
	Summary  string `json:"summary" validate:"omitempty,no_xss,max=1000"`
	Content  string `json:"content" validate:"required"`
	Image    string `json:"image" validate:"omitempty,max=500"`
	AuthorID string `json:"authorId" validate:"omitempty,object_id" transform:"str_objectid,optional"`
	Status   string `json:"status" validate:"omitempty,oneof='bản nháp' 'đã đăng' 'đã ẩn'"`
}

// NewsUpdateInput đầu vào cập nhật bài viết.
type NewsUpdateInput struct {
	Title   string `json:"title" validate:"omitempty,no_xss,max=300"`
	Slug    string `json:"slug" validate:"omitempty,max=300"`
	Summary string `json:"summary" validate:"omitempty,no_xss,max=1000"`
	Content string `json:"content" validate:"omitempty"`
	Image   string `json:"image" validate:"omitempty,max=500"`
	Status  string `json:"status" validate:"omitempty,oneof='bản nháp' 'đã đăng' 'đã ẩn'"`
}

// NewsCommentInput đầu vào thêm bình luận vào bài viết.
type NewsCommentInput struct {
	CustomerID string `json:"customerId" validate:"required,object_id"`
	FullName   string `json:"fullName" validate:"required,no_xss,max=100"`
	Content    string `json:"content" validate:"required,no_xss,max=1000"`
}
