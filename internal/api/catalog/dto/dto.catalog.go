package catalogdto

// ProductCreateInput đầu vào tạo sản phẩm (CRUD).
// Các field *Id là ObjectID hex, được transform sang ObjectID qua tag `transform`.
type ProductCreateInput struct {
	Name          string   `json:"name" validate:"required,no_xss"`
	Barcode       string   `json:"barcode"`
	Price         int64    `json:"price" validate:"required,gt=0"`
	StockQuantity int64    `json:"stockQuantity" validate:"gte=0"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Author        string   `json:"author"`
	PublishYear   int      `json:"publishYear"`
	CategoryID    string   `json:"categoryId" validate:"required,object_id" transform:"str_objectid"`
	PublisherID   string   `json:"publisherId" validate:"omitempty,object_id" transform:"str_objectid,optional"`
	DiscountID    string   `json:"discountId" validate:"omitempty,object_id" transform:"str_objectid,optional"`
	Status        string   `json:"status"`
}

// ProductUpdateInput đầu vào cập nhật sản phẩm.
type ProductUpdateInput struct {
	Name          string   `json:"name" validate:"omitempty,no_xss"`
	Barcode       string   `json:"barcode"`
	Price         int64    `json:"price" validate:"omitempty,gt=0"`
	StockQuantity int64    `json:"stockQuantity" validate:"omitempty,gte=0"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Author        string   `json:"author"`
	PublishYear   int      `json:"publishYear"`
	CategoryID    string   `json:"categoryId" validate:"omitempty,object_id" transform:"str_objectid,optional"`
	PublisherID   string   `json:"publisherId" validate:"omitempty,object_id" transform:"str_objectid,optional"`
	DiscountID    string   `json:"discountId" validate:"omitempty,object_id" transform:"str_objectid,optional"`
	Status        string   `json:"status"`
}

// CategoryCreateInput đầu vào tạo danh mục.
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// CategoryUpdateInput đầu vào cập nhật danh mục.
type CategoryUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,no_xss"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// PublisherCreateInput đầu vào tạo nhà xuất bản.
type PublisherCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// PublisherUpdateInput đầu vào cập nhật nhà xuất bản.
type PublisherUpdateInput struct {
	Name    string `json:"name" validate:"omitempty,no_xss"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// DiscountCreateInput đầu vào tạo đợt giảm giá.
type DiscountCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss"`
	Percent int    `json:"percent" validate:"required,gte=0,lte=100"`
	StartAt int64  `json:"startAt"`
	EndAt   int64  `json:"endAt"`
	Status  string `json:"status"`
}

// DiscountUpdateInput đầu vào cập nhật đợt giảm giá.
type DiscountUpdateInput struct {
	Name    string `json:"name" validate:"omitempty,no_xss"`
	Percent int    `json:"percent" validate:"omitempty,gte=0,lte=100"`
	StartAt int64  `json:"startAt"`
	EndAt   int64  `json:"endAt"`
	Status  string `json:"status"`
}
