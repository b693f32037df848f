package dto

// CreateBoardRequest 定义了创建帖子的请求数据结构
// - binding 标签做第一道输入验证；标题按码点数的精确校验在服务层完成
type CreateBoardRequest struct {
	Title   string `json:"title" form:"title" binding:"required,max=200"` // 帖子标题，必填
	Content string `json:"content" form:"content" binding:"required"`     // 帖子内容，必填，长度不限
}

// UpdateBoardRequest 定义了修改帖子的请求数据结构
// - 修改是整体覆盖标题与正文（last-writer-wins），不支持部分字段更新
type UpdateBoardRequest struct {
	Title   string `json:"title" form:"title" binding:"required,max=200"`
	Content string `json:"content" form:"content" binding:"required"`
}

// ListBoardsRequest 定义分页查询帖子列表的请求数据结构
// - Page 从 0 开始，offset = page * pageSize
type ListBoardsRequest struct {
	Page     int `json:"page" form:"page" binding:"gte=0"`                            // 页码，从0开始
	PageSize int `json:"page_size" form:"page_size" binding:"required,gt=0,lte=100"` // 每页数量
}

// ListBoardsByUserRequest 定义分页查询指定用户帖子列表的请求数据结构
type ListBoardsByUserRequest struct {
	UserID   uint64 `json:"user_id" form:"user_id" binding:"required"` // 作者ID，必填
	Page     int    `json:"page" form:"page" binding:"gte=0"`
	PageSize int    `json:"page_size" form:"page_size" binding:"required,gt=0,lte=100"`
}
