package vo

import (
	"time"

	"github.com/Xushengqwer/board_service/models/entities"
)

// BoardDetailVO 定义了帖子详情的响应数据结构
type BoardDetailVO struct {
	ID             uint64    `json:"id"`              // 帖子ID
	Title          string    `json:"title"`           // 帖子标题
	Content        string    `json:"content"`         // 帖子正文
	UserID         uint64    `json:"user_id"`         // 作者ID
	AuthorUsername string    `json:"author_username"` // 作者展示名（JOIN users 得到）
	ViewCount      int64     `json:"view_count"`      // 浏览量
	CreatedAt      time.Time `json:"created_at"`      // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`      // 更新时间
}

// BoardItemVO 定义了帖子在列表页的摘要响应结构
// - 列表页不下发正文，避免无谓的流量
type BoardItemVO struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	AuthorUsername string    `json:"author_username"`
	ViewCount      int64     `json:"view_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// BoardPageVO 定义了分页查询的响应结构。
// - 包含当前页的帖子摘要列表和符合条件的总记录数，供前端渲染页码。
type BoardPageVO struct {
	Posts []*BoardItemVO `json:"posts"` // 当前页的帖子摘要列表
	Total int64          `json:"total"` // 总记录数
}

// NewBoardDetailVO 将联表读取的帖子实体转换为详情 VO。
func NewBoardDetailVO(post *entities.PostWithAuthor) *BoardDetailVO {
	return &BoardDetailVO{
		ID:             post.ID,
		Title:          post.Title,
		Content:        post.Content,
		UserID:         post.UserID,
		AuthorUsername: post.AuthorUsername,
		ViewCount:      post.ViewCount,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	}
}

// MapPostsToBoardItemVOs 是一个辅助函数，用于将帖子实体列表转换为列表页 VO 列表。
func MapPostsToBoardItemVOs(posts []*entities.PostWithAuthor) []*BoardItemVO {
	if len(posts) == 0 {
		return []*BoardItemVO{} // 返回空切片而不是nil，便于前端处理
	}

	items := make([]*BoardItemVO, 0, len(posts))
	for _, post := range posts {
		if post == nil { // 安全检查，尽管不太可能发生
			continue
		}
		items = append(items, &BoardItemVO{
			ID:             post.ID,
			Title:          post.Title,
			AuthorUsername: post.AuthorUsername,
			ViewCount:      post.ViewCount,
			CreatedAt:      post.CreatedAt,
		})
	}
	return items
}
