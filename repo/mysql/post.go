package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦，仓库层不包含任何业务规则。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - db 参数允许服务层传入事务句柄 tx，使插入落在服务层声明的事务边界内。
	// - 成功后 post 会带上数据库生成的自增 ID 和时间戳；
	//   插入成功却取不到自增主键视为存储配置故障，返回 myErrors.ErrPersistence。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// UpdatePost 覆盖指定帖子的标题与正文，并刷新 updated_at。
	// - 不触碰 user_id、created_at、view_count。
	// - 记录不存在时返回 commonerrors.ErrRepoNotFound（仓库层不预检存在性，
	//   调用方应当已经通过 GetPostByID 确认过目标存在）。
	UpdatePost(ctx context.Context, db *gorm.DB, postID uint64, title, content string) error

	// GetPostByID 根据单个 ID 检索帖子，并 JOIN users 取出作者展示名。
	// - 未找到帖子返回 commonerrors.ErrRepoNotFound，这是正常的查询结果而非故障。
	// - 帖子存在但作者行缺失属于数据完整性故障，返回 myErrors.ErrPersistence。
	GetPostByID(ctx context.Context, db *gorm.DB, id uint64) (*entities.PostWithAuthor, error)

	// ListPage 分页查询全部帖子，按 created_at 降序排列，created_at 相同时按 id 降序，
	// 保证分页遍历顺序稳定（created_at 精度内后插入的行 id 更大）。
	// - offset/limit 均为非负；limit 为 0 时直接返回空列表，不访问数据库。
	ListPage(ctx context.Context, offset, limit int) ([]*entities.PostWithAuthor, error)

	// ListPageByUser 与 ListPage 相同的排序与分页语义，但只返回指定作者的帖子。
	ListPageByUser(ctx context.Context, userID uint64, offset, limit int) ([]*entities.PostWithAuthor, error)

	// DeletePostByID 物理删除指定帖子。
	// - 返回是否真的删掉了一行；目标不存在返回 false，不算错误。
	DeletePostByID(ctx context.Context, db *gorm.DB, id uint64) (bool, error)

	// IncrementViewCount 将帖子浏览量加一。
	// - 必须是单条原子 UPDATE (view_count = view_count + 1)，
	//   绝不能在调用方读-改-写，否则并发浏览会丢失计数。
	IncrementViewCount(ctx context.Context, id uint64) error

	// CountPosts 返回帖子总数，用于分页元信息。
	CountPosts(ctx context.Context) (int64, error)

	// CountPostsByUser 返回指定作者的帖子总数。
	CountPostsByUser(ctx context.Context, userID uint64) (int64, error)
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB        // GORM 数据库实例，用于不参与服务层事务的读路径
	logger *core.ZapLogger // 日志记录器实例
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// postAuthorRow 是联表查询的扫描形态。
// - AuthorUsername 用 sql.NullString 接收 LEFT JOIN 的结果，
//   以便把"作者行缺失"与"正常查到"显式区分开，而不是静默吞掉。
type postAuthorRow struct {
	entities.Post
	AuthorUsername sql.NullString `gorm:"column:author_username"`
}

// joinedPosts 构建帖子与作者展示名的联表基础查询。
func (r *postRepository) joinedPosts(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("posts").
		Select("posts.*, users.username AS author_username").
		Joins("LEFT JOIN users ON users.id = posts.user_id")
}

// toPostWithAuthor 校验扫描行的完整性并转换为对外的读取形态。
func (r *postRepository) toPostWithAuthor(row *postAuthorRow) (*entities.PostWithAuthor, error) {
	if !row.AuthorUsername.Valid {
		// 外键约束下不应出现孤儿帖子；出现即数据完整性被破坏，按致命故障处理。
		r.logger.Error("帖子存在但关联的作者行缺失",
			zap.Uint64("postID", row.ID),
			zap.Uint64("userID", row.UserID),
		)
		return nil, fmt.Errorf("帖子 %d 的作者行缺失: %w", row.ID, myErrors.ErrPersistence)
	}
	return &entities.PostWithAuthor{
		Post:           row.Post,
		AuthorUsername: row.AuthorUsername.String,
	}, nil
}

// CreatePost 实现帖子的数据库插入操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	// GORM 会自动填充 CreatedAt 和 UpdatedAt（两者在插入时取同一时刻）。
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		r.logger.Error("插入帖子数据库操作失败", zap.Error(err), zap.Uint64("userID", post.UserID))
		return err
	}

	// 自增主键应当在 Create 成功后立刻可用；拿不到说明存储引擎配置有问题，
	// 这是不可重试的致命故障，不能当作普通业务错误向上抛。
	if post.ID == 0 {
		r.logger.Error("插入帖子成功但未取得自增主键", zap.Uint64("userID", post.UserID))
		return fmt.Errorf("未能获取帖子自增主键: %w", myErrors.ErrPersistence)
	}
	return nil
}

// UpdatePost 实现帖子标题与正文的覆盖更新。
func (r *postRepository) UpdatePost(ctx context.Context, db *gorm.DB, postID uint64, title, content string) error {
	result := db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		Updates(map[string]interface{}{
			"title":      title,
			"content":    content,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		r.logger.Error("更新帖子数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新帖子但未找到记录", zap.Uint64("postID", postID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// GetPostByID 实现根据单个 ID 获取帖子（带作者展示名）。
func (r *postRepository) GetPostByID(ctx context.Context, db *gorm.DB, id uint64) (*entities.PostWithAuthor, error) {
	var row postAuthorRow

	err := r.joinedPosts(ctx, db).
		Where("posts.id = ?", id).
		Take(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取帖子未找到", zap.Uint64("postID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取帖子数据库查询失败", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}

	return r.toPostWithAuthor(&row)
}

// ListPage 实现全部帖子的分页查询。
func (r *postRepository) ListPage(ctx context.Context, offset, limit int) ([]*entities.PostWithAuthor, error) {
	return r.listPage(ctx, nil, offset, limit)
}

// ListPageByUser 实现指定作者帖子的分页查询。
func (r *postRepository) ListPageByUser(ctx context.Context, userID uint64, offset, limit int) ([]*entities.PostWithAuthor, error) {
	return r.listPage(ctx, &userID, offset, limit)
}

// listPage 是两个分页查询的共同实现；userID 为 nil 表示不过滤作者。
func (r *postRepository) listPage(ctx context.Context, userID *uint64, offset, limit int) ([]*entities.PostWithAuthor, error) {
	if limit == 0 {
		return []*entities.PostWithAuthor{}, nil
	}

	query := r.joinedPosts(ctx, r.db)
	if userID != nil {
		query = query.Where("posts.user_id = ?", *userID)
	}

	var rows []postAuthorRow
	err := query.
		Order("posts.created_at DESC").
		Order("posts.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		r.logger.Error("分页查询帖子列表数据库操作失败",
			zap.Error(err),
			zap.Any("userID", userID),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, err
	}

	posts := make([]*entities.PostWithAuthor, 0, len(rows))
	for i := range rows {
		post, convErr := r.toPostWithAuthor(&rows[i])
		if convErr != nil {
			return nil, convErr
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// DeletePostByID 实现帖子的物理删除。
func (r *postRepository) DeletePostByID(ctx context.Context, db *gorm.DB, id uint64) (bool, error) {
	result := db.WithContext(ctx).Delete(&entities.Post{}, id)
	if result.Error != nil {
		r.logger.Error("删除帖子数据库操作失败", zap.Error(result.Error), zap.Uint64("postID", id))
		return false, result.Error
	}
	// 删除不存在的记录不算错误，用返回值告知调用方是否真的删掉了一行。
	return result.RowsAffected > 0, nil
}

// IncrementViewCount 实现浏览量的原子自增。
func (r *postRepository) IncrementViewCount(ctx context.Context, id uint64) error {
	// 单条 UPDATE 语句依赖存储引擎的行级原子性，并发浏览不会丢失计数。
	err := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	if err != nil {
		r.logger.Error("帖子浏览量自增失败", zap.Error(err), zap.Uint64("postID", id))
	}
	return err
}

// CountPosts 实现帖子总数查询。
func (r *postRepository) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Post{}).Count(&count).Error; err != nil {
		r.logger.Error("统计帖子总数失败", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// CountPostsByUser 实现指定作者的帖子总数查询。
func (r *postRepository) CountPostsByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("统计用户帖子总数失败", zap.Error(err), zap.Uint64("userID", userID))
		return 0, err
	}
	return count, nil
}
