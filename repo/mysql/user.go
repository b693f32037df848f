package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/entities"
)

// UserRepository 定义了对用户表的只读访问接口。
// - 本服务只需要在写操作前确认操作者是真实存在的用户，
//   用户的创建/修改/注销完全由用户服务负责，这里绝不提供任何写方法。
type UserRepository interface {
	// ExistsByID 判断指定用户是否存在。
	// - db 参数允许传入事务句柄 tx，使存在性检查与后续的帖子写操作落在同一事务内。
	// - 用户不存在不是错误，用布尔返回值表达。
	ExistsByID(ctx context.Context, db *gorm.DB, userID uint64) (bool, error)
}

type userRepository struct {
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(logger *core.ZapLogger) UserRepository {
	return &userRepository{logger: logger}
}

// ExistsByID 实现用户存在性检查。
func (r *userRepository) ExistsByID(ctx context.Context, db *gorm.DB, userID uint64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("查询用户是否存在失败", zap.Error(err), zap.Uint64("userID", userID))
		return false, err
	}
	return count > 0, nil
}
