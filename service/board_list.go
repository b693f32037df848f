package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/repo/mysql"
)

// BoardListService 定义了帖子列表与总数查询的业务逻辑接口。
// - 列表读取是公开能力，不做任何登录或所有权检查。
type BoardListService interface {
	// ListBoards 分页查询全部帖子，按创建时间降序。
	// - 页码从 0 开始，偏移量 = 页码 * 页大小。
	// - 返回当前页的帖子摘要和总记录数；查询落在总数之外时返回空列表，不算错误。
	ListBoards(ctx context.Context, req *dto.ListBoardsRequest) (*vo.BoardPageVO, error)

	// ListBoardsByUser 分页查询指定作者的帖子，排序与分页语义同 ListBoards。
	// - 目标用户不存在返回 myErrors.ErrUnknownActor，与"存在但没发过帖"（空列表）区分开。
	ListBoardsByUser(ctx context.Context, req *dto.ListBoardsByUserRequest) (*vo.BoardPageVO, error)

	// TotalBoards 返回帖子总数。
	TotalBoards(ctx context.Context) (int64, error)

	// TotalBoardsByUser 返回指定作者的帖子总数；用户不存在同样返回 ErrUnknownActor。
	TotalBoardsByUser(ctx context.Context, userID uint64) (int64, error)
}

// boardListService 是 BoardListService 接口的具体实现。
type boardListService struct {
	postRepo mysql.PostRepository
	userRepo mysql.UserRepository
	db       *gorm.DB
	logger   *core.ZapLogger
}

// NewBoardListService 是 boardListService 的构造函数。
func NewBoardListService(db *gorm.DB, postRepo mysql.PostRepository, userRepo mysql.UserRepository, logger *core.ZapLogger) BoardListService {
	return &boardListService{
		postRepo: postRepo,
		userRepo: userRepo,
		db:       db,
		logger:   logger,
	}
}

// validatePage 校验分页参数。
// - 绑定层已经拦了大部分非法值，这里再兜一道，保证服务层可以被其他入口安全复用。
func validatePage(page, pageSize int) error {
	if page < 0 {
		return fmt.Errorf("页码不能为负: %w", myErrors.ErrInvalidInput)
	}
	if pageSize <= 0 || pageSize > constant.MaxPageSize {
		return fmt.Errorf("页大小必须在 1 到 %d 之间: %w", constant.MaxPageSize, myErrors.ErrInvalidInput)
	}
	return nil
}

// ListBoards 实现全部帖子的分页查询。
func (s *boardListService) ListBoards(ctx context.Context, req *dto.ListBoardsRequest) (*vo.BoardPageVO, error) {
	if err := validatePage(req.Page, req.PageSize); err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountPosts(ctx)
	if err != nil {
		s.logger.Error("查询帖子总数失败", zap.Error(err))
		return nil, err
	}

	offset := req.Page * req.PageSize
	posts, err := s.postRepo.ListPage(ctx, offset, req.PageSize)
	if err != nil {
		s.logger.Error("分页查询帖子列表失败", zap.Error(err),
			zap.Int("page", req.Page), zap.Int("pageSize", req.PageSize))
		return nil, err
	}

	return &vo.BoardPageVO{
		Posts: vo.MapPostsToBoardItemVOs(posts),
		Total: total,
	}, nil
}

// ListBoardsByUser 实现指定作者帖子的分页查询。
func (s *boardListService) ListBoardsByUser(ctx context.Context, req *dto.ListBoardsByUserRequest) (*vo.BoardPageVO, error) {
	if err := validatePage(req.Page, req.PageSize); err != nil {
		return nil, err
	}

	if err := s.requireUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountPostsByUser(ctx, req.UserID)
	if err != nil {
		s.logger.Error("查询用户帖子总数失败", zap.Error(err), zap.Uint64("userID", req.UserID))
		return nil, err
	}

	offset := req.Page * req.PageSize
	posts, err := s.postRepo.ListPageByUser(ctx, req.UserID, offset, req.PageSize)
	if err != nil {
		s.logger.Error("分页查询用户帖子列表失败", zap.Error(err),
			zap.Uint64("userID", req.UserID),
			zap.Int("page", req.Page), zap.Int("pageSize", req.PageSize))
		return nil, err
	}

	return &vo.BoardPageVO{
		Posts: vo.MapPostsToBoardItemVOs(posts),
		Total: total,
	}, nil
}

// TotalBoards 实现帖子总数查询。
func (s *boardListService) TotalBoards(ctx context.Context) (int64, error) {
	return s.postRepo.CountPosts(ctx)
}

// TotalBoardsByUser 实现指定作者的帖子总数查询。
func (s *boardListService) TotalBoardsByUser(ctx context.Context, userID uint64) (int64, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return 0, err
	}
	return s.postRepo.CountPostsByUser(ctx, userID)
}

// requireUser 确认目标用户存在，不存在时返回 ErrUnknownActor。
func (s *boardListService) requireUser(ctx context.Context, userID uint64) error {
	exists, err := s.userRepo.ExistsByID(ctx, s.db, userID)
	if err != nil {
		s.logger.Error("检查用户是否存在失败", zap.Error(err), zap.Uint64("userID", userID))
		return fmt.Errorf("检查用户是否存在失败: %w", err)
	}
	if !exists {
		return fmt.Errorf("用户 %d: %w", userID, myErrors.ErrUnknownActor)
	}
	return nil
}
