package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/events"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/mq/producer"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/repo/mysql"
)

// BoardService 定义了帖子写操作与详情读取的核心业务逻辑接口。
type BoardService interface {
	// CreateBoard 处理用户发布新帖子的业务流程。
	// - 校验标题与正文后，在单个事务内确认操作者存在并落库。
	// - 操作者不存在返回 myErrors.ErrUnknownActor，输入不合法返回 myErrors.ErrInvalidInput。
	// - 成功创建后，异步触发 Kafka 事件通知下游。
	// - 返回 VO，包含新帖子的完整信息（含作者展示名）。
	CreateBoard(ctx context.Context, actorID uint64, req *dto.CreateBoardRequest) (*vo.BoardDetailVO, error)

	// UpdateBoard 处理作者修改自己帖子的业务流程。
	// - 在单个事务内按顺序做三道检查：操作者存在 -> 帖子存在 -> 操作者即作者，
	//   任何一道不通过立即终止，后面的检查不再执行。
	// - 只覆盖标题与正文，浏览量和创建时间不受影响。
	// - 成功后异步触发 Kafka 更新事件，并返回更新后的 VO。
	UpdateBoard(ctx context.Context, actorID uint64, postID uint64, req *dto.UpdateBoardRequest) (*vo.BoardDetailVO, error)

	// DeleteBoard 处理作者删除自己帖子的业务流程。
	// - 与 UpdateBoard 相同的三道检查，通过后物理删除帖子。
	// - 成功后异步触发 Kafka 删除事件。
	DeleteBoard(ctx context.Context, actorID uint64, postID uint64) error

	// GetBoardDetail 获取单个帖子的详细信息。
	// - 读取详情的同时将浏览量原子加一；返回的 VO 中浏览量已包含本次浏览。
	// - 详情读取无需登录，不做任何操作者检查。
	// - 帖子不存在返回 myErrors.ErrPostNotFound。
	GetBoardDetail(ctx context.Context, postID uint64) (*vo.BoardDetailVO, error)
}

// boardService 是 BoardService 接口的具体实现。
type boardService struct {
	postRepo mysql.PostRepository    // 负责帖子的 MySQL 操作
	userRepo mysql.UserRepository    // 负责操作者存在性检查
	db       *gorm.DB                // GORM 数据库实例，主要用于事务管理
	kafkaSvc *producer.KafkaProducer // Kafka 生产者；允许为 nil（未配置消息队列时跳过事件发送）
	logger   *core.ZapLogger         // 日志记录器，用于记录关键信息和错误
}

// NewBoardService 是 boardService 的构造函数，通过依赖注入初始化服务实例。
// - 这种方式便于单元测试和组件替换。
func NewBoardService(db *gorm.DB, postRepo mysql.PostRepository, userRepo mysql.UserRepository, kafkaSvc *producer.KafkaProducer, logger *core.ZapLogger) BoardService {
	return &boardService{
		postRepo: postRepo,
		userRepo: userRepo,
		db:       db,
		kafkaSvc: kafkaSvc,
		logger:   logger,
	}
}

// validateTitleAndContent 校验帖子标题与正文。
// - 标题与正文都不允许为空白；标题最长 200 个 Unicode 码点（不是字节数）。
func validateTitleAndContent(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("标题不能为空: %w", myErrors.ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > constant.TitleMaxRunes {
		return fmt.Errorf("标题长度超过 %d 个字符: %w", constant.TitleMaxRunes, myErrors.ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("正文不能为空: %w", myErrors.ErrInvalidInput)
	}
	return nil
}

// eventDataFromPost 将联表读取的帖子实体转换为 Kafka 事件所需的数据结构。
func eventDataFromPost(post *entities.PostWithAuthor) events.BoardEventData {
	return events.BoardEventData{
		ID:             post.ID,
		Title:          post.Title,
		Content:        post.Content,
		UserID:         post.UserID,
		AuthorUsername: post.AuthorUsername,
		ViewCount:      post.ViewCount,
		CreatedAt:      post.CreatedAt.UnixMilli(),
		UpdatedAt:      post.UpdatedAt.UnixMilli(),
	}
}

// checkActorAndPost 在给定的数据库句柄（通常是事务 tx）上按顺序执行前两道检查，
// 并返回帖子实体供第三道检查（所有权）使用。
// - 检查顺序是固定的：先操作者存在性，再帖子存在性；一道失败立即返回，
//   保证并发场景下同一请求只会得到一种确定的失败原因。
func (s *boardService) checkActorAndPost(ctx context.Context, tx *gorm.DB, actorID, postID uint64) (*entities.PostWithAuthor, error) {
	exists, err := s.userRepo.ExistsByID(ctx, tx, actorID)
	if err != nil {
		return nil, fmt.Errorf("检查操作者是否存在失败: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("操作者 %d: %w", actorID, myErrors.ErrUnknownActor)
	}

	post, err := s.postRepo.GetPostByID(ctx, tx, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, fmt.Errorf("帖子 %d: %w", postID, myErrors.ErrPostNotFound)
		}
		return nil, fmt.Errorf("获取帖子失败: %w", err)
	}
	return post, nil
}

// CreateBoard 处理用户创建新帖子的请求。
func (s *boardService) CreateBoard(ctx context.Context, actorID uint64, req *dto.CreateBoardRequest) (*vo.BoardDetailVO, error) {
	// 1. 业务校验先于任何数据库访问
	if err := validateTitleAndContent(req.Title, req.Content); err != nil {
		return nil, err
	}

	// 2. 在事务中执行"操作者存在 -> 插入"两步，保证检查与写入之间没有窗口
	var created *entities.PostWithAuthor
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, repoErr := s.userRepo.ExistsByID(ctx, tx, actorID)
		if repoErr != nil {
			return fmt.Errorf("检查操作者是否存在失败: %w", repoErr)
		}
		if !exists {
			return fmt.Errorf("操作者 %d: %w", actorID, myErrors.ErrUnknownActor)
		}

		post := &entities.Post{
			Title:     req.Title,
			Content:   req.Content,
			UserID:    actorID,
			ViewCount: 0, // 新帖子浏览量从 0 开始
		}
		if repoErr := s.postRepo.CreatePost(ctx, tx, post); repoErr != nil {
			return fmt.Errorf("创建帖子失败: %w", repoErr)
		}

		// 回读带作者展示名的完整形态，供响应与事件复用
		withAuthor, repoErr := s.postRepo.GetPostByID(ctx, tx, post.ID)
		if repoErr != nil {
			return fmt.Errorf("回读新建帖子失败: %w", repoErr)
		}
		created = withAuthor
		return nil // 提交事务
	})
	if err != nil {
		// 业务性失败（操作者不存在/输入问题）由控制器按哨兵错误分级，这里只记基础设施错误
		if !isBusinessErr(err) {
			s.logger.Error("创建帖子事务失败", zap.Error(err), zap.Uint64("actorID", actorID))
		}
		return nil, err
	}

	// --- 事务成功 ---

	// 3. 异步发送 Kafka 创建事件，不阻塞主流程
	if s.kafkaSvc != nil {
		go func(data events.BoardEventData) {
			bgCtx := context.Background() // 为后台 goroutine 创建新的上下文
			if kafkaErr := s.kafkaSvc.SendBoardCreatedEvent(bgCtx, data); kafkaErr != nil {
				s.logger.Error("发送 Kafka 帖子创建事件失败", zap.Error(kafkaErr), zap.Uint64("post_id", data.ID))
			}
		}(eventDataFromPost(created))
	}

	s.logger.Info("帖子创建成功",
		zap.Uint64("post_id", created.ID),
		zap.Uint64("actorID", actorID))
	return vo.NewBoardDetailVO(created), nil
}

// UpdateBoard 实现帖子的覆盖更新逻辑。
func (s *boardService) UpdateBoard(ctx context.Context, actorID uint64, postID uint64, req *dto.UpdateBoardRequest) (*vo.BoardDetailVO, error) {
	if err := validateTitleAndContent(req.Title, req.Content); err != nil {
		return nil, err
	}

	var updated *entities.PostWithAuthor
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, checkErr := s.checkActorAndPost(ctx, tx, actorID, postID)
		if checkErr != nil {
			return checkErr
		}

		// 第三道检查：只有作者本人能修改
		if post.UserID != actorID {
			return fmt.Errorf("操作者 %d 不是帖子 %d 的作者: %w", actorID, postID, myErrors.ErrNotAuthorized)
		}

		if repoErr := s.postRepo.UpdatePost(ctx, tx, postID, req.Title, req.Content); repoErr != nil {
			return fmt.Errorf("更新帖子失败: %w", repoErr)
		}

		// 回读更新后的形态，拿到数据库刷新过的 updated_at
		withAuthor, repoErr := s.postRepo.GetPostByID(ctx, tx, postID)
		if repoErr != nil {
			return fmt.Errorf("回读更新后帖子失败: %w", repoErr)
		}
		updated = withAuthor
		return nil
	})
	if err != nil {
		if !isBusinessErr(err) {
			s.logger.Error("更新帖子事务失败", zap.Error(err),
				zap.Uint64("post_id", postID), zap.Uint64("actorID", actorID))
		}
		return nil, err
	}

	if s.kafkaSvc != nil {
		go func(data events.BoardEventData) {
			bgCtx := context.Background()
			if kafkaErr := s.kafkaSvc.SendBoardUpdatedEvent(bgCtx, data); kafkaErr != nil {
				s.logger.Error("发送 Kafka 帖子更新事件失败", zap.Error(kafkaErr), zap.Uint64("post_id", data.ID))
			}
		}(eventDataFromPost(updated))
	}

	return vo.NewBoardDetailVO(updated), nil
}

// DeleteBoard 实现帖子的物理删除逻辑。
func (s *boardService) DeleteBoard(ctx context.Context, actorID uint64, postID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, checkErr := s.checkActorAndPost(ctx, tx, actorID, postID)
		if checkErr != nil {
			return checkErr
		}

		if post.UserID != actorID {
			return fmt.Errorf("操作者 %d 不是帖子 %d 的作者: %w", actorID, postID, myErrors.ErrNotAuthorized)
		}

		deleted, repoErr := s.postRepo.DeletePostByID(ctx, tx, postID)
		if repoErr != nil {
			return fmt.Errorf("删除帖子失败: %w", repoErr)
		}
		if !deleted {
			// 存在性检查和删除之间被并发删除了，对调用方表现为帖子不存在
			return fmt.Errorf("帖子 %d: %w", postID, myErrors.ErrPostNotFound)
		}
		return nil
	})
	if err != nil {
		if !isBusinessErr(err) {
			s.logger.Error("删除帖子事务失败", zap.Error(err),
				zap.Uint64("post_id", postID), zap.Uint64("actorID", actorID))
		}
		return err
	}

	// 异步发送 Kafka 删除事件
	if s.kafkaSvc != nil {
		go func(postIDToNotify uint64) {
			bgCtx := context.Background()
			if kafkaErr := s.kafkaSvc.SendBoardDeletedEvent(bgCtx, postIDToNotify); kafkaErr != nil {
				s.logger.Error("发送 Kafka 帖子删除事件失败", zap.Error(kafkaErr), zap.Uint64("post_id", postIDToNotify))
			}
		}(postID)
	}

	s.logger.Info("帖子删除请求处理完成", zap.Uint64("post_id", postID), zap.Uint64("actorID", actorID))
	return nil
}

// GetBoardDetail 实现获取帖子详情的逻辑。
func (s *boardService) GetBoardDetail(ctx context.Context, postID uint64) (*vo.BoardDetailVO, error) {
	s.logger.Debug("从数据库获取帖子详情", zap.Uint64("postID", postID))

	// 1. 读取帖子核心数据（带作者展示名）
	post, err := s.postRepo.GetPostByID(ctx, s.db, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, fmt.Errorf("帖子 %d: %w", postID, myErrors.ErrPostNotFound)
		}
		s.logger.Error("获取帖子详情失败", zap.Error(err), zap.Uint64("postID", postID))
		return nil, err
	}

	// 2. 同步原子自增浏览量。每一次详情读取都计一次浏览，不做去重。
	//    自增失败按持久化故障处理：计数器是详情语义的一部分，不能静默丢失。
	if err := s.postRepo.IncrementViewCount(ctx, postID); err != nil {
		return nil, fmt.Errorf("帖子 %d 浏览量自增失败: %w", postID, myErrors.ErrPersistence)
	}

	// 3. 返回的浏览量在读到的值上加一，把本次浏览计入展示，省掉第二次查询。
	//    并发浏览下这个数字可能略小于数据库中的实时值，作为展示值可以接受。
	detail := vo.NewBoardDetailVO(post)
	detail.ViewCount = post.ViewCount + 1
	return detail, nil
}

// isBusinessErr 判断错误是否属于预期内的业务失败（调用方问题），
// 这类错误不需要在服务层再记 Error 级日志。
func isBusinessErr(err error) bool {
	return errors.Is(err, myErrors.ErrInvalidInput) ||
		errors.Is(err, myErrors.ErrUnknownActor) ||
		errors.Is(err, myErrors.ErrPostNotFound) ||
		errors.Is(err, myErrors.ErrNotAuthorized)
}
