package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Xushengqwer/go-common/commonerrors"
	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

// --- 仓库层 mock ---

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	args := m.Called(ctx, db, post)
	return args.Error(0)
}

func (m *mockPostRepo) UpdatePost(ctx context.Context, db *gorm.DB, postID uint64, title, content string) error {
	args := m.Called(ctx, db, postID, title, content)
	return args.Error(0)
}

func (m *mockPostRepo) GetPostByID(ctx context.Context, db *gorm.DB, id uint64) (*entities.PostWithAuthor, error) {
	args := m.Called(ctx, db, id)
	if post := args.Get(0); post != nil {
		return post.(*entities.PostWithAuthor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) ListPage(ctx context.Context, offset, limit int) ([]*entities.PostWithAuthor, error) {
	args := m.Called(ctx, offset, limit)
	if posts := args.Get(0); posts != nil {
		return posts.([]*entities.PostWithAuthor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) ListPageByUser(ctx context.Context, userID uint64, offset, limit int) ([]*entities.PostWithAuthor, error) {
	args := m.Called(ctx, userID, offset, limit)
	if posts := args.Get(0); posts != nil {
		return posts.([]*entities.PostWithAuthor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) DeletePostByID(ctx context.Context, db *gorm.DB, id uint64) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepo) IncrementViewCount(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostRepo) CountPosts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepo) CountPostsByUser(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) ExistsByID(ctx context.Context, db *gorm.DB, userID uint64) (bool, error) {
	args := m.Called(ctx, db, userID)
	return args.Bool(0), args.Error(1)
}

// --- 测试基础设施 ---

// newTxDB 提供一个能走 Begin/Commit/Rollback 的 gorm.DB；
// 真正的 SQL 都被仓库层 mock 掉了，这里只承载事务边界。
func newTxDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, smock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gormDB, smock
}

func testLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

func samplePost(id, userID uint64, viewCount int64) *entities.PostWithAuthor {
	now := time.Now()
	return &entities.PostWithAuthor{
		Post: entities.Post{
			ID:        id,
			Title:     "标题",
			Content:   "正文",
			UserID:    userID,
			ViewCount: viewCount,
			CreatedAt: now,
			UpdatedAt: now,
		},
		AuthorUsername: "tester",
	}
}

// --- CreateBoard ---

func TestBoardService_CreateBoard(t *testing.T) {
	ctx := context.Background()

	t.Run("创建成功", func(t *testing.T) {
		db, smock := newTxDB(t)
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(db, postRepo, userRepo, nil, testLogger(t))

		smock.ExpectBegin()
		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(7)).Return(true, nil)
		postRepo.On("CreatePost", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				post := args.Get(2).(*entities.Post)
				post.ID = 1
			}).Return(nil)
		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(1)).
			Return(samplePost(1, 7, 0), nil)
		smock.ExpectCommit()

		detail, err := svc.CreateBoard(ctx, 7, &dto.CreateBoardRequest{Title: "标题", Content: "正文"})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), detail.ID)
		assert.Equal(t, "tester", detail.AuthorUsername)
		assert.Equal(t, int64(0), detail.ViewCount)
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("操作者不存在", func(t *testing.T) {
		db, smock := newTxDB(t)
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(db, postRepo, userRepo, nil, testLogger(t))

		smock.ExpectBegin()
		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(404)).Return(false, nil)
		smock.ExpectRollback()

		_, err := svc.CreateBoard(ctx, 404, &dto.CreateBoardRequest{Title: "标题", Content: "正文"})
		assert.ErrorIs(t, err, myErrors.ErrUnknownActor)
		postRepo.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("输入校验先于数据库访问", func(t *testing.T) {
		db, smock := newTxDB(t)
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(db, postRepo, userRepo, nil, testLogger(t))

		cases := []dto.CreateBoardRequest{
			{Title: "", Content: "正文"},
			{Title: "   ", Content: "正文"},
			{Title: "标题", Content: ""},
			{Title: strings.Repeat("字", 201), Content: "正文"},
		}
		for _, req := range cases {
			_, err := svc.CreateBoard(ctx, 7, &req)
			assert.ErrorIs(t, err, myErrors.ErrInvalidInput)
		}
		// 标题恰好 200 个字符时不触发校验错误（但操作者检查会先失败，证明走到了数据库阶段）
		smock.ExpectBegin()
		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(7)).Return(false, nil)
		smock.ExpectRollback()
		_, err := svc.CreateBoard(ctx, 7, &dto.CreateBoardRequest{Title: strings.Repeat("字", 200), Content: "正文"})
		assert.ErrorIs(t, err, myErrors.ErrUnknownActor)

		userRepo.AssertNumberOfCalls(t, "ExistsByID", 1)
		assert.NoError(t, smock.ExpectationsWereMet())
	})
}

// --- UpdateBoard ---

func TestBoardService_UpdateBoard(t *testing.T) {
	ctx := context.Background()
	req := &dto.UpdateBoardRequest{Title: "新标题", Content: "新正文"}

	t.Run("作者本人更新成功", func(t *testing.T) {
		db, smock := newTxDB(t)
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(db, postRepo, userRepo, nil, testLogger(t))

		smock.ExpectBegin()
		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(7)).Return(true, nil)
		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(1)).
			Return(samplePost(1, 7, 5), nil).Once()
		postRepo.On("UpdatePost", mock.Anything, mock.Anything, uint64(1), "新标题", "新正文").Return(nil)
		updated := samplePost(1, 7, 5)
		updated.Title = "新标题"
		updated.Content = "新正文"
		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(1)).
			Return(updated, nil).Once()
		smock.ExpectCommit()

		detail, err := svc.UpdateBoard(ctx, 7, 1, req)
		require.NoError(t, err)
		assert.Equal(t, "新标题", detail.Title)
		assert.Equal(t, int64(5), detail.ViewCount)
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("非作者被拒绝", func(t *testing.T) {
		db, smock := newTxDB(t)
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(db, postRepo, userRepo, nil, testLogger(t))

		smock.ExpectBegin()
		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(8)).Return(true, nil)
		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(1)).
			Return(samplePost(1, 7, 0), nil)
		smock.ExpectRollback()

		_, err := svc.UpdateBoard(ctx, 8, 1, req)
		assert.ErrorIs(t, err, myErrors.ErrNotAuthorized)
		postRepo.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("帖子不存在", func(t *testing.T) {
		db, smock := newTxDB(t)
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(db, postRepo, userRepo, nil, testLogger(t))

		smock.ExpectBegin()
		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(7)).Return(true, nil)
		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(999)).
			Return(nil, commonerrors.ErrRepoNotFound)
		smock.ExpectRollback()

		_, err := svc.UpdateBoard(ctx, 7, 999, req)
		assert.ErrorIs(t, err, myErrors.ErrPostNotFound)
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("操作者不存在时不再检查帖子", func(t *testing.T) {
		db, smock := newTxDB(t)
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(db, postRepo, userRepo, nil, testLogger(t))

		smock.ExpectBegin()
		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(404)).Return(false, nil)
		smock.ExpectRollback()

		_, err := svc.UpdateBoard(ctx, 404, 1, req)
		assert.ErrorIs(t, err, myErrors.ErrUnknownActor)
		postRepo.AssertNotCalled(t, "GetPostByID", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, smock.ExpectationsWereMet())
	})
}

// --- DeleteBoard ---

func TestBoardService_DeleteBoard(t *testing.T) {
	ctx := context.Background()

	t.Run("作者本人删除成功", func(t *testing.T) {
		db, smock := newTxDB(t)
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(db, postRepo, userRepo, nil, testLogger(t))

		smock.ExpectBegin()
		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(7)).Return(true, nil)
		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(1)).
			Return(samplePost(1, 7, 0), nil)
		postRepo.On("DeletePostByID", mock.Anything, mock.Anything, uint64(1)).Return(true, nil)
		smock.ExpectCommit()

		err := svc.DeleteBoard(ctx, 7, 1)
		assert.NoError(t, err)
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("非作者被拒绝", func(t *testing.T) {
		db, smock := newTxDB(t)
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(db, postRepo, userRepo, nil, testLogger(t))

		smock.ExpectBegin()
		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(8)).Return(true, nil)
		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(1)).
			Return(samplePost(1, 7, 0), nil)
		smock.ExpectRollback()

		err := svc.DeleteBoard(ctx, 8, 1)
		assert.ErrorIs(t, err, myErrors.ErrNotAuthorized)
		postRepo.AssertNotCalled(t, "DeletePostByID", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, smock.ExpectationsWereMet())
	})

	t.Run("检查后被并发删除按不存在处理", func(t *testing.T) {
		db, smock := newTxDB(t)
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(db, postRepo, userRepo, nil, testLogger(t))

		smock.ExpectBegin()
		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(7)).Return(true, nil)
		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(1)).
			Return(samplePost(1, 7, 0), nil)
		postRepo.On("DeletePostByID", mock.Anything, mock.Anything, uint64(1)).Return(false, nil)
		smock.ExpectRollback()

		err := svc.DeleteBoard(ctx, 7, 1)
		assert.ErrorIs(t, err, myErrors.ErrPostNotFound)
		assert.NoError(t, smock.ExpectationsWereMet())
	})
}

// --- GetBoardDetail ---

func TestBoardService_GetBoardDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("读取详情并计入本次浏览", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(nil, postRepo, userRepo, nil, testLogger(t))

		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(1)).
			Return(samplePost(1, 7, 5), nil)
		postRepo.On("IncrementViewCount", mock.Anything, uint64(1)).Return(nil)

		detail, err := svc.GetBoardDetail(ctx, 1)
		require.NoError(t, err)
		// 返回值包含本次浏览：存储值 5 + 1
		assert.Equal(t, int64(6), detail.ViewCount)
		assert.Equal(t, "tester", detail.AuthorUsername)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(nil, postRepo, userRepo, nil, testLogger(t))

		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(404)).
			Return(nil, commonerrors.ErrRepoNotFound)

		_, err := svc.GetBoardDetail(ctx, 404)
		assert.ErrorIs(t, err, myErrors.ErrPostNotFound)
		postRepo.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything)
	})

	t.Run("浏览量自增失败按持久化故障处理", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardService(nil, postRepo, userRepo, nil, testLogger(t))

		postRepo.On("GetPostByID", mock.Anything, mock.Anything, uint64(1)).
			Return(samplePost(1, 7, 5), nil)
		postRepo.On("IncrementViewCount", mock.Anything, uint64(1)).
			Return(assert.AnError)

		_, err := svc.GetBoardDetail(ctx, 1)
		assert.ErrorIs(t, err, myErrors.ErrPersistence)
	})
}
