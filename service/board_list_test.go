package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

func TestBoardListService_ListBoards(t *testing.T) {
	ctx := context.Background()

	t.Run("偏移量等于页码乘页大小", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardListService(nil, postRepo, userRepo, testLogger(t))

		postRepo.On("CountPosts", mock.Anything).Return(int64(12), nil)
		postRepo.On("ListPage", mock.Anything, 10, 5).
			Return([]*entities.PostWithAuthor{samplePost(3, 7, 1)}, nil)

		page, err := svc.ListBoards(ctx, &dto.ListBoardsRequest{Page: 2, PageSize: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(12), page.Total)
		require.Len(t, page.Posts, 1)
		assert.Equal(t, uint64(3), page.Posts[0].ID)
	})

	t.Run("超出总数的页返回空列表", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardListService(nil, postRepo, userRepo, testLogger(t))

		postRepo.On("CountPosts", mock.Anything).Return(int64(3), nil)
		postRepo.On("ListPage", mock.Anything, 100, 10).
			Return([]*entities.PostWithAuthor{}, nil)

		page, err := svc.ListBoards(ctx, &dto.ListBoardsRequest{Page: 10, PageSize: 10})
		require.NoError(t, err)
		assert.Empty(t, page.Posts)
		assert.NotNil(t, page.Posts) // 空列表而不是 nil
		assert.Equal(t, int64(3), page.Total)
	})

	t.Run("非法分页参数", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardListService(nil, postRepo, userRepo, testLogger(t))

		cases := []dto.ListBoardsRequest{
			{Page: -1, PageSize: 10},
			{Page: 0, PageSize: 0},
			{Page: 0, PageSize: 101},
		}
		for _, req := range cases {
			_, err := svc.ListBoards(ctx, &req)
			assert.ErrorIs(t, err, myErrors.ErrInvalidInput)
		}
		postRepo.AssertNotCalled(t, "ListPage", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBoardListService_ListBoardsByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("按作者分页查询", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardListService(nil, postRepo, userRepo, testLogger(t))

		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(7)).Return(true, nil)
		postRepo.On("CountPostsByUser", mock.Anything, uint64(7)).Return(int64(2), nil)
		postRepo.On("ListPageByUser", mock.Anything, uint64(7), 0, 10).
			Return([]*entities.PostWithAuthor{samplePost(1, 7, 0), samplePost(2, 7, 3)}, nil)

		page, err := svc.ListBoardsByUser(ctx, &dto.ListBoardsByUserRequest{
			UserID: 7, Page: 0, PageSize: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		assert.Len(t, page.Posts, 2)
	})

	t.Run("目标用户不存在", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardListService(nil, postRepo, userRepo, testLogger(t))

		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(404)).Return(false, nil)

		_, err := svc.ListBoardsByUser(ctx, &dto.ListBoardsByUserRequest{
			UserID: 404, Page: 0, PageSize: 10,
		})
		assert.ErrorIs(t, err, myErrors.ErrUnknownActor)
		postRepo.AssertNotCalled(t, "ListPageByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBoardListService_Totals(t *testing.T) {
	ctx := context.Background()

	t.Run("全站总数", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardListService(nil, postRepo, userRepo, testLogger(t))

		postRepo.On("CountPosts", mock.Anything).Return(int64(42), nil)
		total, err := svc.TotalBoards(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(42), total)
	})

	t.Run("按作者总数", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardListService(nil, postRepo, userRepo, testLogger(t))

		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(7)).Return(true, nil)
		postRepo.On("CountPostsByUser", mock.Anything, uint64(7)).Return(int64(5), nil)
		total, err := svc.TotalBoardsByUser(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
	})

	t.Run("按作者总数但用户不存在", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		userRepo := new(mockUserRepo)
		svc := NewBoardListService(nil, postRepo, userRepo, testLogger(t))

		userRepo.On("ExistsByID", mock.Anything, mock.Anything, uint64(404)).Return(false, nil)
		_, err := svc.TotalBoardsByUser(ctx, 404)
		assert.ErrorIs(t, err, myErrors.ErrUnknownActor)
	})
}
