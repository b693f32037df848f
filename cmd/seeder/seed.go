package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/service"
)

// Seed 先直接建一批用户（用户表由用户服务拥有，这里只为测试环境造数据），
// 再通过服务层并发创建帖子，让填充数据走完整的业务校验路径。
func Seed(ctx context.Context, db *gorm.DB, boardSvc service.BoardService, logger *core.ZapLogger, numUsers, numPosts int) {
	logger.Info("开始填充测试数据...", zap.Int("用户数", numUsers), zap.Int("帖子数", numPosts))

	// 1. 创建用户。用户服务不在本进程内，只能绕过服务层直接写表。
	userIDs := make([]uint64, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user := &entities.User{
			Username: gofakeit.Username(),
		}
		if err := db.WithContext(ctx).Create(user).Error; err != nil {
			logger.Error(fmt.Sprintf("创建用户 %d/%d 失败", i+1, numUsers), zap.Error(err))
			continue
		}
		userIDs = append(userIDs, user.ID)
	}
	if len(userIDs) == 0 {
		logger.Error("没有成功创建任何用户，跳过帖子填充")
		return
	}
	logger.Info("用户填充完毕", zap.Int("成功数量", len(userIDs)))

	// 2. 通过服务层并发创建帖子
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			actorID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
			createReq := &dto.CreateBoardRequest{
				Title:   gofakeit.Sentence(gofakeit.Number(5, 15)),
				Content: gofakeit.Paragraph(3, 5, 20, "\n\n"),
			}

			resp, err := boardSvc.CreateBoard(ctx, actorID, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.Uint64("actorID", actorID))
			} else {
				logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
					zap.Uint64("post_id", resp.ID),
					zap.String("title", resp.Title))
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕。")
}
