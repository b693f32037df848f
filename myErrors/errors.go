package myErrors

import "errors"

// 服务层对外暴露的业务错误。
// - 控制器通过 errors.Is 匹配这些哨兵错误并映射为对应的 HTTP 状态码。
// - 仓库层的"未找到"统一用 commonerrors.ErrRepoNotFound 表达，
//   由服务层翻译为 ErrPostNotFound 或 ErrUnknownActor；
//   仓库层只在数据完整性被破坏时直接返回 ErrPersistence。
var (
	// ErrInvalidInput 表示输入不合法（空标题/空内容/标题超长等），调用方修正后可重试。
	ErrInvalidInput = errors.New("board: invalid input")

	// ErrUnknownActor 表示操作者 ID 不对应任何已存在的用户。
	ErrUnknownActor = errors.New("board: actor does not exist")

	// ErrPostNotFound 表示目标帖子不存在。
	ErrPostNotFound = errors.New("board: post not found")

	// ErrNotAuthorized 表示操作者不是帖子的作者，无权修改或删除。
	ErrNotAuthorized = errors.New("board: actor is not the post owner")

	// ErrPersistence 表示存储层未能完成一个预期必定成功的操作
	// （例如插入后取不到自增主键、关联的作者行缺失）。
	// 属于致命的基础设施/数据完整性故障，不可重试，对外只暴露为内部错误。
	ErrPersistence = errors.New("board: persistence failure")
)
