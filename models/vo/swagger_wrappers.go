package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// BoardDetailResponseWrapper 对应 response.APIResponse[vo.BoardDetailVO]
type BoardDetailResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    BoardDetailVO `json:"data"`
}

// BoardPageResponseWrapper 对应 response.APIResponse[vo.BoardPageVO]
type BoardPageResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    BoardPageVO `json:"data"`
}

// BoardIDResponseWrapper 对应 response.APIResponse[uint64]，用于创建帖子后返回新ID。
type BoardIDResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    uint64 `json:"data" example:"1"`
}

// CountResponseWrapper 对应 response.APIResponse[int64]，用于帖子总数查询。
type CountResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    int64  `json:"data" example:"42"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
