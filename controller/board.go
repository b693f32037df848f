package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/service"
)

// BoardController 定义帖子控制器的结构体
type BoardController struct {
	boardService     service.BoardService // 服务层接口，通过依赖注入传入
	boardListService service.BoardListService
}

// NewBoardController 构造函数，用于创建 BoardController 实例
func NewBoardController(boardService service.BoardService, boardListService service.BoardListService) *BoardController {
	return &BoardController{
		boardService:     boardService,
		boardListService: boardListService,
	}
}

// actorIDFromContext 从 gin.Context 中取出网关中间件透传的用户 ID 并解析为数字。
// - 取不到或解析失败时直接写出 401 响应并返回 false，调用方应立即 return。
func actorIDFromContext(c *gin.Context) (uint64, bool) {
	userID := c.GetString(string(constants.UserIDKey))
	if userID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取用户信息")
		return 0, false
	}
	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无效的用户 ID")
		return 0, false
	}
	return id, true
}

// respondServiceError 按服务层哨兵错误映射 HTTP 状态码。
// - 未匹配到任何业务错误的，一律按内部错误处理，不向客户端泄露细节。
func respondServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, myErrors.ErrInvalidInput):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, action+"失败: "+err.Error())
	case errors.Is(err, myErrors.ErrUnknownActor):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, action+"失败: 用户不存在")
	case errors.Is(err, myErrors.ErrPostNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, action+"失败: 帖子不存在")
	case errors.Is(err, myErrors.ErrNotAuthorized):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, action+"失败: 没有操作该帖子的权限")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, action+"失败")
	}
}

// CreateBoard 处理创建帖子的 HTTP 请求
// @Summary      创建新帖子
// @Description  使用提供的标题和正文创建一个新帖子，作者取当前登录用户。
// @Tags         boards (帖子)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "帖子标题与正文"
// @Success      200 {object} vo.BoardDetailResponseWrapper "帖子创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "操作者用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "创建帖子时发生内部服务器错误"
// @Router       /api/v1/board/boards [post]
func (ctrl *BoardController) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	actorID, ok := actorIDFromContext(c)
	if !ok {
		return
	}

	detail, err := ctrl.boardService.CreateBoard(c.Request.Context(), actorID, &req)
	if err != nil {
		respondServiceError(c, err, "创建帖子")
		return
	}
	response.RespondSuccess(c, detail, "帖子创建成功")
}

// UpdateBoard 处理作者修改帖子的 HTTP 请求
// @Summary      修改指定ID的帖子
// @Description  覆盖更新帖子的标题与正文。只有作者本人可以修改。
// @Tags         boards (帖子)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "帖子 ID" Format(uint64)
// @Param        request body dto.UpdateBoardRequest true "新的标题与正文"
// @Success      200 {object} vo.BoardDetailResponseWrapper "帖子更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 或请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      403 {object} vo.BaseResponseWrapper "操作者不是帖子作者"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子或用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "更新帖子时发生内部服务器错误"
// @Router       /api/v1/board/boards/{id} [put]
func (ctrl *BoardController) UpdateBoard(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	actorID, ok := actorIDFromContext(c)
	if !ok {
		return
	}

	detail, err := ctrl.boardService.UpdateBoard(c.Request.Context(), actorID, id, &req)
	if err != nil {
		respondServiceError(c, err, "更新帖子")
		return
	}
	response.RespondSuccess(c, detail, "帖子更新成功")
}

// DeleteBoard 处理作者删除帖子的 HTTP 请求
// @Summary      删除指定ID的帖子
// @Description  物理删除一个帖子。只有作者本人可以删除。
// @Tags         boards (帖子)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "帖子 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "帖子删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      403 {object} vo.BaseResponseWrapper "操作者不是帖子作者"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子或用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "删除帖子时发生内部服务器错误"
// @Router       /api/v1/board/boards/{id} [delete]
func (ctrl *BoardController) DeleteBoard(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return
	}

	actorID, ok := actorIDFromContext(c)
	if !ok {
		return
	}

	if err := ctrl.boardService.DeleteBoard(c.Request.Context(), actorID, id); err != nil {
		respondServiceError(c, err, "删除帖子")
		return
	}
	response.RespondSuccess[any](c, nil, "帖子删除成功")
}

// GetBoardDetail 处理获取帖子详情的 HTTP 请求
// @Summary      获取指定ID的帖子详情 (公开)
// @Description  通过帖子的 ID 检索详细信息，每次读取会使浏览量加一。无需登录。
// @Tags         boards (帖子)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "帖子 ID" Format(uint64)
// @Success      200 {object} vo.BoardDetailResponseWrapper "帖子详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "检索帖子详情时发生内部服务器错误"
// @Router       /api/v1/board/boards/{id} [get]
func (ctrl *BoardController) GetBoardDetail(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式")
		return
	}

	detail, err := ctrl.boardService.GetBoardDetail(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "检索帖子详情")
		return
	}
	response.RespondSuccess(c, detail, "帖子详情检索成功")
}

// ListBoards 处理获取帖子列表的 HTTP 请求 (分页)
// @Summary      获取帖子列表 (公开, 分页)
// @Description  按创建时间倒序分页获取全部帖子的摘要列表，附带总记录数。
// @Tags         boards (帖子)
// @Accept       json
// @Produce      json
// @Param        page query int true "页码 (从0开始)" format(int32) minimum(0) default(0)
// @Param        page_size query int true "每页数量" format(int32) minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.BoardPageResponseWrapper "成功响应，包含帖子列表和总记录数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/boards [get]
func (ctrl *BoardController) ListBoards(c *gin.Context) {
	var req dto.ListBoardsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	page, err := ctrl.boardListService.ListBoards(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "获取帖子列表")
		return
	}
	response.RespondSuccess(c, page, "帖子列表获取成功")
}

// ListBoardsByUser 处理获取指定用户帖子列表的 HTTP 请求 (分页)
// @Summary      获取指定用户的帖子列表 (公开, 分页)
// @Description  按创建时间倒序分页获取指定作者的帖子摘要列表，附带该作者的总帖数。
// @Tags         boards (帖子)
// @Accept       json
// @Produce      json
// @Param        user_id query uint64 true "要查询其帖子的用户 ID" Format(uint64)
// @Param        page query int true "页码 (从0开始)" format(int32) minimum(0) default(0)
// @Param        page_size query int true "每页数量" format(int32) minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.BoardPageResponseWrapper "成功响应，包含帖子列表和总记录数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/boards/by-author [get]
func (ctrl *BoardController) ListBoardsByUser(c *gin.Context) {
	var req dto.ListBoardsByUserRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	page, err := ctrl.boardListService.ListBoardsByUser(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "获取用户帖子列表")
		return
	}
	response.RespondSuccess(c, page, "用户帖子列表获取成功")
}

// TotalBoards 处理帖子总数查询的 HTTP 请求
// @Summary      获取帖子总数 (公开)
// @Description  返回帖子总数；传入 user_id 时返回该作者的帖子总数。
// @Tags         boards (帖子)
// @Accept       json
// @Produce      json
// @Param        user_id query uint64 false "作者用户 ID (可选)" Format(uint64)
// @Success      200 {object} vo.CountResponseWrapper "帖子总数获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/boards/total [get]
func (ctrl *BoardController) TotalBoards(c *gin.Context) {
	userIDStr := c.Query("user_id")

	var (
		total int64
		err   error
	)
	if userIDStr == "" {
		total, err = ctrl.boardListService.TotalBoards(c.Request.Context())
	} else {
		var userID uint64
		userID, err = strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的用户 ID 格式")
			return
		}
		total, err = ctrl.boardListService.TotalBoardsByUser(c.Request.Context(), userID)
	}
	if err != nil {
		respondServiceError(c, err, "获取帖子总数")
		return
	}
	response.RespondSuccess(c, total, "帖子总数获取成功")
}

// RegisterRoutes 注册 BoardController 的路由
func (ctrl *BoardController) RegisterRoutes(group *gin.RouterGroup) {
	boards := group.Group("/boards")
	{
		boards.POST("", ctrl.CreateBoard)               // POST   /api/v1/board/boards
		boards.GET("", ctrl.ListBoards)                 // GET    /api/v1/board/boards
		boards.GET("/by-author", ctrl.ListBoardsByUser) // GET    /api/v1/board/boards/by-author
		boards.GET("/total", ctrl.TotalBoards)          // GET    /api/v1/board/boards/total
		boards.GET("/:id", ctrl.GetBoardDetail)         // GET    /api/v1/board/boards/:id
		boards.PUT("/:id", ctrl.UpdateBoard)            // PUT    /api/v1/board/boards/:id
		boards.DELETE("/:id", ctrl.DeleteBoard)         // DELETE /api/v1/board/boards/:id
	}
}
