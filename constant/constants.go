package constant

// 服务标识，用于链路追踪与中间件上报
const (
	ServiceName    = "board_service"
	ServiceVersion = "1.0.0"
)

// 帖子字段约束
const (
	// TitleMaxRunes 是帖子标题允许的最大字符数（按 Unicode 码点计数，而非字节数）。
	// 中文标题一个汉字占 3 字节，如果按字节限制会导致中英文标题可输入长度不一致，
	// 因此统一按码点计数。
	TitleMaxRunes = 200
)

// 分页默认值
const (
	// DefaultPageSize 是列表查询未指定 pageSize 时使用的默认每页数量。
	DefaultPageSize = 10

	// MaxPageSize 是列表查询允许的最大每页数量，防止单次查询拖垮数据库。
	MaxPageSize = 100
)
