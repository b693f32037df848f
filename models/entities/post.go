package entities

import "time"

// Post 帖子实体
// - 表名: posts (GORM 默认使用结构体名复数形式)
// - 注意: 不嵌入 go-common 的 BaseModel，本服务的删除是物理删除（DELETE），
//   不需要 DeletedAt 软删除列。
type Post struct {
	// 自增主键，由数据库在插入时生成，生成后不可变
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	// 标题，必填，最大长度255个字符
	// - 业务层另行按码点数限制为 200，varchar(255) 给 4 字节字符留出余量
	Title string `gorm:"type:varchar(255);not null"`

	// 正文内容，必填，长度不限
	Content string `gorm:"type:text;not null"`

	// 作者ID，关联 users 表的外键，创建后不可变
	// - 作者的展示名不冗余存储，读取时通过 JOIN users 获取（见 PostWithAuthor）
	UserID uint64 `gorm:"column:user_id;not null;index"`

	// 浏览量，非负单调递增计数器
	// - 只允许通过仓库层的原子自增语句修改，普通更新操作不触碰该列
	ViewCount int64 `gorm:"not null;default:0"`

	// 创建时间，插入时由 GORM 填充，之后不再变化
	CreatedAt time.Time

	// 更新时间，插入时与 CreatedAt 相同，内容每次修改成功后刷新
	UpdatedAt time.Time
}

// PostWithAuthor 是帖子的联表读取形态：帖子本体 + 作者展示名。
// - 仅由仓库层的查询填充，AuthorUsername 来自 JOIN users 的结果，永不写回数据库。
// - 仓库层保证返回该结构时 AuthorUsername 一定有值：帖子存在但作者行缺失
//   属于数据完整性故障，仓库层会直接报错而不是返回空用户名。
type PostWithAuthor struct {
	Post
	AuthorUsername string `gorm:"column:author_username;->"`
}
