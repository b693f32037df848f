package entities

import "time"

// User 用户实体（只读引用）
// - 表名: users
// - 本服务不负责用户的注册/修改/注销，只在写操作前确认操作者存在，
//   以及在读取帖子时 JOIN 出作者的展示名。
type User struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(50);not null"` // 展示名
	CreatedAt time.Time
	UpdatedAt time.Time
}
