package config

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

// Topics 帖子生命周期事件对应的主题。
// - 下游（搜索同步、内容风控等）按需订阅，本服务只做发布。
type Topics struct {
	BoardCreated string `mapstructure:"boardCreated" yaml:"boardCreated"` //  帖子创建主题
	BoardUpdated string `mapstructure:"boardUpdated" yaml:"boardUpdated"` //  帖子更新主题
	BoardDeleted string `mapstructure:"boardDeleted" yaml:"boardDeleted"` //  帖子删除主题
}
