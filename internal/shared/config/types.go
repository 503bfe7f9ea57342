package config

import "fmt"

type TelegramConfig struct {
	BotToken    string  `mapstructure:"bot_token"`
	AdminIDs    []int64 `mapstructure:"admin_ids"`
	PollTimeout int     `mapstructure:"poll_timeout"`
}

// IsAdmin reports whether the given Telegram user ID is in the configured
// administrator allow-list. Membership is checked per event, never cached.
func (t *TelegramConfig) IsAdmin(userID int64) bool {
	for _, id := range t.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type WhitelistConfig struct {
	ScreenSession  string `mapstructure:"screen_session"`
	JavaCommand    string `mapstructure:"java_command"`
	BedrockCommand string `mapstructure:"bedrock_command"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type RosterConfig struct {
	Path string `mapstructure:"path"`
}
