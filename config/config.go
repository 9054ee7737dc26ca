package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	ApiServer ServerConfigs   `toml:"api_server"`
	Database  DatabaseConfigs `toml:"database"`
	Auth      AuthConfigs     `toml:"auth"`
	Redis     RedisConfigs    `toml:"redis"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`

	AllowedOrigins []string `toml:"allowed_origins"`
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type AuthConfigs struct {
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Secret     string        `toml:"secret"`
	Expiration time.Duration `toml:"expiration"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

// Load reads the configuration file at path. The database password and the
// token secret can be overridden with environment variables so they do not
// need to live in the file.
func Load(path string) (Configs, error) {
	var configs Configs
	if _, err := toml.DecodeFile(path, &configs); err != nil {
		return Configs{}, err
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		configs.Database.Password = password
	}

	if secret := os.Getenv("TOKEN_SECRET"); secret != "" {
		configs.Auth.AccessToken.Secret = secret
	}

	return configs, nil
}
