package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"COURSEBAY_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	TokenTTL   string `yaml:"token_ttl" env:"COURSEBAY_JWT_TOKEN_TTL" env-default:"360h"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"COURSEBAY_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает продолжительность времени жизни токена.
// По умолчанию токен живет 15 суток.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 360 * time.Hour
	}
	return duration
}
