package config

import "os"

type AppConfig struct {
	DebugMode      bool
	ExecutorCfg    *ExecutorConfig
	TranslatorCfg  *TranslatorConfig
	BenchEngineCfg *BenchEngineCfg
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JwtConfig      *JwtConfig
	GGAuthConfig   *GGAuthConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		ExecutorCfg:    NewExecutorConfig(),
		TranslatorCfg:  NewTranslatorConfig(),
		BenchEngineCfg: NewBenchEngineCfg(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JwtConfig:      NewJwtConfig(),
		GGAuthConfig:   NewGGAuthConfig(),
	}
}
