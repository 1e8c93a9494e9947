package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Políticas de acesso staff (pergunta em aberto do produto: as duas variantes
// existiram; a escolha é explícita por configuração, nunca implícita no código).
const (
	// StaffPolicyRequireRole bloqueia usuários sem papel com aviso de
	// "aguardando liberação"
	StaffPolicyRequireRole = "require_role"
	// StaffPolicyAnyAuthenticated libera qualquer sessão autenticada
	StaffPolicyAnyAuthenticated = "any_authenticated"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Access     Access     `mapstructure:",squash"`
	CardRollup CardRollup `mapstructure:",squash"`
	Dashboard  Dashboard  `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	TokenTTLHours      int `mapstructure:"auth_token_ttl_hours"`
	ResetTokenTTLHours int `mapstructure:"auth_reset_token_ttl_hours"`
}

type Access struct {
	StaffPolicy string `mapstructure:"staff_access_policy"`
}

type CardRollup struct {
	CronSchedule string `mapstructure:"card_rollup_cron"`
	Enabled      bool   `mapstructure:"card_rollup_enabled"`
}

type Dashboard struct {
	RefreshTimeoutSeconds int `mapstructure:"dashboard_refresh_timeout_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/nps?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)
	viper.SetDefault("AUTH_RESET_TOKEN_TTL_HOURS", 2)

	// require_role é o padrão de produção; any_authenticated reproduz o
	// comportamento liberado usado durante o desenvolvimento
	viper.SetDefault("STAFF_ACCESS_POLICY", StaffPolicyRequireRole)

	viper.SetDefault("CARD_ROLLUP_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("CARD_ROLLUP_ENABLED", false)

	viper.SetDefault("DASHBOARD_REFRESH_TIMEOUT_SECONDS", 15)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Access.StaffPolicy != StaffPolicyRequireRole &&
		config.Access.StaffPolicy != StaffPolicyAnyAuthenticated {
		return nil, fmt.Errorf("STAFF_ACCESS_POLICY inválida: %q", config.Access.StaffPolicy)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env via godotenv, tentando o diretório atual
// e os diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
