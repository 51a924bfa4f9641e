package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		AdminEmail   string `yaml:"admin_email"` // куда падают уведомления о новых лидах
		FrontendURL  string `yaml:"frontend_url"`
	} `yaml:"email"`

	JWT struct {
		Secret      string `yaml:"secret"`
		TTLHours    int    `yaml:"ttl_hours"`          // обычная сессия
		RememberTTL int    `yaml:"remember_ttl_hours"` // сессия с remember_me
	} `yaml:"jwt"`

	Auth struct {
		LockoutThreshold int `yaml:"lockout_threshold"` // неудачных попыток до блокировки
		LockoutMinutes   int `yaml:"lockout_minutes"`
		ResetTokenTTL    int `yaml:"reset_token_ttl_minutes"`
		// Старый вариант middleware не проверял смену пароля после выдачи
		// токена. Флаг оставлен только для bug-совместимости, по умолчанию
		// проверка включена.
		LegacySkipPasswordCheck bool `yaml:"legacy_skip_password_check"`
	} `yaml:"auth"`

	Admin struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// Конфигурация из переменных окружения (тесты и контейнеры)
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("FROM_EMAIL")
	cfg.Email.AdminEmail = os.Getenv("ADMIN_EMAIL")
	cfg.Email.FrontendURL = os.Getenv("FRONTEND_URL")

	cfg.Admin.Name = os.Getenv("FIRST_ADMIN_NAME")
	cfg.Admin.Email = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyDefaults заполняет нулевые поля значениями по умолчанию
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 24
	}
	if cfg.JWT.RememberTTL == 0 {
		cfg.JWT.RememberTTL = 30 * 24
	}
	if cfg.Auth.LockoutThreshold == 0 {
		cfg.Auth.LockoutThreshold = 5
	}
	if cfg.Auth.LockoutMinutes == 0 {
		cfg.Auth.LockoutMinutes = 15
	}
	if cfg.Auth.ResetTokenTTL == 0 {
		cfg.Auth.ResetTokenTTL = 10
	}
	if cfg.Email.FrontendURL == "" {
		cfg.Email.FrontendURL = "http://localhost:5173"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// TokenTTL возвращает срок жизни access token
func (c *Config) TokenTTL(rememberMe bool) time.Duration {
	if rememberMe {
		return time.Duration(c.JWT.RememberTTL) * time.Hour
	}
	return time.Duration(c.JWT.TTLHours) * time.Hour
}

// LockoutDuration возвращает длительность блокировки аккаунта
func (c *Config) LockoutDuration() time.Duration {
	return time.Duration(c.Auth.LockoutMinutes) * time.Minute
}

// ResetTokenLifetime возвращает срок жизни reset token
func (c *Config) ResetTokenLifetime() time.Duration {
	return time.Duration(c.Auth.ResetTokenTTL) * time.Minute
}
