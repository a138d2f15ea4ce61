package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
)

type Config struct {
	App               App                `mapstructure:",squash"`
	Server            Server             `mapstructure:",squash"`
	Outreach          Outreach           `mapstructure:",squash"`
	Dashboard         Dashboard          `mapstructure:",squash"`
	DashboardSnapshot DashboardSnapshot  `mapstructure:",squash"`
	Cors              Cors               `mapstructure:",squash"`
	RawWorkspaces     string             `mapstructure:"workspaces"`
	Workspaces        []domain.Workspace `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Outreach struct {
	URL     string        `mapstructure:"outreach_url"`
	Timeout time.Duration `mapstructure:"outreach_timeout"`
}

type Dashboard struct {
	MonthlyStatsWindow  int  `mapstructure:"monthly_stats_window"`
	DetailedStatsStrict bool `mapstructure:"detailed_stats_strict"`
}

type DashboardSnapshot struct {
	CronSchedule string `mapstructure:"dashboard_snapshot_cron"`
	Enabled      bool   `mapstructure:"dashboard_snapshot_enabled"`
	RunOnStart   bool   `mapstructure:"dashboard_snapshot_on_start"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 7777)

	viper.SetDefault("OUTREACH_URL", "https://mail.scaleyourleads.com")
	viper.SetDefault("OUTREACH_TIMEOUT", "60s")

	// Formato: Nome=token;OutroNome=outroToken
	viper.SetDefault("WORKSPACES", "")

	viper.SetDefault("MONTHLY_STATS_WINDOW", 12)     // 12 meses de estatísticas por campanha
	viper.SetDefault("DETAILED_STATS_STRICT", false) // Falha de um workspace derruba a resposta inteira

	viper.SetDefault("DASHBOARD_SNAPSHOT_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("DASHBOARD_SNAPSHOT_ENABLED", false)      // Habilitar snapshot periódico
	viper.SetDefault("DASHBOARD_SNAPSHOT_ON_START", true)      // Calcular o snapshot na inicialização

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Workspaces, err = ParseWorkspaces(config.RawWorkspaces)
	if err != nil {
		return nil, err
	}

	if len(config.Workspaces) == 0 {
		logrus.Warn("Nenhum workspace configurado (WORKSPACES vazio)")
	}

	if config.Dashboard.MonthlyStatsWindow <= 0 {
		config.Dashboard.MonthlyStatsWindow = 12
	}

	return config, nil
}

// ParseWorkspaces interpreta a lista "Nome=token;OutroNome=outroToken" mantendo a ordem declarada.
// Nomes repetidos não são permitidos.
func ParseWorkspaces(raw string) ([]domain.Workspace, error) {
	workspaces := []domain.Workspace{}
	seen := make(map[string]bool)

	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, token, found := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		token = strings.TrimSpace(token)
		if !found || name == "" || token == "" {
			return nil, fmt.Errorf("workspace inválido em WORKSPACES: %q", entry)
		}

		if seen[name] {
			return nil, fmt.Errorf("workspace duplicado em WORKSPACES: %q", name)
		}
		seen[name] = true

		workspaces = append(workspaces, domain.Workspace{Name: name, Token: token})
	}

	return workspaces, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
