package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Tables     Tables     `mapstructure:",squash"`
	Thresholds Thresholds `mapstructure:",squash"`
	Health     Health     `mapstructure:",squash"`
	Cache      Cache      `mapstructure:",squash"`
	Anthropic  Anthropic  `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Warmup     Warmup     `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`

	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	ConnectRetries int    `mapstructure:"database_connect_retries"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Tables lista, em ordem de preferência, as tabelas candidatas de cada dataset lógico
type Tables struct {
	Accounts       []string `mapstructure:"tables_accounts"`
	SalesReps      []string `mapstructure:"tables_sales_reps"`
	FctMRR         []string `mapstructure:"tables_fct_mrr"`
	FctPipeline    []string `mapstructure:"tables_fct_pipeline"`
	StageHistory   []string `mapstructure:"tables_stage_history"`
	SupportTickets []string `mapstructure:"tables_support_tickets"`
	HealthSnapshot []string `mapstructure:"tables_health_snapshot"`
}

type Thresholds struct {
	NRRAlertBelow              float64 `mapstructure:"nrr_alert_below"`
	GRRAlertBelow              float64 `mapstructure:"grr_alert_below"`
	PipelineCoverageAlertBelow float64 `mapstructure:"pipeline_coverage_alert_below"`
	ARRNegativeTrendLookback   int     `mapstructure:"arr_negative_trend_lookback"`
	RetentionCoverageThreshold float64 `mapstructure:"retention_coverage_threshold_pct"`
	PipelineCoverageTargetX    float64 `mapstructure:"pipeline_coverage_target_x"`
	TopMoversLimit             int     `mapstructure:"top_movers_limit"`
}

// Health contém os pesos do score de saúde calculado quando não existe tabela de health
type Health struct {
	BaseScore            float64 `mapstructure:"health_base_score"`
	GrowthBonus          float64 `mapstructure:"health_growth_bonus"`
	DeclinePenalty       float64 `mapstructure:"health_decline_penalty"`
	LostPenalty          float64 `mapstructure:"health_lost_penalty"`
	TicketsHigh          int     `mapstructure:"health_tickets_high"`
	TicketsHighPenalty   float64 `mapstructure:"health_tickets_high_penalty"`
	TicketsMedium        int     `mapstructure:"health_tickets_medium"`
	TicketsMediumPenalty float64 `mapstructure:"health_tickets_medium_penalty"`
	TicketWindowDays     int     `mapstructure:"health_ticket_window_days"`
}

type Cache struct {
	MetricsTTL   time.Duration `mapstructure:"cache_metrics_ttl"`
	PackTTL      time.Duration `mapstructure:"cache_pack_ttl"`
	TablesTTL    time.Duration `mapstructure:"cache_tables_ttl"`
	DomainsTTL   time.Duration `mapstructure:"cache_domains_ttl"`
	NarrativeTTL time.Duration `mapstructure:"cache_narrative_ttl"`
}

type Anthropic struct {
	APIKey    string `mapstructure:"anthropic_api_key"`
	Model     string `mapstructure:"anthropic_model"`
	MaxTokens int64  `mapstructure:"anthropic_max_tokens"`
}

type Auth struct {
	// Clients no formato client_id:role:bcrypt_hash separados por vírgula
	Clients  []string      `mapstructure:"auth_clients"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Warmup struct {
	CronSchedule string `mapstructure:"warmup_cron"`
	Enabled      bool   `mapstructure:"warmup_enabled"`
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*){1,2}$`)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/gtm_copilot?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_CONNECT_RETRIES", 5)

	viper.SetDefault("TABLES_ACCOUNTS", "raw.accounts")
	viper.SetDefault("TABLES_SALES_REPS", "raw.sales_reps")
	viper.SetDefault("TABLES_FCT_MRR", "marts.fct_mrr_complete,marts.fct_mrr")
	viper.SetDefault("TABLES_FCT_PIPELINE", "marts.fct_pipeline")
	viper.SetDefault("TABLES_STAGE_HISTORY", "raw.opportunity_stage_history,marts.opportunity_stage_history")
	viper.SetDefault("TABLES_SUPPORT_TICKETS", "raw.support_tickets")
	viper.SetDefault("TABLES_HEALTH_SNAPSHOT", "marts.account_health,marts.metrics_account_health,marts.fct_account_health")

	viper.SetDefault("NRR_ALERT_BELOW", 90.0)
	viper.SetDefault("GRR_ALERT_BELOW", 90.0)
	viper.SetDefault("PIPELINE_COVERAGE_ALERT_BELOW", 3.0) // heurística comum de 3x
	viper.SetDefault("ARR_NEGATIVE_TREND_LOOKBACK", 3)     // meses
	viper.SetDefault("RETENTION_COVERAGE_THRESHOLD_PCT", 90.0)
	viper.SetDefault("PIPELINE_COVERAGE_TARGET_X", 3.0)
	viper.SetDefault("TOP_MOVERS_LIMIT", 10)

	viper.SetDefault("HEALTH_BASE_SCORE", 70)
	viper.SetDefault("HEALTH_GROWTH_BONUS", 15)
	viper.SetDefault("HEALTH_DECLINE_PENALTY", 15)
	viper.SetDefault("HEALTH_LOST_PENALTY", 50)
	viper.SetDefault("HEALTH_TICKETS_HIGH", 8)
	viper.SetDefault("HEALTH_TICKETS_HIGH_PENALTY", 20)
	viper.SetDefault("HEALTH_TICKETS_MEDIUM", 4)
	viper.SetDefault("HEALTH_TICKETS_MEDIUM_PENALTY", 10)
	viper.SetDefault("HEALTH_TICKET_WINDOW_DAYS", 90)

	viper.SetDefault("CACHE_METRICS_TTL", "15m")
	viper.SetDefault("CACHE_PACK_TTL", "5m")
	viper.SetDefault("CACHE_TABLES_TTL", "60m")
	viper.SetDefault("CACHE_DOMAINS_TTL", "30m")
	viper.SetDefault("CACHE_NARRATIVE_TTL", "15m")

	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-sonnet-4-5")
	viper.SetDefault("ANTHROPIC_MAX_TOKENS", 1500)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_CLIENTS", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("WARMUP_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("WARMUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.Tables = config.Tables.trimmed()
	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica os nomes de tabelas candidatas e os limiares configurados.
// Nomes de tabela não podem ser parâmetros de query, por isso só aceitamos identificadores simples.
func (c *Config) Validate() error {
	for dataset, candidates := range c.Tables.ByDataset() {
		for _, candidate := range candidates {
			if !identifierPattern.MatchString(candidate) {
				return fmt.Errorf("nome de tabela inválido para %s: %q", dataset, candidate)
			}
		}
	}

	required := map[string][]string{
		"ACCOUNTS":     c.Tables.Accounts,
		"FCT_MRR":      c.Tables.FctMRR,
		"FCT_PIPELINE": c.Tables.FctPipeline,
	}
	for dataset, candidates := range required {
		if len(candidates) == 0 {
			return fmt.Errorf("nenhuma tabela candidata configurada para o dataset obrigatório %s", dataset)
		}
	}

	if c.Thresholds.RetentionCoverageThreshold <= 0 || c.Thresholds.RetentionCoverageThreshold > 100 {
		return fmt.Errorf("limiar de cobertura de retenção inválido: %.2f", c.Thresholds.RetentionCoverageThreshold)
	}
	if c.Thresholds.PipelineCoverageTargetX <= 0 {
		return fmt.Errorf("meta de cobertura de pipeline inválida: %.2f", c.Thresholds.PipelineCoverageTargetX)
	}
	if c.Thresholds.ARRNegativeTrendLookback < 2 {
		return fmt.Errorf("janela de tendência de ARR deve ser de pelo menos 2 meses")
	}

	return nil
}

// ByDataset retorna as candidatas indexadas pelo nome lógico do dataset
func (t Tables) ByDataset() map[string][]string {
	return map[string][]string{
		"ACCOUNTS":        t.Accounts,
		"SALES_REPS":      t.SalesReps,
		"FCT_MRR":         t.FctMRR,
		"FCT_PIPELINE":    t.FctPipeline,
		"STAGE_HISTORY":   t.StageHistory,
		"SUPPORT_TICKETS": t.SupportTickets,
		"HEALTH_SNAPSHOT": t.HealthSnapshot,
	}
}

func (t Tables) trimmed() Tables {
	return Tables{
		Accounts:       trimAll(t.Accounts),
		SalesReps:      trimAll(t.SalesReps),
		FctMRR:         trimAll(t.FctMRR),
		FctPipeline:    trimAll(t.FctPipeline),
		StageHistory:   trimAll(t.StageHistory),
		SupportTickets: trimAll(t.SupportTickets),
		HealthSnapshot: trimAll(t.HealthSnapshot),
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
