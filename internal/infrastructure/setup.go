package infrastructure

import (
	"context"
	"io"
	"os"
	"reflect"

	"github.com/caarlos0/env/v6"
	"github.com/quintans/faults"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/quintans/simple-bank/internal/domain/app"
	"github.com/quintans/simple-bank/internal/infra/controller"
	"github.com/quintans/simple-bank/internal/infra/gateway/memory"
)

type Config struct {
	LogLevel             string          `env:"LOG_LEVEL" envDefault:"info"`
	LogFile              string          `env:"LOG_FILE" envDefault:"bank.log"`
	WithdrawalLimit      decimal.Decimal `env:"CHECKING_WITHDRAWAL_LIMIT" envDefault:"500"`
	MaxDailyWithdrawals  int             `env:"CHECKING_MAX_DAILY_WITHDRAWALS" envDefault:"3"`
	StrictRegistrationID bool            `env:"STRICT_REGISTRATION_ID" envDefault:"false"`
}

var parsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(decimal.Decimal{}): func(v string) (interface{}, error) {
		return decimal.NewFromString(v)
	},
}

// ParseConfig reads the configuration from the environment.
func ParseConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithFuncs(cfg, parsers); err != nil {
		return nil, faults.Wrap(err)
	}
	if !cfg.WithdrawalLimit.IsPositive() {
		return nil, faults.Errorf("CHECKING_WITHDRAWAL_LIMIT must be positive, got %s", cfg.WithdrawalLimit)
	}
	if cfg.MaxDailyWithdrawals <= 0 {
		return nil, faults.Errorf("CHECKING_MAX_DAILY_WITHDRAWALS must be positive, got %d", cfg.MaxDailyWithdrawals)
	}
	return cfg, nil
}

func NewLogger(cfg *Config, out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, faults.Wrap(err)
	}
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		DisableQuote:  true,
		FullTimestamp: true,
	})
	return logger, nil
}

func NewConsole(cfg *Config, logger log.FieldLogger, in io.Reader, out io.Writer) *controller.Console {
	// Repositories
	clients := memory.NewClientRepository()
	accounts := memory.NewAccountRepository()

	// Services
	clientSvc := app.NewClientService(clients, cfg.StrictRegistrationID)
	accountSvc := app.NewAccountService(clients, accounts, app.CheckingTerms{
		WithdrawalLimit:     cfg.WithdrawalLimit,
		MaxDailyWithdrawals: cfg.MaxDailyWithdrawals,
	}, nil)

	// Controllers
	return controller.NewConsole(logger, clientSvc, accountSvc, in, out)
}

func Setup(cfg *Config) error {
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return faults.Errorf("opening log file %s: %w", cfg.LogFile, err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := NewLogger(cfg, logOut)
	if err != nil {
		return err
	}
	logger.WithField("limit", cfg.WithdrawalLimit).
		WithField("maxDaily", cfg.MaxDailyWithdrawals).
		Info("bank session started")
	defer logger.Info("bank session ended")

	return NewConsole(cfg, logger, os.Stdin, os.Stdout).Run(context.Background())
}
