package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/player"
)

type Config struct {
	Addr        string
	Transport   string
	Mode        string
	Strategy    string
	Seed        int64
	HistoryFile string
	DealFile    string
	RedisAddr   string
	RedisDB     int
	QueueName   string
}

var ErrInvalidConfig = errors.New("invalid config")

// Load reads .env when present, then the environment, then args. Later
// sources win.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse(args)
}

// Parse builds the config from the environment and args only.
func Parse(args []string) (Config, error) {
	cfg := Config{
		Addr:        getEnv("UNO_ADDR", consts.DefaultAddr),
		Transport:   getEnv("UNO_TRANSPORT", consts.TransportTCP),
		Mode:        getEnv("UNO_MODE", consts.ModeClient),
		Strategy:    getEnv("UNO_BOT_STRATEGY", player.StrategyNaive),
		HistoryFile: getEnv("UNO_HISTORY_FILE", ""),
		DealFile:    getEnv("UNO_DEAL_FILE", ""),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		QueueName:   getEnv("HISTORIAN_QUEUE_NAME", consts.DefaultQueueName),
	}
	var err error
	if cfg.Seed, err = getEnvInt64("UNO_SEED", 0); err != nil {
		return Config{}, err
	}
	redisDB, err := getEnvInt64("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.RedisDB = int(redisDB)

	flags := flag.NewFlagSet("uno", flag.ContinueOnError)
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "address the server listens on and clients dial")
	flags.StringVar(&cfg.Transport, "transport", cfg.Transport, "tcp or ws")
	flags.StringVar(&cfg.Mode, "mode", cfg.Mode, "server, client or bot")
	flags.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "bot strategy: naive or good")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed, 0 for time based")
	flags.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "append game records to this file")
	flags.StringVar(&cfg.DealFile, "deal", cfg.DealFile, "start the server from the deal in this JSON file")
	flags.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "push game records to this Redis server")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Transport {
	case consts.TransportTCP, consts.TransportWebsocket:
	default:
		return fmt.Errorf("%w: transport %q", ErrInvalidConfig, c.Transport)
	}
	switch c.Mode {
	case consts.ModeServer, consts.ModeClient, consts.ModeBot:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidConfig, c.Mode)
	}
	switch c.Strategy {
	case player.StrategyNaive, player.StrategyGood:
	default:
		return fmt.Errorf("%w: strategy %q", ErrInvalidConfig, c.Strategy)
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidConfig)
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) (int64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, s)
	}
	return v, nil
}
