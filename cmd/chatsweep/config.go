package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rom8726/chatsweep"
	"github.com/rom8726/chatsweep/discord"
)

type Config struct {
	Token       string        `mapstructure:"token"`
	Bot         bool          `mapstructure:"bot"`
	User        string        `mapstructure:"user"`
	Channels    []string      `mapstructure:"channel"`
	AllChannels bool          `mapstructure:"all-channels"`
	Usernames   []string      `mapstructure:"usernames"`
	Months      int           `mapstructure:"months"`
	Delay       time.Duration `mapstructure:"delay"`
	PageSize    int           `mapstructure:"page-size"`
	DryRun      bool          `mapstructure:"dry-run"`
	APIURL      string        `mapstructure:"api-url"`
	Listen      string        `mapstructure:"listen"`
	Interval    time.Duration `mapstructure:"interval"`

	Audit   AuditConfig   `mapstructure:"audit"`
	Protect ProtectConfig `mapstructure:"protect"`
	Notify  NotifyConfig  `mapstructure:"notify"`
	OTel    OTelConfig    `mapstructure:"otel"`
	Log     LogConfig     `mapstructure:"log"`
}

type AuditConfig struct {
	JSONL               string `mapstructure:"jsonl"`
	PostgresDSN         string `mapstructure:"postgres-dsn"`
	SQLite              string `mapstructure:"sqlite"`
	FirestoreProject    string `mapstructure:"firestore-project"`
	FirestoreCollection string `mapstructure:"firestore-collection"`
}

type ProtectConfig struct {
	IDs      []string `mapstructure:"ids"`
	Keywords []string `mapstructure:"keywords"`
}

type NotifyConfig struct {
	Webhook string `mapstructure:"webhook"`
}

type OTelConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Insecure bool   `mapstructure:"insecure"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

var errMissingToken = errors.New("token is required")

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("chatsweep", pflag.ContinueOnError)

	fs.String("config", "", "YAML configuration file")
	fs.String("token", "", "Authorization token")
	fs.Bool("bot", false, "Send the token with the Bot scheme")
	fs.String("user", "", "Author id whose messages are deleted, current user when empty")
	fs.StringSlice("channel", nil, "Channel id or channel URL, repeatable")
	fs.Bool("all-channels", false, "Sweep every text channel of every guild")
	fs.StringSlice("usernames", nil, "Extra author usernames to match")
	fs.Int("months", 2, "Only delete messages older than this many months")
	fs.Duration("delay", chatsweep.DefaultDelay, "Wait before each delete request")
	fs.Int("page-size", chatsweep.DefaultPageSize, "Messages per page")
	fs.Bool("dry-run", false, "Log matching messages without deleting them")
	fs.String("api-url", discord.DefaultURL, "REST API base URL")
	fs.String("listen", "", "Control API address, disabled when empty")
	fs.Duration("interval", 0, "Repeat the sweep on this interval, once when zero")

	fs.String("audit.jsonl", "", "Append audit entries to this JSON lines file")
	fs.String("audit.postgres-dsn", "", "Write audit entries to Postgres")
	fs.String("audit.sqlite", "", "Write audit entries to this SQLite database")
	fs.String("audit.firestore-project", "", "Write audit entries to Firestore in this project")
	fs.String("audit.firestore-collection", "", "Firestore collection for audit entries")

	fs.StringSlice("protect.ids", nil, "Message ids that are never deleted")
	fs.StringSlice("protect.keywords", nil, "Messages containing one of these keywords are never deleted")

	fs.String("notify.webhook", "", "POST run outcomes to this URL")

	fs.String("otel.endpoint", "", "OTLP HTTP endpoint, tracing disabled when empty")
	fs.Bool("otel.insecure", false, "Use plain HTTP for the OTLP endpoint")

	fs.String("log.level", "info", "Log level: debug, info, warn, error")
	fs.Bool("log.json", false, "Log in JSON")

	return fs
}

// loadConfig reads .env, flags, CHATSWEEP_* env vars and an optional YAML
// file. Flags win over env vars, env vars over the file.
func loadConfig(args []string) (Config, error) {
	_ = godotenv.Load()

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("chatsweep")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Token == "" {
		return Config{}, errMissingToken
	}

	return cfg, nil
}

func (cfg Config) runConfig(user string, channels []string) chatsweep.RunConfig {
	return chatsweep.RunConfig{
		Channels:   channels,
		TargetUser: user,
		Usernames:  cfg.Usernames,
		Months:     cfg.Months,
		PageSize:   cfg.PageSize,
		Delay:      cfg.Delay,
		DryRun:     cfg.DryRun,
	}
}
