package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "matchday-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: true,
		UptraceDSN:     "  ",
		ServiceName:    "matchday-api",
	}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestPyroscopeTags(t *testing.T) {
	tags := pyroscopeTags(config.Config{
		AppEnv:         config.EnvStage,
		ServiceName:    "matchday-api",
		ServiceVersion: "1.2.0",
		StorageDriver:  config.StorageDriverPostgres,
	})
	if tags["env"] != "stage" || tags["service"] != "matchday-api" || tags["version"] != "1.2.0" || tags["storage"] != "postgres" {
		t.Fatalf("unexpected tags: %+v", tags)
	}
}

func TestUptraceDisabledReason(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "disabled", cfg: config.Config{UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"}, want: "UPTRACE_ENABLED=false"},
		{name: "missing dsn", cfg: config.Config{UptraceEnabled: true}, want: "UPTRACE_DSN empty"},
		{name: "enabled", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uptraceDisabledReason(tc.cfg); got != tc.want {
				t.Fatalf("uptraceDisabledReason() = %q, want %q", got, tc.want)
			}
		})
	}
}
