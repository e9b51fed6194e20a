package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	modkit "nadbot/internal/modkit"
	"nadbot/internal/modkit/module"
	"nadbot/internal/modkit/repokit"
	"nadbot/internal/platform/config"
	"nadbot/internal/platform/logger"
	"nadbot/internal/platform/store"

	apptmod "nadbot/internal/services/appointments/module"
	remmod "nadbot/internal/services/reminder/module"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(context.Background(), st)

	fOnce := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	deps := modkit.Deps{Cfg: root, PG: st.PG, Log: *l}

	appointments := apptmod.New(deps)
	sched := module.MustPortsOf[apptmod.Ports](appointments).Schedule

	reminder := remmod.New(deps, sched, nil)
	worker := module.MustPortsOf[remmod.Ports](reminder).Worker

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *fOnce {
		sent, err := worker.Sweep(ctx)
		if err != nil {
			l.Panic().Err(err).Msg("reminder sweep failed")
		}
		l.Info().Int("sent", sent).Msg("reminder sweep complete")
		return
	}

	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		l.Panic().Err(err).Msg("reminder worker stopped")
	}
}
