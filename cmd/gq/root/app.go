package root

import (
	"context"

	"go.uber.org/zap"

	"goalquest/internal/coach"
	"goalquest/internal/config"
	"goalquest/internal/engine"
	"goalquest/internal/logging"
	"goalquest/internal/shop"
	"goalquest/internal/storage"
)

type app struct {
	cfg  *config.Config
	log  *zap.Logger
	svc  *engine.Service
	shop *shop.Service
}

// openApp wires config, logger, database, coach and services. The returned
// cleanup closes the database and flushes the logger.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	var capability coach.Assessor
	if cfg.GeminiAPIKey != "" {
		g, err := coach.NewGeminiAssessor(ctx, cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			log.Warn("gemini unavailable, using fallback assessor", zap.Error(err))
		} else {
			capability = g
		}
	}
	c := coach.New(capability, log)

	svc := engine.NewService(db, c, cfg.Location(), log)
	if err := svc.SeedAchievements(ctx); err != nil {
		_ = db.Close()
		_ = log.Sync()
		return nil, nil, err
	}
	// First launch counts as the first login.
	if _, err := svc.Unlock(ctx, "first_login"); err != nil {
		_ = db.Close()
		_ = log.Sync()
		return nil, nil, err
	}

	a := &app{
		cfg:  cfg,
		log:  log,
		svc:  svc,
		shop: shop.NewService(svc, log),
	}
	cleanup := func() {
		_ = db.Close()
		_ = log.Sync()
	}
	return a, cleanup, nil
}
