package main

import (
	"context"
	"log/slog"

	"faithcompanion/config"
	"faithcompanion/internal/domain/repository"
	"faithcompanion/internal/domain/service"
	"faithcompanion/internal/infra/auth"
	"faithcompanion/internal/infra/bible"
	logs "faithcompanion/internal/infra/log"
	"faithcompanion/internal/infra/persistence/memory"
	"faithcompanion/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			startService,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewUserRepository,
			memory.NewProfileRepository,
			memory.NewPlanRepository,
			newVerseRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPBKDF2Hasher,
			auth.NewTokenCodec,
			newReferenceParser,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewBibleService,
			impl.NewLearnService,
		),
	)
}

// newVerseRepository creates the scripture text store preloaded with the
// default canon and translation metadata.
func newVerseRepository() repository.VerseRepository {
	return memory.NewVerseRepository(bible.DefaultBooks(), bible.DefaultTranslations())
}

// newReferenceParser creates the reference parser with the built-in
// book vocabulary.
func newReferenceParser() service.ReferenceParser {
	return bible.NewReferenceParser(bible.DefaultBookTable())
}

type startServiceParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	PlanRepo repository.PlanRepository
}

// startService seeds the built-in content and logs readiness.
func startService(params startServiceParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := impl.SeedSamplePlans(ctx, params.PlanRepo); err != nil {
				return err
			}

			params.Logger.Info("Service ready",
				slog.String("service", params.Config.Env.ServiceName),
				slog.String("env", params.Config.Env.Env))

			return nil
		},
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Service stopped")

			return nil
		},
	})
}
