package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/assistravel/casetrack/modules/cases/importer"
	"github.com/assistravel/casetrack/modules/cases/infrastructure/persistence"
	"github.com/assistravel/casetrack/modules/cases/presentation/controllers"
	"github.com/assistravel/casetrack/modules/cases/services"
	"github.com/assistravel/casetrack/pkg/configuration"
	"github.com/assistravel/casetrack/pkg/eventbus"
	"github.com/assistravel/casetrack/pkg/metrics"
	"github.com/assistravel/casetrack/pkg/middleware"
	"github.com/assistravel/casetrack/pkg/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := persistence.ApplySchema(ctx, pool); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	publisher := eventbus.NewEventPublisher(logger)
	caseRepo := persistence.NewCaseRepository()
	correspondentRepo := persistence.NewCorrespondentRepository()

	caseService := services.NewCaseService(caseRepo, publisher)
	correspondentService := services.NewCorrespondentService(correspondentRepo, publisher)
	importService := services.NewImportService(
		caseRepo,
		correspondentRepo,
		importer.NewNormalizer(importer.DefaultConfig()),
		publisher,
	)

	srvControllers := []server.Controller{
		controllers.NewCasesAPIController(caseService),
		controllers.NewCorrespondentsAPIController(correspondentService),
		controllers.NewImportController(importService),
	}
	if conf.Prometheus.Enabled {
		srvControllers = append(srvControllers, metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	srv := &server.HTTPServer{
		Controllers: srvControllers,
		Middlewares: []mux.MiddlewareFunc{
			middleware.WithLogger(logger),
			middleware.WithPool(pool),
		},
		AllowedOrigins: []string{conf.Origin},
	}
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := srv.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
