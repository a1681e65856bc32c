package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/infrastructure/database/postgres"
	"github.com/vfg2006/publimais-api/infrastructure/repository"
	"github.com/vfg2006/publimais-api/internal/api"
	"github.com/vfg2006/publimais-api/internal/api/handler"
	"github.com/vfg2006/publimais-api/internal/config"
	"github.com/vfg2006/publimais-api/internal/scheduler"
	"github.com/vfg2006/publimais-api/internal/usecases/authenticating"
	"github.com/vfg2006/publimais-api/internal/usecases/benchmarking"
	"github.com/vfg2006/publimais-api/internal/usecases/importing"
	"github.com/vfg2006/publimais-api/internal/usecases/insighting"
	"github.com/vfg2006/publimais-api/internal/usecases/packaging"
	"github.com/vfg2006/publimais-api/internal/usecases/reporting"
	"github.com/vfg2006/publimais-api/internal/usecases/testprofiles"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := cfg.App.ParseLogLevel()
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	postRepo := repository.NewPostRepository(pgConn)
	followerRepo := repository.NewFollowerRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	packageRepo := repository.NewAdPackageRepository(pgConn)
	sharedReportRepo := repository.NewSharedReportRepository(pgConn)
	benchmarkRepo := repository.NewBenchmarkRepository(pgConn)
	testProfileRepo := repository.NewTestProfileRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	insightService := insighting.NewService(postRepo, followerRepo, campaignRepo)
	importService := importing.NewService(postRepo, followerRepo)
	packageService := packaging.NewService(packageRepo)
	reportService := reporting.NewService(userRepo, packageRepo, sharedReportRepo, insightService, cfg.Report)
	benchmarkService := benchmarking.NewService(benchmarkRepo)
	testProfileService := testprofiles.NewService(testProfileRepo)

	reportCleanupService := scheduler.NewReportCleanupService(reportService, cfg)
	testProfileSyncService := scheduler.NewTestProfileSyncService(testProfileService, cfg)

	if err := reportCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de relatórios")
	} else {
		logrus.Info("Agendador de limpeza de relatórios iniciado com sucesso")
	}

	if err := testProfileSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de perfis de teste")
	} else {
		logrus.Info("Agendador de sincronização de perfis de teste iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Insighter:     insightService,
		Importer:      importService,
		Packages:      packageService,
		Reporter:      reportService,
		Benchmarker:   benchmarkService,
		TestProfiles:  testProfileService,
		CronJobs: handler.CronJobServices{
			ReportCleanupService:   reportCleanupService,
			TestProfileSyncService: testProfileSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
