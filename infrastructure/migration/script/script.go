package main

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publimais-api/infrastructure/database/postgres"
	"github.com/vfg2006/publimais-api/infrastructure/repository"
	"github.com/vfg2006/publimais-api/internal/config"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/middleware"
	"github.com/vfg2006/publimais-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@publimais.com"
	demoPassword = "Demo@1234"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		lastname VARCHAR(120) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		role_id INTEGER NOT NULL DEFAULT 3,
		avatar_url TEXT,
		bio TEXT,
		niche VARCHAR(120),
		location VARCHAR(120),
		website TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		external_id BIGINT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		platform VARCHAR(20) NOT NULL,
		type VARCHAR(20) NOT NULL DEFAULT 'organic',
		likes BIGINT NOT NULL DEFAULT 0,
		comments BIGINT NOT NULL DEFAULT 0,
		shares BIGINT NOT NULL DEFAULT 0,
		views BIGINT NOT NULL DEFAULT 0,
		tags TEXT[],
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (user_id, external_id)
	)`,
	`CREATE TABLE IF NOT EXISTS follower_history (
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		month VARCHAR(20) NOT NULL,
		followers BIGINT NOT NULL,
		date DATE,
		PRIMARY KEY (user_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id VARCHAR(32) PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		budget NUMERIC(14,2) NOT NULL DEFAULT 0,
		start_date DATE,
		end_date DATE,
		post_ids BIGINT[],
		clicks BIGINT NOT NULL DEFAULT 0,
		conversions BIGINT NOT NULL DEFAULT 0,
		revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
		impressions BIGINT NOT NULL DEFAULT 0,
		emv NUMERIC(14,2) NOT NULL DEFAULT 0,
		promo_code VARCHAR(60),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS ad_packages (
		id VARCHAR(32) PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(14,2) NOT NULL,
		delivery_days INTEGER NOT NULL,
		includes TEXT[],
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS shared_reports (
		id VARCHAR(32) PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		public_id VARCHAR(64) NOT NULL UNIQUE,
		report_data JSONB NOT NULL,
		views_count INTEGER NOT NULL DEFAULT 0,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS shared_reports_expires_at_idx ON shared_reports (expires_at)`,
	`CREATE TABLE IF NOT EXISTS similar_profiles (
		handle VARCHAR(120) PRIMARY KEY,
		er NUMERIC(6,2) NOT NULL,
		avg_views BIGINT NOT NULL,
		followers BIGINT NOT NULL,
		platform VARCHAR(20) NOT NULL,
		country VARCHAR(4) NOT NULL,
		niches TEXT[]
	)`,
	`CREATE TABLE IF NOT EXISTS test_profiles (
		id VARCHAR(32) PRIMARY KEY,
		admin_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		platform VARCHAR(20) NOT NULL,
		username VARCHAR(120) NOT NULL,
		display_name VARCHAR(255) NOT NULL DEFAULT '',
		profile_picture_url TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		followers_count BIGINT NOT NULL DEFAULT 0,
		following_count BIGINT NOT NULL DEFAULT 0,
		posts_count BIGINT NOT NULL DEFAULT 0,
		engagement_rate NUMERIC(6,2) NOT NULL DEFAULT 0,
		last_sync_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS test_metrics (
		id VARCHAR(32) PRIMARY KEY,
		test_profile_id VARCHAR(32) NOT NULL REFERENCES test_profiles(id) ON DELETE CASCADE,
		followers_count BIGINT NOT NULL DEFAULT 0,
		following_count BIGINT NOT NULL DEFAULT 0,
		posts_count BIGINT NOT NULL DEFAULT 0,
		engagement_rate NUMERIC(6,2) NOT NULL DEFAULT 0,
		likes_avg BIGINT NOT NULL DEFAULT 0,
		comments_avg BIGINT NOT NULL DEFAULT 0,
		views_avg BIGINT NOT NULL DEFAULT 0,
		reach_avg BIGINT NOT NULL DEFAULT 0,
		impressions_avg BIGINT NOT NULL DEFAULT 0,
		profile_views BIGINT NOT NULL DEFAULT 0,
		website_clicks BIGINT NOT NULL DEFAULT 0,
		growth_7d NUMERIC(8,2) NOT NULL DEFAULT 0,
		top_post JSONB,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS admin_logs (
		id VARCHAR(32) PRIMARY KEY,
		admin_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		action VARCHAR(60) NOT NULL,
		platform VARCHAR(20) NOT NULL DEFAULT '',
		endpoint TEXT NOT NULL DEFAULT '',
		request_data JSONB,
		response_data JSONB,
		error_message TEXT,
		status_code INTEGER NOT NULL DEFAULT 0,
		duration_ms BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

func createSchema(ctx context.Context, conn *postgres.Connection) error {
	logrus.Infof("Criando %d estruturas do banco...", len(schema))

	return conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, stmt := range schema {
			if _, err := q.Exec(stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedDemoUser(userRepo repository.UserRepository) (*domain.User, error) {
	existing, err := userRepo.GetUserByEmail(demoEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logrus.Infof("Usuário demo já existe (id %d)", existing.ID)
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	niche := "Fitness"
	location := "São Paulo, BR"

	return userRepo.CreateUser(&domain.User{
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        demoEmail,
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       middleware.RoleInfluencer,
		Niche:        &niche,
		Location:     &location,
	})
}

func demoPosts() []domain.Post {
	return []domain.Post{
		{ID: 1, Title: "Treino de pernas em 15 minutos", Platform: domain.PlatformInstagram, Type: domain.PostTypeOrganic, Likes: 1820, Comments: 140, Shares: 95, Views: 21400, Tags: []string{"treino", "pernas"}},
		{ID: 2, Title: "Rotina matinal", Platform: domain.PlatformTikTok, Type: domain.PostTypeOrganic, Likes: 5400, Comments: 310, Shares: 620, Views: 88000},
		{ID: 3, Title: "Review Tênis X", Platform: domain.PlatformYouTube, Type: domain.PostTypeCampaign, Likes: 2300, Comments: 410, Shares: 180, Views: 46000, Tags: []string{"review"}},
		{ID: 4, Title: "Look Black Friday", Platform: domain.PlatformInstagram, Type: domain.PostTypeCampaign, Likes: 2650, Comments: 198, Shares: 120, Views: 30500},
		{ID: 5, Title: "Receita proteica", Platform: domain.PlatformInstagram, Type: domain.PostTypeOrganic, Likes: 1320, Comments: 88, Shares: 60, Views: 17800},
		{ID: 6, Title: "Desafio 30 dias", Platform: domain.PlatformTikTok, Type: domain.PostTypeCampaign, Likes: 7100, Comments: 520, Shares: 940, Views: 120000},
	}
}

func demoFollowers() []domain.FollowerPoint {
	return []domain.FollowerPoint{
		{Month: "Jan", Followers: 12000, Date: "2025-01-31"},
		{Month: "Fev", Followers: 13800, Date: "2025-02-28"},
		{Month: "Mar", Followers: 15100, Date: "2025-03-31"},
		{Month: "Abr", Followers: 17600, Date: "2025-04-30"},
		{Month: "Mai", Followers: 20250, Date: "2025-05-31"},
		{Month: "Jun", Followers: 22100, Date: "2025-06-30"},
	}
}

// IDs fixos mantêm o script idempotente
func demoCampaigns() []domain.Campaign {
	promo := "ANA10"
	return []domain.Campaign{
		{ID: "demoBlackFri24", Name: "Black Friday 2024", Budget: 5000, Start: "2024-11-20", End: "2024-11-30", Posts: []int64{4, 6}, Clicks: 2500, Conversions: 250, Revenue: 25000, Impressions: 500000, EMV: 18000, PromoCode: &promo},
		{ID: "demoTenisX2025", Name: "Lançamento Tênis X", Budget: 3000, Start: "2025-03-01", End: "2025-03-15", Posts: []int64{3}, Clicks: 1200, Conversions: 60, Revenue: 7200, Impressions: 180000, EMV: 9500},
	}
}

func demoPackages(userID int) []*domain.AdPackage {
	return []*domain.AdPackage{
		{UserID: userID, Title: "Pacote Stories", Description: "Divulgação rápida em stories", Price: 800, DeliveryDays: 3, Includes: []string{"3 stories"}, IsActive: true},
		{UserID: userID, Title: "Pacote Completo", Description: "Stories e reels com link na bio", Price: 1500, DeliveryDays: 7, Includes: []string{"3 stories", "1 reels"}, IsActive: true},
	}
}

func seedSimilarProfiles(ctx context.Context, conn *postgres.Connection) error {
	profiles := []domain.SimilarProfile{
		{Handle: "@fitlife.bia", ER: 8.4, AvgViews: 24000, Followers: 85000, Platform: domain.PlatformInstagram, Country: "BR", Niches: []string{"fitness"}},
		{Handle: "@corre.joao", ER: 6.1, AvgViews: 51000, Followers: 210000, Platform: domain.PlatformInstagram, Country: "BR", Niches: []string{"fitness", "corrida"}},
		{Handle: "@marinafit", ER: 11.2, AvgViews: 140000, Followers: 640000, Platform: domain.PlatformTikTok, Country: "BR", Niches: []string{"fitness", "lifestyle"}},
		{Handle: "@chef.leve", ER: 5.3, AvgViews: 38000, Followers: 150000, Platform: domain.PlatformYouTube, Country: "PT", Niches: []string{"culinária"}},
		{Handle: "@pedro.moves", ER: 4.7, AvgViews: 320000, Followers: 1800000, Platform: domain.PlatformYouTube, Country: "US", Niches: []string{"fitness"}},
	}

	builder := squirrel.
		Insert("similar_profiles").
		Columns("handle", "er", "avg_views", "followers", "platform", "country", "niches").
		Suffix("ON CONFLICT (handle) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, p := range profiles {
		builder = builder.Values(p.Handle, p.ER, p.AvgViews, p.Followers, p.Platform, p.Country, pq.StringArray(p.Niches))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, query, args...)
	return err
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	if err := createSchema(ctx, conn); err != nil {
		logrus.Fatalf("ERRO ao criar tabelas: %v", err)
	}

	user, err := seedDemoUser(repository.NewUserRepository(conn))
	if err != nil {
		logrus.Fatalf("ERRO ao criar usuário demo: %v", err)
	}

	if err := repository.NewPostRepository(conn).SaveOrUpdate(user.ID, demoPosts()); err != nil {
		logrus.Fatalf("ERRO ao inserir posts: %v", err)
	}

	if err := repository.NewFollowerRepository(conn).ReplaceHistory(ctx, user.ID, demoFollowers()); err != nil {
		logrus.Fatalf("ERRO ao inserir histórico de seguidores: %v", err)
	}

	campaigns := demoCampaigns()
	campaignRepo := repository.NewCampaignRepository(conn)
	for i := range campaigns {
		if err := campaignRepo.SaveOrUpdate(user.ID, &campaigns[i]); err != nil {
			logrus.Fatalf("ERRO ao inserir campanha %s: %v", campaigns[i].Name, err)
		}
	}

	packageRepo := repository.NewAdPackageRepository(conn)
	existing, err := packageRepo.ListByUser(user.ID, false)
	if err != nil {
		logrus.Fatalf("ERRO ao listar pacotes: %v", err)
	}
	if len(existing) == 0 {
		for _, pkg := range demoPackages(user.ID) {
			id, err := utils.GenerateID()
			if err != nil {
				logrus.Fatalf("ERRO ao gerar ID do pacote: %v", err)
			}
			pkg.ID = id
			if _, err := packageRepo.Create(pkg); err != nil {
				logrus.Fatalf("ERRO ao inserir pacote %s: %v", pkg.Title, err)
			}
		}
	}

	if err := seedSimilarProfiles(ctx, conn); err != nil {
		logrus.Fatalf("ERRO ao inserir perfis de referência: %v", err)
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
