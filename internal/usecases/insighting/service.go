package insighting

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vfg2006/publimais-api/infrastructure/repository"
	"github.com/vfg2006/publimais-api/internal/analytics"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/log"
)

var ErrCampaignNotFound = errors.New("campanha não encontrada")

type Service struct {
	postRepo     repository.PostRepository
	followerRepo repository.FollowerRepository
	campaignRepo repository.CampaignRepository
}

func NewService(
	postRepo repository.PostRepository,
	followerRepo repository.FollowerRepository,
	campaignRepo repository.CampaignRepository,
) Insighter {
	return &Service{
		postRepo:     postRepo,
		followerRepo: followerRepo,
		campaignRepo: campaignRepo,
	}
}

// GetDashboard busca posts, seguidores e campanhas em paralelo e aplica o analytics
func (s *Service) GetDashboard(userID int) (*domain.Dashboard, error) {
	var (
		wg        sync.WaitGroup
		posts     []domain.Post
		points    []domain.FollowerPoint
		campaigns []domain.Campaign
		postsErr  error
		pointsErr error
		campErr   error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		posts, postsErr = s.postRepo.ListByUser(userID)
	}()
	go func() {
		defer wg.Done()
		points, pointsErr = s.followerRepo.ListByUser(userID)
	}()
	go func() {
		defer wg.Done()
		campaigns, campErr = s.campaignRepo.ListByUser(userID)
	}()
	wg.Wait()

	if postsErr != nil {
		return nil, fmt.Errorf("erro ao buscar posts: %w", postsErr)
	}
	if pointsErr != nil {
		return nil, fmt.Errorf("erro ao buscar histórico de seguidores: %w", pointsErr)
	}
	if campErr != nil {
		return nil, fmt.Errorf("erro ao buscar campanhas: %w", campErr)
	}

	details := make([]domain.CampaignDetail, 0, len(campaigns))
	for _, c := range campaigns {
		details = append(details, analytics.CampaignDetail(c, posts))
	}

	log.L.WithFields(log.Fields{
		"user_id":   userID,
		"posts":     len(posts),
		"points":    len(points),
		"campaigns": len(campaigns),
	}).Debug("Dashboard montado")

	return &domain.Dashboard{
		Engagement: analytics.AggregateEngagement(posts),
		Growth:     analytics.GrowthPeaks(points),
		Campaigns:  details,
		Posts:      analytics.PostsWithER(posts),
	}, nil
}

func (s *Service) GetCampaignDetail(userID int, campaignID string) (*domain.CampaignDetail, error) {
	campaign, err := s.campaignRepo.GetByID(userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanha: %w", err)
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	posts, err := s.postRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar posts: %w", err)
	}

	detail := analytics.CampaignDetail(*campaign, posts)
	return &detail, nil
}
