package packaging

import (
	"strings"

	"github.com/vfg2006/publimais-api/infrastructure/repository"
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/apiErrors"
	"github.com/vfg2006/publimais-api/pkg/log"
	"github.com/vfg2006/publimais-api/pkg/utils"
)

type PackageService interface {
	ListPackages(userID int, onlyActive bool) ([]*domain.AdPackage, error)
	CreatePackage(userID int, request *domain.CreateAdPackageRequest) (*domain.AdPackage, error)
	UpdatePackage(userID int, request *domain.UpdateAdPackageRequest) (*domain.AdPackage, error)
	DeletePackage(userID int, packageID string) error
}

type Service struct {
	packageRepository repository.AdPackageRepository
}

func NewService(packageRepository repository.AdPackageRepository) PackageService {
	return &Service{
		packageRepository: packageRepository,
	}
}

func (s *Service) ListPackages(userID int, onlyActive bool) ([]*domain.AdPackage, error) {
	packages, err := s.packageRepository.ListByUser(userID, onlyActive)
	if err != nil {
		log.L.WithError(err).WithField("user_id", userID).Error("Erro ao listar pacotes")
		return nil, NewPackageError(ErrFetchPackages, apiErrors.ErrDatabaseOperation, "Falha ao listar pacotes")
	}

	if packages == nil {
		packages = []*domain.AdPackage{}
	}

	return packages, nil
}

func (s *Service) CreatePackage(userID int, request *domain.CreateAdPackageRequest) (*domain.AdPackage, error) {
	pkg := &domain.AdPackage{
		UserID:       userID,
		Title:        strings.TrimSpace(request.Title),
		Description:  strings.TrimSpace(request.Description),
		Price:        request.Price,
		DeliveryDays: request.DeliveryDays,
		Includes:     cleanIncludes(request.Includes),
		IsActive:     true,
	}

	if err := validate(pkg); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewPackageError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	pkg.ID = id

	created, err := s.packageRepository.Create(pkg)
	if err != nil {
		log.L.WithError(err).WithField("user_id", userID).Error("Erro ao criar pacote")
		return nil, NewPackageError(ErrSavePackage, apiErrors.ErrDatabaseOperation, "Falha ao criar pacote")
	}

	return created, nil
}

func (s *Service) UpdatePackage(userID int, request *domain.UpdateAdPackageRequest) (*domain.AdPackage, error) {
	if request.ID == "" {
		return nil, NewPackageError(ErrPackageIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	pkg, err := s.packageRepository.GetByID(userID, request.ID)
	if err != nil {
		return nil, NewPackageErrorWithID(ErrFetchPackages, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao buscar pacote")
	}
	if pkg == nil {
		return nil, NewPackageErrorWithID(ErrPackageNotFound, apiErrors.ErrResourceNotFound, request.ID, "")
	}

	if request.Title != nil {
		pkg.Title = strings.TrimSpace(*request.Title)
	}
	if request.Description != nil {
		pkg.Description = strings.TrimSpace(*request.Description)
	}
	if request.Price != nil {
		pkg.Price = *request.Price
	}
	if request.DeliveryDays != nil {
		pkg.DeliveryDays = *request.DeliveryDays
	}
	if request.Includes != nil {
		pkg.Includes = cleanIncludes(*request.Includes)
	}
	if request.IsActive != nil {
		pkg.IsActive = *request.IsActive
	}

	if err := validate(pkg); err != nil {
		return nil, err
	}

	if err := s.packageRepository.Update(pkg); err != nil {
		log.L.WithError(err).WithField("user_id", userID).Error("Erro ao atualizar pacote")
		return nil, NewPackageErrorWithID(ErrSavePackage, apiErrors.ErrDatabaseOperation, pkg.ID, "Falha ao atualizar pacote")
	}

	return pkg, nil
}

func (s *Service) DeletePackage(userID int, packageID string) error {
	if packageID == "" {
		return NewPackageError(ErrPackageIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	deleted, err := s.packageRepository.Delete(userID, packageID)
	if err != nil {
		return NewPackageErrorWithID(ErrSavePackage, apiErrors.ErrDatabaseOperation, packageID, "Falha ao remover pacote")
	}
	if !deleted {
		return NewPackageErrorWithID(ErrPackageNotFound, apiErrors.ErrResourceNotFound, packageID, "")
	}

	return nil
}

func validate(pkg *domain.AdPackage) error {
	switch {
	case pkg.Title == "":
		return NewPackageErrorWithID(ErrTitleRequired, apiErrors.ErrMissingRequiredData, pkg.ID, "")
	case pkg.Price < 0:
		return NewPackageErrorWithID(ErrInvalidPrice, apiErrors.ErrInvalidRequest, pkg.ID, "")
	case pkg.DeliveryDays < 1:
		return NewPackageErrorWithID(ErrInvalidDeliveryDays, apiErrors.ErrInvalidRequest, pkg.ID, "")
	}
	return nil
}

// cleanIncludes remove itens em branco e nunca devolve nil
func cleanIncludes(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
