package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/publimais-api/infrastructure/database/postgres"
	"github.com/vfg2006/publimais-api/internal/domain"
)

const adPackagesTable = "ad_packages"

var adPackageColumns = []string{
	"id", "user_id", "title", "description", "price", "delivery_days", "includes", "is_active", "created_at", "updated_at",
}

type AdPackageRepository interface {
	ListByUser(userID int, onlyActive bool) ([]*domain.AdPackage, error)
	GetByID(userID int, packageID string) (*domain.AdPackage, error)
	Create(pkg *domain.AdPackage) (*domain.AdPackage, error)
	Update(pkg *domain.AdPackage) error
	Delete(userID int, packageID string) (bool, error)
}

type adPackageRepository struct {
	conn *postgres.Connection
}

func NewAdPackageRepository(conn *postgres.Connection) AdPackageRepository {
	return &adPackageRepository{
		conn: conn,
	}
}

func scanAdPackage(row rowScanner) (*domain.AdPackage, error) {
	var pkg domain.AdPackage
	var includes pq.StringArray

	if err := row.Scan(
		&pkg.ID,
		&pkg.UserID,
		&pkg.Title,
		&pkg.Description,
		&pkg.Price,
		&pkg.DeliveryDays,
		&includes,
		&pkg.IsActive,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	); err != nil {
		return nil, err
	}

	pkg.Includes = []string(includes)
	if pkg.Includes == nil {
		pkg.Includes = []string{}
	}

	return &pkg, nil
}

func (r *adPackageRepository) ListByUser(userID int, onlyActive bool) ([]*domain.AdPackage, error) {
	where := squirrel.Eq{"user_id": userID}
	if onlyActive {
		where["is_active"] = true
	}

	query, args, err := squirrel.
		Select(adPackageColumns...).
		From(adPackagesTable).
		Where(where).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	packages := make([]*domain.AdPackage, 0)
	for rows.Next() {
		pkg, err := scanAdPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pacote: %w", err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return packages, nil
}

func (r *adPackageRepository) GetByID(userID int, packageID string) (*domain.AdPackage, error) {
	query, args, err := squirrel.
		Select(adPackageColumns...).
		From(adPackagesTable).
		Where(squirrel.Eq{"user_id": userID, "id": packageID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	pkg, err := scanAdPackage(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pacote: %w", err)
	}

	return pkg, nil
}

func (r *adPackageRepository) Create(pkg *domain.AdPackage) (*domain.AdPackage, error) {
	query, args, err := squirrel.
		Insert(adPackagesTable).
		Columns("id", "user_id", "title", "description", "price", "delivery_days", "includes", "is_active").
		Values(pkg.ID, pkg.UserID, pkg.Title, pkg.Description, pkg.Price, pkg.DeliveryDays, pq.StringArray(pkg.Includes), pkg.IsActive).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&pkg.CreatedAt, &pkg.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar pacote: %w", err)
	}

	return pkg, nil
}

func (r *adPackageRepository) Update(pkg *domain.AdPackage) error {
	query, args, err := squirrel.
		Update(adPackagesTable).
		Set("title", pkg.Title).
		Set("description", pkg.Description).
		Set("price", pkg.Price).
		Set("delivery_days", pkg.DeliveryDays).
		Set("includes", pq.StringArray(pkg.Includes)).
		Set("is_active", pkg.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": pkg.ID, "user_id": pkg.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar pacote: %w", err)
	}

	return nil
}

// Delete informa se alguma linha foi removida
func (r *adPackageRepository) Delete(userID int, packageID string) (bool, error) {
	query, args, err := squirrel.
		Delete(adPackagesTable).
		Where(squirrel.Eq{"id": packageID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover pacote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
