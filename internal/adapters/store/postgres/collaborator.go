package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
)

func collaboratorScope(f collaborator.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Role != "" {
			db = db.Where("role = ?", f.Role.String())
		}
		if f.Query != "" {
			p := likePattern(f.Query)
			db = db.Where("(name ILIKE ? OR email ILIKE ?)", p, p)
		}
		return db
	}
}

func (s *Store) ListCollaborators(ctx context.Context, filter collaborator.Filter) ([]collaborator.Collaborator, error) {
	var rows []collaboratorRow
	err := s.run(ctx, domain.KindCollaborator, "ListCollaborators", func(db *gorm.DB) error {
		return TranslateError(
			db.Scopes(collaboratorScope(filter)).Order("lower(name), id").Find(&rows).Error,
			domain.KindCollaborator, 0)
	})
	if err != nil {
		return nil, err
	}

	out := make([]collaborator.Collaborator, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Store) GetCollaborator(ctx context.Context, id int64) (*collaborator.Collaborator, error) {
	var row collaboratorRow
	err := s.run(ctx, domain.KindCollaborator, "GetCollaborator", func(db *gorm.DB) error {
		return TranslateError(db.First(&row, id).Error, domain.KindCollaborator, id)
	})
	if err != nil {
		return nil, err
	}
	c := row.toDomain()
	return &c, nil
}

func (s *Store) CreateCollaborator(ctx context.Context, c *collaborator.Collaborator) (*collaborator.Collaborator, error) {
	row := toCollaboratorRow(c)
	row.ID = 0
	row.CreatedAt, row.UpdatedAt = zeroTime, zeroTime

	err := s.run(ctx, domain.KindCollaborator, "CreateCollaborator", func(db *gorm.DB) error {
		return TranslateError(db.Create(&row).Error, domain.KindCollaborator, 0)
	})
	if err != nil {
		return nil, err
	}
	out := row.toDomain()
	return &out, nil
}

func (s *Store) UpdateCollaborator(ctx context.Context, id int64, c *collaborator.Collaborator) (*collaborator.Collaborator, error) {
	row := toCollaboratorRow(c)
	row.ID = id

	err := s.transact(ctx, domain.KindCollaborator, "UpdateCollaborator", func(tx *gorm.DB) error {
		var existing collaboratorRow
		if err := tx.Select("created_at").First(&existing, id).Error; err != nil {
			return TranslateError(err, domain.KindCollaborator, id)
		}
		row.CreatedAt = existing.CreatedAt
		row.UpdatedAt = zeroTime
		return TranslateError(tx.Save(&row).Error, domain.KindCollaborator, id)
	})
	if err != nil {
		return nil, err
	}
	out := row.toDomain()
	return &out, nil
}

func (s *Store) DeleteCollaborator(ctx context.Context, id int64) error {
	return s.run(ctx, domain.KindCollaborator, "DeleteCollaborator", func(db *gorm.DB) error {
		res := db.Delete(&collaboratorRow{}, id)
		if res.Error != nil {
			return TranslateError(res.Error, domain.KindCollaborator, id)
		}
		if res.RowsAffected == 0 {
			return TranslateError(gorm.ErrRecordNotFound, domain.KindCollaborator, id)
		}
		return nil
	})
}
