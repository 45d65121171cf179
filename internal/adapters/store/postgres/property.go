package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
)

func propertyScope(f property.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Status != "" {
			db = db.Where("status = ?", f.Status.String())
		}
		if f.Type != "" {
			db = db.Where("type = ?", f.Type.String())
		}
		if f.CollaboratorID != nil {
			db = db.Where("collaborator_id = ?", *f.CollaboratorID)
		}
		if f.Query != "" {
			p := likePattern(f.Query)
			db = db.Where("(address ILIKE ? OR description ILIKE ?)", p, p)
		}
		return db
	}
}

func (s *Store) ListProperties(ctx context.Context, filter property.Filter) ([]property.Property, error) {
	var rows []propertyRow
	err := s.run(ctx, domain.KindProperty, "ListProperties", func(db *gorm.DB) error {
		return TranslateError(
			db.Scopes(propertyScope(filter)).Order("lower(address), id").Find(&rows).Error,
			domain.KindProperty, 0)
	})
	if err != nil {
		return nil, err
	}

	out := make([]property.Property, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Store) GetProperty(ctx context.Context, id int64) (*property.Property, error) {
	var row propertyRow
	err := s.run(ctx, domain.KindProperty, "GetProperty", func(db *gorm.DB) error {
		return TranslateError(db.First(&row, id).Error, domain.KindProperty, id)
	})
	if err != nil {
		return nil, err
	}
	p := row.toDomain()
	return &p, nil
}

func (s *Store) CreateProperty(ctx context.Context, p *property.Property) (*property.Property, error) {
	row := toPropertyRow(p)
	row.ID = 0
	row.CreatedAt, row.UpdatedAt = zeroTime, zeroTime

	err := s.run(ctx, domain.KindProperty, "CreateProperty", func(db *gorm.DB) error {
		return TranslateError(db.Create(&row).Error, domain.KindProperty, 0)
	})
	if err != nil {
		return nil, err
	}
	out := row.toDomain()
	return &out, nil
}

func (s *Store) UpdateProperty(ctx context.Context, id int64, p *property.Property) (*property.Property, error) {
	row := toPropertyRow(p)
	row.ID = id

	err := s.transact(ctx, domain.KindProperty, "UpdateProperty", func(tx *gorm.DB) error {
		var existing propertyRow
		if err := tx.Select("created_at").First(&existing, id).Error; err != nil {
			return TranslateError(err, domain.KindProperty, id)
		}
		row.CreatedAt = existing.CreatedAt
		row.UpdatedAt = zeroTime
		return TranslateError(tx.Save(&row).Error, domain.KindProperty, id)
	})
	if err != nil {
		return nil, err
	}
	out := row.toDomain()
	return &out, nil
}

// DeleteProperty also removes the listing from every client's interest set.
func (s *Store) DeleteProperty(ctx context.Context, id int64) error {
	return s.transact(ctx, domain.KindProperty, "DeleteProperty", func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&interestRow{}).Error; err != nil {
			return TranslateError(err, domain.KindProperty, id)
		}
		res := tx.Delete(&propertyRow{}, id)
		if res.Error != nil {
			return TranslateError(res.Error, domain.KindProperty, id)
		}
		if res.RowsAffected == 0 {
			return TranslateError(gorm.ErrRecordNotFound, domain.KindProperty, id)
		}
		return nil
	})
}
