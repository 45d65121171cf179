package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
)

func clientScope(f client.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Type != "" {
			db = db.Where("type = ?", f.Type.String())
		}
		switch f.Side {
		case client.TypeBuyer, client.TypeSeller:
			db = db.Where("type IN ?", []string{f.Side.String(), client.TypeBoth.String()})
		}
		if f.InterestedIn != nil {
			db = db.Where("id IN (?)",
				db.Session(&gorm.Session{NewDB: true}).Model(&interestRow{}).
					Select("client_id").Where("property_id = ?", *f.InterestedIn))
		}
		if f.Query != "" {
			p := likePattern(f.Query)
			db = db.Where("(name ILIKE ? OR email ILIKE ?)", p, p)
		}
		return db
	}
}

// loadInterests fetches the interest sets of the given clients in one query.
func loadInterests(db *gorm.DB, ids []int64) (map[int64][]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []interestRow
	if err := db.Where("client_id IN ?", ids).Order("property_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return groupInterests(rows), nil
}

// replaceInterests rewrites the interest set of one client.
func replaceInterests(tx *gorm.DB, clientID int64, propertyIDs []int64) error {
	if err := tx.Where("client_id = ?", clientID).Delete(&interestRow{}).Error; err != nil {
		return err
	}
	if len(propertyIDs) == 0 {
		return nil
	}
	rows := toInterestRows(clientID, propertyIDs)
	return tx.Create(&rows).Error
}

func (s *Store) ListClients(ctx context.Context, filter client.Filter) ([]client.Client, error) {
	var (
		rows      []clientRow
		interests map[int64][]int64
	)
	err := s.run(ctx, domain.KindClient, "ListClients", func(db *gorm.DB) error {
		if err := db.Scopes(clientScope(filter)).Order("lower(name), id").Find(&rows).Error; err != nil {
			return TranslateError(err, domain.KindClient, 0)
		}
		ids := make([]int64, len(rows))
		for i := range rows {
			ids[i] = rows[i].ID
		}
		var err error
		interests, err = loadInterests(db, ids)
		return TranslateError(err, domain.KindClient, 0)
	})
	if err != nil {
		return nil, err
	}

	out := make([]client.Client, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain(interests[rows[i].ID])
	}
	return out, nil
}

func (s *Store) GetClient(ctx context.Context, id int64) (*client.Client, error) {
	var (
		row       clientRow
		interests map[int64][]int64
	)
	err := s.run(ctx, domain.KindClient, "GetClient", func(db *gorm.DB) error {
		if err := db.First(&row, id).Error; err != nil {
			return TranslateError(err, domain.KindClient, id)
		}
		var err error
		interests, err = loadInterests(db, []int64{id})
		return TranslateError(err, domain.KindClient, id)
	})
	if err != nil {
		return nil, err
	}
	c := row.toDomain(interests[id])
	return &c, nil
}

// CreateClient inserts the client and its interest rows in one transaction.
func (s *Store) CreateClient(ctx context.Context, c *client.Client) (*client.Client, error) {
	row := toClientRow(c)
	row.ID = 0
	row.CreatedAt, row.UpdatedAt = zeroTime, zeroTime

	err := s.transact(ctx, domain.KindClient, "CreateClient", func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return TranslateError(err, domain.KindClient, 0)
		}
		return TranslateError(replaceInterests(tx, row.ID, c.InterestedPropertyIDs), domain.KindClient, row.ID)
	})
	if err != nil {
		return nil, err
	}
	out := row.toDomain(c.InterestedPropertyIDs)
	return &out, nil
}

func (s *Store) UpdateClient(ctx context.Context, id int64, c *client.Client) (*client.Client, error) {
	row := toClientRow(c)
	row.ID = id

	err := s.transact(ctx, domain.KindClient, "UpdateClient", func(tx *gorm.DB) error {
		var existing clientRow
		if err := tx.Select("created_at").First(&existing, id).Error; err != nil {
			return TranslateError(err, domain.KindClient, id)
		}
		row.CreatedAt = existing.CreatedAt
		row.UpdatedAt = zeroTime
		if err := tx.Save(&row).Error; err != nil {
			return TranslateError(err, domain.KindClient, id)
		}
		return TranslateError(replaceInterests(tx, id, c.InterestedPropertyIDs), domain.KindClient, id)
	})
	if err != nil {
		return nil, err
	}
	out := row.toDomain(c.InterestedPropertyIDs)
	return &out, nil
}

func (s *Store) DeleteClient(ctx context.Context, id int64) error {
	return s.transact(ctx, domain.KindClient, "DeleteClient", func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&interestRow{}).Error; err != nil {
			return TranslateError(err, domain.KindClient, id)
		}
		res := tx.Delete(&clientRow{}, id)
		if res.Error != nil {
			return TranslateError(res.Error, domain.KindClient, id)
		}
		if res.RowsAffected == 0 {
			return TranslateError(gorm.ErrRecordNotFound, domain.KindClient, id)
		}
		return nil
	})
}
