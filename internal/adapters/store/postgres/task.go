package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
)

func taskScope(f task.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Status != "" {
			db = db.Where("status = ?", f.Status.String())
		}
		if f.Priority != "" {
			db = db.Where("priority = ?", f.Priority.String())
		}
		if f.AssignedTo != nil {
			db = db.Where("assigned_to = ?", *f.AssignedTo)
		}
		if f.RelatedPropertyID != nil {
			db = db.Where("related_property_id = ?", *f.RelatedPropertyID)
		}
		if f.ClientID != nil {
			db = db.Where("client_id = ?", *f.ClientID)
		}
		if f.Query != "" {
			p := likePattern(f.Query)
			db = db.Where("(title ILIKE ? OR description ILIKE ?)", p, p)
		}
		return db
	}
}

func (s *Store) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	var rows []taskRow
	err := s.run(ctx, domain.KindTask, "ListTasks", func(db *gorm.DB) error {
		return TranslateError(
			db.Scopes(taskScope(filter)).Order("due_date, id").Find(&rows).Error,
			domain.KindTask, 0)
	})
	if err != nil {
		return nil, err
	}

	out := make([]task.Task, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (s *Store) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	var row taskRow
	err := s.run(ctx, domain.KindTask, "GetTask", func(db *gorm.DB) error {
		return TranslateError(db.First(&row, id).Error, domain.KindTask, id)
	})
	if err != nil {
		return nil, err
	}
	t := row.toDomain()
	return &t, nil
}

func (s *Store) CreateTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	row := toTaskRow(t)
	row.ID = 0
	row.CreatedAt, row.UpdatedAt = zeroTime, zeroTime

	err := s.run(ctx, domain.KindTask, "CreateTask", func(db *gorm.DB) error {
		return TranslateError(db.Create(&row).Error, domain.KindTask, 0)
	})
	if err != nil {
		return nil, err
	}
	out := row.toDomain()
	return &out, nil
}

func (s *Store) UpdateTask(ctx context.Context, id int64, t *task.Task) (*task.Task, error) {
	row := toTaskRow(t)
	row.ID = id

	err := s.transact(ctx, domain.KindTask, "UpdateTask", func(tx *gorm.DB) error {
		var existing taskRow
		if err := tx.Select("created_at").First(&existing, id).Error; err != nil {
			return TranslateError(err, domain.KindTask, id)
		}
		row.CreatedAt = existing.CreatedAt
		row.UpdatedAt = zeroTime
		return TranslateError(tx.Save(&row).Error, domain.KindTask, id)
	})
	if err != nil {
		return nil, err
	}
	out := row.toDomain()
	return &out, nil
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	return s.run(ctx, domain.KindTask, "DeleteTask", func(db *gorm.DB) error {
		res := db.Delete(&taskRow{}, id)
		if res.Error != nil {
			return TranslateError(res.Error, domain.KindTask, id)
		}
		if res.RowsAffected == 0 {
			return TranslateError(gorm.ErrRecordNotFound, domain.KindTask, id)
		}
		return nil
	})
}
