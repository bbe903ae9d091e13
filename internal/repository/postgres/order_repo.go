package postgres

import (
	"orders-api/internal/models"

	"github.com/jinzhu/gorm"
)

type OrderPostgresRepo struct {
	db *gorm.DB
}

func NewOrderPostgres(db *gorm.DB) *OrderPostgresRepo {
	return &OrderPostgresRepo{db: db}
}

func (r *OrderPostgresRepo) Create(o *models.Order) error {
	return r.db.
		Set("gorm:association_autocreate", false).
		Transaction(func(tx *gorm.DB) error {
			lines := o.OrderLines
			o.OrderLines = nil

			if err := tx.Create(o).Error; err != nil {
				return err
			}
			for i := range lines {
				lines[i].OrderID = o.ID
				if err := tx.Create(&lines[i]).Error; err != nil {
					return err
				}
			}
			o.OrderLines = lines
			return nil
		})
}

// Get is owner-scoped: a wrong userID behaves exactly like a missing id.
func (r *OrderPostgresRepo) Get(id, userID uint) (models.Order, error) {
	var o models.Order
	q := r.db.
		Preload("OrderLines", func(db *gorm.DB) *gorm.DB { return db.Order("order_lines.id ASC") }).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("tasks.id ASC") }).
		Where("id = ? AND user_id = ?", id, userID).
		First(&o)
	return o, q.Error
}

func (r *OrderPostgresRepo) GetAll(userID uint) ([]models.Order, error) {
	var out []models.Order
	q := r.db.
		Preload("OrderLines", func(db *gorm.DB) *gorm.DB { return db.Order("order_lines.id ASC") }).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("tasks.id ASC") }).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&out)
	return out, q.Error
}

// Update persists the order header. A non-nil lines slice means the
// caller asked for a full replacement: every existing line is dropped
// and the given ones inserted, all inside one transaction.
func (r *OrderPostgresRepo) Update(o *models.Order, lines *[]models.OrderLine) error {
	return r.db.
		Set("gorm:association_autoupdate", false).
		Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Order{}).
				Where("id = ?", o.ID).
				Updates(map[string]interface{}{
					"name":         o.Name,
					"order_number": o.OrderNumber,
					"order_date":   o.OrderDate,
					"status":       o.Status,
					"currency":     o.Currency,
				}).Error; err != nil {
				return err
			}

			if lines == nil {
				return nil
			}
			if err := tx.Where("order_id = ?", o.ID).Delete(models.OrderLine{}).Error; err != nil {
				return err
			}
			for i := range *lines {
				(*lines)[i].ID = 0
				(*lines)[i].OrderID = o.ID
				if err := tx.Create(&(*lines)[i]).Error; err != nil {
					return err
				}
			}
			o.OrderLines = *lines
			return nil
		})
}

func (r *OrderPostgresRepo) Delete(o *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", o.ID).Delete(models.OrderLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", o.ID).Delete(models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(o).Error
	})
}

func (r *OrderPostgresRepo) AddTasks(o *models.Order, tasks []models.Task) error {
	return r.db.
		Set("gorm:association_autocreate", false).
		Transaction(func(tx *gorm.DB) error {
			for i := range tasks {
				tasks[i].OrderID = o.ID
				if err := tx.Create(&tasks[i]).Error; err != nil {
					return err
				}
			}
			return nil
		})
}

func (r *OrderPostgresRepo) UpdateTask(t *models.Task) error {
	// Save writes every column, so a nil description or execution date
	// clears the value instead of being skipped.
	return r.db.Save(t).Error
}

func (r *OrderPostgresRepo) DeleteTask(t *models.Task) error {
	return r.db.Delete(t).Error
}
