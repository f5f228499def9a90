package repository

import (
	"github.com/yoshihide-okabe/deploy-back/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	FindByCode(code string) (*model.Product, error)
	FindByCodeTx(tx *gorm.DB, code string) (*model.Product, error)
	CreateBatch(products []model.Product) error
	Count() (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindByCode(code string) (*model.Product, error) {
	return r.FindByCodeTx(r.db, code)
}

// FindByCodeTx takes an explicit *gorm.DB so resolution can run inside the
// same transaction that writes the detail rows.
func (r *productRepo) FindByCodeTx(tx *gorm.DB, code string) (*model.Product, error) {
	var product model.Product
	err := tx.First(&product, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateBatch is used to seed the product master at boot.
func (r *productRepo) CreateBatch(products []model.Product) error {
	return r.db.Create(&products).Error
}

func (r *productRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}
