package repository

import (
	"github.com/yoshihide-okabe/deploy-back/internal/model"

	"gorm.io/gorm"
)

// TransactionRepository writes receipt headers and detail rows. Every write
// method takes an explicit *gorm.DB so the service can run header, details,
// and total update inside one transaction block.
type TransactionRepository interface {
	CreateHeader(tx *gorm.DB, header *model.Transaction) error
	CreateDetails(tx *gorm.DB, details []model.TransactionDetail) error
	UpdateTotal(tx *gorm.DB, trdID int, totalAmt int) error
	FindByID(trdID int) (*model.Transaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) CreateHeader(tx *gorm.DB, header *model.Transaction) error {
	// Create fills in the generated trd_id on the struct.
	return tx.Create(header).Error
}

func (r *transactionRepo) CreateDetails(tx *gorm.DB, details []model.TransactionDetail) error {
	// Single batch insert; GORM keeps the slice order, which matches the
	// request item order.
	return tx.Create(&details).Error
}

func (r *transactionRepo) UpdateTotal(tx *gorm.DB, trdID int, totalAmt int) error {
	return tx.Model(&model.Transaction{}).
		Where("trd_id = ?", trdID).
		Update("total_amt", totalAmt).Error
}

func (r *transactionRepo) FindByID(trdID int) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("dtl_id ASC")
	}).First(&transaction, "trd_id = ?", trdID).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}
