package service

import (
	"errors"
	"strings"

	"github.com/yoshihide-okabe/deploy-back/internal/model"
	"github.com/yoshihide-okabe/deploy-back/internal/repository"
	"github.com/yoshihide-okabe/deploy-back/pkg/validator"

	"gorm.io/gorm"
)

// DefaultEmpCd is stored when the register is operated without a signed-in
// employee (guest mode).
const DefaultEmpCd = "9999999999"

// PurchaseItem is one cart line as submitted by the front end. PrdName and
// Price are display values only; persistence always re-resolves the code
// against the catalog so a tampered request cannot change what is charged.
type PurchaseItem struct {
	Code    string `json:"code" validate:"required,max=13"`
	PrdName string `json:"prd_name"`
	Price   int    `json:"price"`
}

type PurchaseRequest struct {
	EmpCd   string         `json:"emp_cd"`
	StoreCd string         `json:"store_cd" validate:"required,max=5"`
	PosNo   string         `json:"pos_no" validate:"required,max=3"`
	Items   []PurchaseItem `json:"items" validate:"required,min=1,dive"`
}

type PurchaseResult struct {
	TrdID       int
	TotalAmount int
}

type PurchaseService interface {
	SubmitPurchase(req *PurchaseRequest) (*PurchaseResult, error)
}

type purchaseService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
}

func NewPurchaseService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB) PurchaseService {
	return &purchaseService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		db:              db,
	}
}

// SubmitPurchase records one purchase: header, detail rows, and the final
// total are written inside a single database transaction, so a resolution
// miss or a persistence fault on any step leaves nothing behind.
func (s *purchaseService) SubmitPurchase(req *PurchaseRequest) (*PurchaseResult, error) {
	// 1. Validate request shape
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, &ValidationError{Field: first.FailedField, Tag: first.Tag}
	}

	// 2. Normalize the employee code
	empCd := strings.TrimSpace(req.EmpCd)
	if empCd == "" {
		empCd = DefaultEmpCd
	}

	result := &PurchaseResult{}

	// 3. One atomic unit of work for header + details + total
	err := s.db.Transaction(func(tx *gorm.DB) error {
		header := &model.Transaction{
			EmpCd:    empCd,
			StoreCd:  req.StoreCd,
			PosNo:    req.PosNo,
			TotalAmt: 0, // provisional until all details are staged
		}
		if err := s.transactionRepo.CreateHeader(tx, header); err != nil {
			return err
		}

		totalAmt := 0
		details := make([]model.TransactionDetail, 0, len(req.Items))
		for _, item := range req.Items {
			// Resolve inside the same tx; the catalog price is
			// authoritative, the request price is ignored.
			product, err := s.productRepo.FindByCodeTx(tx, item.Code)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &UnknownProductError{Code: item.Code}
			}
			if err != nil {
				return err
			}

			totalAmt += product.Price
			details = append(details, model.TransactionDetail{
				TrdID:    header.TrdID,
				PrdID:    product.PrdID,
				PrdCode:  product.Code,
				PrdName:  product.Name,
				PrdPrice: product.Price,
			})
		}

		// Batch insert in request order; dtl_id comes from the identity
		// column, never from an in-memory counter.
		if err := s.transactionRepo.CreateDetails(tx, details); err != nil {
			return err
		}

		if err := s.transactionRepo.UpdateTotal(tx, header.TrdID, totalAmt); err != nil {
			return err
		}

		result.TrdID = header.TrdID
		result.TotalAmount = totalAmt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
