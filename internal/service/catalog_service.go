package service

import (
	"errors"

	"github.com/yoshihide-okabe/deploy-back/internal/model"
	"github.com/yoshihide-okabe/deploy-back/internal/repository"

	"gorm.io/gorm"
)

// CatalogService resolves product codes against the read-only product master.
type CatalogService interface {
	GetProductByCode(code string) (*model.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(pRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: pRepo}
}

func (s *catalogService) GetProductByCode(code string) (*model.Product, error) {
	product, err := s.productRepo.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &UnknownProductError{Code: code}
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}
