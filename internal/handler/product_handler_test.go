package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yoshihide-okabe/deploy-back/internal/handler"
	"github.com/yoshihide-okabe/deploy-back/internal/model"
	"github.com/yoshihide-okabe/deploy-back/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetProductByCode(code string) (*model.Product, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func newProductApp(svc service.CatalogService) *fiber.App {
	app := fiber.New()
	app.Get("/product/:code", handler.NewProductHandler(svc).GetProduct)
	return app
}

func TestGetProduct_Found(t *testing.T) {
	mockSvc := new(MockCatalogService)
	mockSvc.On("GetProductByCode", "4901085673034").Return(&model.Product{
		PrdID: 1,
		Code:  "4901085673034",
		Name:  "おーいお茶",
		Price: 150,
	}, nil)

	app := newProductApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/product/4901085673034", nil), 10*time.Second)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "4901085673034", body["CODE"])
	assert.Equal(t, "おーいお茶", body["NAME"])
	assert.Equal(t, float64(150), body["PRICE"])

	mockSvc.AssertExpectations(t)
}

func TestGetProduct_NotFound(t *testing.T) {
	mockSvc := new(MockCatalogService)
	mockSvc.On("GetProductByCode", "9999999999999").
		Return(nil, &service.UnknownProductError{Code: "9999999999999"})

	app := newProductApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/product/9999999999999", nil), 10*time.Second)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "商品が見つかりません", body["detail"])
}
