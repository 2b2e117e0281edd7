package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kmazurek/orders-api/internal/models"
	"github.com/kmazurek/orders-api/internal/repo"
	"github.com/kmazurek/orders-api/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	Customers *CustomerHTTP
	Products  *ProductHTTP
	Orders    *OrderHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}
	customerSvc := &service.CustomerService{Repo: gormRepo}
	productSvc := &service.ProductService{Repo: gormRepo}
	orderSvc := &service.OrderService{Repo: gormRepo}

	return &testEnv{
		T:         t,
		E:         echo.New(),
		DB:        db,
		Customers: &CustomerHTTP{Svc: customerSvc, Orders: orderSvc},
		Products:  &ProductHTTP{Svc: productSvc},
		Orders:    &OrderHTTP{Svc: orderSvc},
	}
}

func (env *testEnv) doJSONRequest(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedCustomer(email string) models.Customer {
	customer := models.Customer{Name: "Ann", Email: email, Address: "1 Main St"}
	require.NoError(env.T, env.DB.Create(&customer).Error)
	return customer
}

func (env *testEnv) seedProduct(name string, price float64) models.Product {
	product := models.Product{ProductName: name, Price: price}
	require.NoError(env.T, env.DB.Create(&product).Error)
	return product
}

func (env *testEnv) seedOrder(customerID uint) models.Order {
	order := models.Order{
		OrderDate:  time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		CustomerID: customerID,
	}
	require.NoError(env.T, env.DB.Create(&order).Error)
	return order
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
