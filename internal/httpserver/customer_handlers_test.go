package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmazurek/orders-api/internal/models"
	"github.com/kmazurek/orders-api/internal/transport"
)

func TestCreateCustomerRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{
		"name":    "Ann",
		"email":   "ann@x.com",
		"address": "1 Main St",
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/customers", payload)
	require.NoError(t, env.Customers.CreateCustomer(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Customer created successfully", body["Message"])
	created := body["customer"].(map[string]any)
	id := int(created["id"].(float64))
	require.Equal(t, 1, id)

	rec, c = env.doJSONRequest(http.MethodGet, "/customers/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Customers.GetCustomer(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Ann", got.Name)
	require.Equal(t, "ann@x.com", got.Email)
	require.Equal(t, "1 Main St", got.Address)
}

func TestCreateCustomerValidation(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/customers", map[string]any{"name": "Ann"})
	require.NoError(t, env.Customers.CreateCustomer(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errs transport.FieldErrors
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	require.Equal(t, []string{"Missing data for required field."}, errs["email"])
	require.NotContains(t, errs, "name")

	var count int64
	env.DB.Model(&models.Customer{}).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer("ann@x.com")

	payload := map[string]any{"name": "Other Ann", "email": "ann@x.com"}
	rec, c := env.doJSONRequest(http.MethodPost, "/customers", payload)
	require.NoError(t, env.Customers.CreateCustomer(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Customer with this email already exists", decodeBody(t, rec)["error"])

	var count int64
	env.DB.Model(&models.Customer{}).Where("email = ?", "ann@x.com").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestCustomerNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/customers/42", nil)
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, env.Customers.GetCustomer(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Customer not found", decodeBody(t, rec)["error"])

	rec, c = env.doJSONRequest(http.MethodPut, "/customers/42", map[string]any{"name": "Ann", "email": "ann@x.com"})
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, env.Customers.UpdateCustomer(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Customer not found", decodeBody(t, rec)["error"])

	// The missing row wins over a bad payload.
	rec, c = env.doJSONRequest(http.MethodPut, "/customers/42", map[string]any{"name": "x"})
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, env.Customers.UpdateCustomer(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Customer not found", decodeBody(t, rec)["error"])

	rec, c = env.doJSONRequest(http.MethodDelete, "/customers/42", nil)
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, env.Customers.DeleteCustomer(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Customer not found", decodeBody(t, rec)["error"])
}

func TestUpdateCustomer(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedCustomer("ann@x.com")

	payload := map[string]any{"name": "Ann B.", "email": "ann.b@x.com", "address": "2 Side St"}
	rec, c := env.doJSONRequest(http.MethodPut, "/customers/1", payload)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Customers.UpdateCustomer(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Customer updated successfully", body["Message"])

	var got models.Customer
	require.NoError(t, env.DB.First(&got, customer.ID).Error)
	require.Equal(t, "Ann B.", got.Name)
	require.Equal(t, "ann.b@x.com", got.Email)
	require.Equal(t, "2 Side St", got.Address)
}

func TestUpdateCustomerDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer("ann@x.com")
	other := models.Customer{Name: "Bob", Email: "bob@x.com"}
	require.NoError(t, env.DB.Create(&other).Error)

	payload := map[string]any{"name": "Bob", "email": "ann@x.com"}
	rec, c := env.doJSONRequest(http.MethodPut, "/customers/2", payload)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, env.Customers.UpdateCustomer(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Customer with this email already exists", decodeBody(t, rec)["error"])
}

func TestDeleteCustomer(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedCustomer("ann@x.com")

	rec, c := env.doJSONRequest(http.MethodDelete, "/customers/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Customers.DeleteCustomer(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Customer deleted successfully", decodeBody(t, rec)["Message"])

	var count int64
	env.DB.Model(&models.Customer{}).Where("id = ?", customer.ID).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestDeleteCustomerWithOrdersBlocked(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedCustomer("ann@x.com")
	env.seedOrder(customer.ID)

	rec, c := env.doJSONRequest(http.MethodDelete, "/customers/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Customers.DeleteCustomer(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Customer has existing orders", decodeBody(t, rec)["error"])

	var count int64
	env.DB.Model(&models.Customer{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestGetCustomerOrders(t *testing.T) {
	env := newTestEnv(t)
	env.seedCustomer("ann@x.com")
	bob := models.Customer{Name: "Bob", Email: "bob@x.com"}
	require.NoError(t, env.DB.Create(&bob).Error)

	env.seedOrder(bob.ID)
	env.seedOrder(bob.ID)
	env.seedOrder(bob.ID)

	// Ann has none.
	rec, c := env.doJSONRequest(http.MethodGet, "/customers/1/orders", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Customers.GetCustomerOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var views []transport.OrderView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Empty(t, views)

	rec, c = env.doJSONRequest(http.MethodGet, "/customers/2/orders", nil)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, env.Customers.GetCustomerOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 3)
	for _, v := range views {
		require.Equal(t, bob.ID, v.CustomerID)
		require.Equal(t, "2024-01-15", v.OrderDate)
	}

	rec, c = env.doJSONRequest(http.MethodGet, "/customers/9/orders", nil)
	c.SetParamNames("id")
	c.SetParamValues("9")
	require.NoError(t, env.Customers.GetCustomerOrders(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Customer not found", decodeBody(t, rec)["error"])
}
