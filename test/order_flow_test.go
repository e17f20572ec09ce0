package test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/internal/dto"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) Test_OrderFlow() {
	sellerToken := s.sellerToken(6, "Order Seller", "order-seller@gmail.com")
	buyerToken := s.sellerToken(7, "Order Buyer", "order-buyer@gmail.com")

	coffee := s.createProduct(sellerToken, dto.ProductRequest{
		Name:     "Coffee Beans",
		Price:    10,
		Category: "Groceries",
		Stock:    100,
	})
	filter := s.createProduct(sellerToken, dto.ProductRequest{
		Name:     "Paper Filters",
		Price:    5,
		Category: "Groceries",
		Stock:    200,
	})

	s.Run("Create order snapshots prices", func() {
		resp := s.postJSON("/orders", dto.OrderRequest{
			OrderItems: []dto.OrderItem{
				{ProductID: coffee.ID, Quantity: 2},
				{ProductID: filter.ID, Quantity: 1},
			},
		}, buyerToken)
		defer resp.Body.Close()

		s.Require().Equal(http.StatusCreated, resp.StatusCode)

		respBody := struct {
			Data dto.OrderResponse `json:"data"`
		}{}
		err := json.NewDecoder(resp.Body).Decode(&respBody)
		s.Require().NoError(err)

		s.NotEmpty(respBody.Data.OrderNumber)
		s.Equal(domain.OrderStatusPending, respBody.Data.Status)
		s.Equal(float64(25), respBody.Data.Amount)
		s.Require().Len(respBody.Data.OrderItems, 2)
		s.Equal("Coffee Beans", respBody.Data.OrderItems[0].ProductName)
		s.Equal(float64(10), respBody.Data.OrderItems[0].Amount)
		s.Equal(int64(2), respBody.Data.OrderItems[0].Quantity)
	})

	s.Run("Unknown product fails the whole order", func() {
		resp := s.postJSON("/orders", dto.OrderRequest{
			OrderItems: []dto.OrderItem{
				{ProductID: coffee.ID, Quantity: 1},
				{ProductID: "does-not-exist", Quantity: 1},
			},
		}, buyerToken)
		defer resp.Body.Close()

		s.Equal(http.StatusNotFound, resp.StatusCode)
	})

	s.Run("Empty order is rejected", func() {
		resp := s.postJSON("/orders", dto.OrderRequest{}, buyerToken)
		defer resp.Body.Close()

		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("Orders are listed per user", func() {
		req, err := http.NewRequest(http.MethodGet,
			fmt.Sprintf("http://localhost:%s/api/v1/orders", s.app.Config.ServicePort), nil)
		require.NoError(s.T(), err)
		req.Header.Set("Authorization", "Bearer "+buyerToken)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		s.Equal(http.StatusOK, resp.StatusCode)

		respBody := struct {
			Data []dto.OrderResponse `json:"data"`
		}{}
		err = json.NewDecoder(resp.Body).Decode(&respBody)
		s.NoError(err)
		s.Require().Len(respBody.Data, 1)
		s.Equal("order-buyer@gmail.com", respBody.Data[0].UserID)
	})

	s.Run("Seller has no orders of their own", func() {
		req, err := http.NewRequest(http.MethodGet,
			fmt.Sprintf("http://localhost:%s/api/v1/orders", s.app.Config.ServicePort), nil)
		require.NoError(s.T(), err)
		req.Header.Set("Authorization", "Bearer "+sellerToken)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		s.Equal(http.StatusOK, resp.StatusCode)

		respBody := struct {
			Data []dto.OrderResponse `json:"data"`
		}{}
		err = json.NewDecoder(resp.Body).Decode(&respBody)
		s.NoError(err)
		s.Len(respBody.Data, 0)
	})
}
