package test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/andikahilmy/marketplace-service/internal/dto"
	pkgdto "github.com/andikahilmy/marketplace-service/pkg/dto"
	"github.com/andikahilmy/marketplace-service/pkg/utils"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) sellerToken(userID int64, name string, email string) string {
	token, err := utils.CreateJWTToken(userID, name, email, s.app.Config.JWTConfig.JWTSecret)
	require.NoError(s.T(), err)

	return token
}

func (s *IntegrationTestSuite) createProduct(token string, req dto.ProductRequest) dto.ProductResponse {
	resp := s.postJSON("/products", req, token)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	respBody := struct {
		Data dto.ProductResponse `json:"data"`
	}{}
	err := json.NewDecoder(resp.Body).Decode(&respBody)
	s.Require().NoError(err)

	return respBody.Data
}

func (s *IntegrationTestSuite) Test_ProductLifecycle() {
	ownerToken := s.sellerToken(1, "Owner Seller", "owner-seller@gmail.com")
	otherToken := s.sellerToken(2, "Other Seller", "other-seller@gmail.com")

	created := s.createProduct(ownerToken, dto.ProductRequest{
		Name:        "Mechanical Keyboard",
		Description: "Hot swappable switches",
		Price:       79.9,
		Category:    "Electronics",
		Stock:       12,
	})

	s.NotEmpty(created.ID)
	s.Equal("owner-seller@gmail.com", created.SellerID)
	s.Equal("Owner Seller", created.SellerName)
	s.Equal(float64(0), created.Rating)

	s.Run("Unauthenticated create is rejected", func() {
		resp := s.postJSON("/products", dto.ProductRequest{
			Name:     "No token",
			Price:    1,
			Category: "Electronics",
		}, "")
		defer resp.Body.Close()

		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})

	s.Run("Get product by ID", func() {
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/api/v1/products/%s", s.app.Config.ServicePort, created.ID))
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		s.Equal(http.StatusOK, resp.StatusCode)

		respBody := struct {
			Data dto.ProductResponse `json:"data"`
		}{}
		err = json.NewDecoder(resp.Body).Decode(&respBody)
		s.NoError(err)
		s.Equal("Mechanical Keyboard", respBody.Data.Name)
	})

	s.Run("Unknown product is not found", func() {
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/api/v1/products/does-not-exist", s.app.Config.ServicePort))
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		s.Equal(http.StatusNotFound, resp.StatusCode)
	})

	s.Run("Update by another seller is forbidden", func() {
		req, err := http.NewRequest(http.MethodPut,
			fmt.Sprintf("http://localhost:%s/api/v1/products/%s", s.app.Config.ServicePort, created.ID),
			jsonBody(s, dto.ProductRequest{
				Name:     "Hijacked",
				Price:    1,
				Category: "Electronics",
			}),
		)
		require.NoError(s.T(), err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+otherToken)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		s.Equal(http.StatusForbidden, resp.StatusCode)
	})

	s.Run("Update by the owner succeeds", func() {
		req, err := http.NewRequest(http.MethodPut,
			fmt.Sprintf("http://localhost:%s/api/v1/products/%s", s.app.Config.ServicePort, created.ID),
			jsonBody(s, dto.ProductRequest{
				Name:        "Mechanical Keyboard v2",
				Description: "Hot swappable switches",
				Price:       89.9,
				Category:    "Electronics",
				Stock:       10,
			}),
		)
		require.NoError(s.T(), err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+ownerToken)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		s.Equal(http.StatusOK, resp.StatusCode)

		respBody := struct {
			Data dto.ProductResponse `json:"data"`
		}{}
		err = json.NewDecoder(resp.Body).Decode(&respBody)
		s.NoError(err)
		s.Equal("Mechanical Keyboard v2", respBody.Data.Name)
		s.Equal("owner-seller@gmail.com", respBody.Data.SellerID)
	})

	s.Run("Delete by another seller is forbidden", func() {
		req, err := http.NewRequest(http.MethodDelete,
			fmt.Sprintf("http://localhost:%s/api/v1/products/%s", s.app.Config.ServicePort, created.ID), nil)
		require.NoError(s.T(), err)
		req.Header.Set("Authorization", "Bearer "+otherToken)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		s.Equal(http.StatusForbidden, resp.StatusCode)
	})

	s.Run("Delete by the owner succeeds", func() {
		req, err := http.NewRequest(http.MethodDelete,
			fmt.Sprintf("http://localhost:%s/api/v1/products/%s", s.app.Config.ServicePort, created.ID), nil)
		require.NoError(s.T(), err)
		req.Header.Set("Authorization", "Bearer "+ownerToken)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		s.Equal(http.StatusOK, resp.StatusCode)

		getResp, err := http.Get(fmt.Sprintf("http://localhost:%s/api/v1/products/%s", s.app.Config.ServicePort, created.ID))
		require.NoError(s.T(), err)
		defer getResp.Body.Close()
		s.Equal(http.StatusNotFound, getResp.StatusCode)
	})
}

func (s *IntegrationTestSuite) Test_ProductCatalogFiltering() {
	token := s.sellerToken(3, "Catalog Seller", "catalog-seller@gmail.com")

	s.createProduct(token, dto.ProductRequest{Name: "Espresso Machine", Price: 250, Category: "Kitchen", Stock: 3})
	s.createProduct(token, dto.ProductRequest{Name: "Manual Grinder", Price: 40, Category: "Kitchen", Stock: 8})
	s.createProduct(token, dto.ProductRequest{Name: "Grinder Brush", Price: 5, Category: "Accessories", Stock: 50})

	type catalogResponse struct {
		Data struct {
			Metadata pkgdto.PaginationMetadata `json:"_metadata"`
			Records  []dto.ProductResponse     `json:"records"`
		} `json:"data"`
	}

	getCatalog := func(query string) catalogResponse {
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/api/v1/products%s", s.app.Config.ServicePort, query))
		require.NoError(s.T(), err)
		defer resp.Body.Close()
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		respBody := catalogResponse{}
		err = json.NewDecoder(resp.Body).Decode(&respBody)
		s.Require().NoError(err)

		return respBody
	}

	s.Run("Search is case insensitive", func() {
		respBody := getCatalog("?q=grinder")

		s.Equal(uint64(2), respBody.Data.Metadata.TotalCount)
		for _, record := range respBody.Data.Records {
			s.Contains(record.Name, "Grinder")
		}
	})

	s.Run("Category filter combines with search", func() {
		respBody := getCatalog("?q=grinder&category=Kitchen")

		s.Equal(uint64(1), respBody.Data.Metadata.TotalCount)
		s.Equal("Manual Grinder", respBody.Data.Records[0].Name)
	})

	s.Run("Sort by price ascending", func() {
		respBody := getCatalog("?q=grinder&sort_by=price-asc")

		s.Require().Len(respBody.Data.Records, 2)
		s.Equal("Grinder Brush", respBody.Data.Records[0].Name)
		s.Equal("Manual Grinder", respBody.Data.Records[1].Name)
	})

	s.Run("Pagination metadata reports next page", func() {
		respBody := getCatalog("?q=grinder&limit=1&page=1")

		s.Require().Len(respBody.Data.Records, 1)
		s.Equal(2, respBody.Data.Metadata.TotalPages)
		s.True(respBody.Data.Metadata.HasNextPage)
	})

	s.Run("Out of range page returns empty records", func() {
		respBody := getCatalog("?q=grinder&limit=10&page=5")

		s.Len(respBody.Data.Records, 0)
		s.False(respBody.Data.Metadata.HasNextPage)
	})

	s.Run("Products by seller", func() {
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/api/v1/products/seller/%s", s.app.Config.ServicePort, "catalog-seller@gmail.com"))
		require.NoError(s.T(), err)
		defer resp.Body.Close()

		s.Equal(http.StatusOK, resp.StatusCode)

		respBody := struct {
			Data []dto.ProductResponse `json:"data"`
		}{}
		err = json.NewDecoder(resp.Body).Decode(&respBody)
		s.NoError(err)
		s.Len(respBody.Data, 3)
	})
}
