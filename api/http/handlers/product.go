package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yohanpasi/storefront/api/http/presenter"
	"github.com/yohanpasi/storefront/pkg/catalog"
)

type ProductHandler struct {
	uc catalog.UseCase
}

func NewProductHandler(uc catalog.UseCase) *ProductHandler { return &ProductHandler{uc: uc} }

type productRequest struct {
	Image       string  `json:"image"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	SalePrice   float64 `json:"salePrice"`
	TotalStock  int     `json:"totalStock"`
}

func (r productRequest) toProduct() catalog.Product {
	return catalog.Product{
		Image:       r.Image,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Brand:       r.Brand,
		Price:       r.Price,
		SalePrice:   r.SalePrice,
		TotalStock:  r.TotalStock,
	}
}

// Add creates a product.
// @Summary Add product
// @Tags    products
// @Accept  json
// @Produce json
// @Param   input body productRequest true "product payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /admin/product/add [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Add(c.Context(), req.toProduct())
	if err != nil {
		var vErr catalog.ErrValidation
		if errors.As(err, &vErr) {
			return presenter.Error(c, http.StatusBadRequest, vErr.Error())
		}
		log.Printf("add product: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Error occurred during product addition")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"data":    p,
	})
}

// FetchAll lists products (newest first).
// @Summary List products
// @Tags    products
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /admin/product/get [get]
func (h *ProductHandler) FetchAll(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 100)
	products, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		log.Printf("list products: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Error occurred during product fetching")
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"data":    products,
	})
}

// Edit updates a product; absent fields keep their stored values.
// @Summary Edit product
// @Tags    products
// @Accept  json
// @Produce json
// @Param   id path string true "product id (UUID)"
// @Param   input body productRequest true "fields to change"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/product/edit/{id} [put]
func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid product id")
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Edit(c.Context(), id, req.toProduct())
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Product not found")
		}
		log.Printf("edit product: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Error occurred during product updating")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"data":    p,
	})
}

// Delete removes a product.
// @Summary Delete product
// @Tags    products
// @Produce json
// @Param   id path string true "product id (UUID)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/product/delete/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid product id")
	}
	if err := h.uc.Remove(c.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Product not found")
		}
		log.Printf("delete product: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Error occurred during product deleting")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}
