package handlers

import (
	"errors"
	"fmt"
	"log"

	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
// The category listing lives under its own /category segment so it
// cannot shadow product-detail lookups on the same wildcard.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/create", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/category/:categorySlug", h.HandleListByCategory)
	productRoutes.Get("/:productSlug", h.HandleGetProduct)
	productRoutes.Put("/update/:productSlug", h.HandleUpdateProduct)
	productRoutes.Delete("/delete/:productSlug", h.HandleSoftDeleteProduct)
}

// HandleCreateProduct creates a new product from the request body.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input services.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	if _, err := h.service.CreateProduct(input); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status_code": fiber.StatusCreated,
		"transaction": "Successful",
	})
}

// HandleListProducts returns every visible product. An empty catalog
// answers 200 with an empty array, never 404.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListActiveProducts()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleListByCategory returns the visible products of a category and
// its immediate children.
func (h *ProductHandler) HandleListByCategory(c *fiber.Ctx) error {
	categorySlug := c.Params("categorySlug")
	products, err := h.service.ListByCategory(categorySlug)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		log.Printf("Error listing products for category %s: %v", categorySlug, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProduct returns a single product by slug, whatever its
// visibility state.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productSlug := c.Params("productSlug")
	product, err := h.service.GetProductBySlug(productSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "There are no product",
			})
		}
		log.Printf("Error getting product %s: %v", productSlug, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleUpdateProduct overwrites the mutable fields of a product. The
// slug in the path keeps identifying the product afterwards, even when
// the name changed.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productSlug := c.Params("productSlug")

	var input services.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	if err := h.service.UpdateProduct(productSlug, input); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "There is no product found",
			})
		}
		log.Printf("Error updating product %s: %v", productSlug, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status_code": fiber.StatusOK,
		"transaction": "Product update is successful",
	})
}

// HandleSoftDeleteProduct marks a product inactive. Repeating the call
// succeeds again: the row is still there, the flag is just set anew.
func (h *ProductHandler) HandleSoftDeleteProduct(c *fiber.Ctx) error {
	productSlug := c.Params("productSlug")

	if err := h.service.SoftDeleteProduct(productSlug); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "There is no product found",
			})
		}
		log.Printf("Error deleting product %s: %v", productSlug, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status_code": fiber.StatusOK,
		"transaction": "Product delete is successful",
	})
}

// validationErrorMap flattens validator errors into a field → reason
// map for the response body.
func validationErrorMap(err error) map[string]string {
	messages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}
