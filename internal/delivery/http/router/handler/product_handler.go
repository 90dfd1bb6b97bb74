package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// maxProductImageSize caps uploads read into memory.
const maxProductImageSize = 10 << 20 // 10 MiB

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the product creation request. Merchant only; the payload is
// multipart form data carrying the fields and the image file.
func (h *ProductHandler) Create(c echo.Context) error {
	merchantID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid price")
	}

	categoryID, err := uuid.Parse(c.FormValue("category_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
	}

	image, err := readImageFile(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product image is required")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		MerchantID:  merchantID,
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		CategoryID:  categoryID,
		Image:       image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Get handles the public single-product lookup.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// List handles the public product listing with optional filters.
func (h *ProductHandler) List(c echo.Context) error {
	input := &usecase.ListProductsInput{
		Name:    c.QueryParam("name"),
		OrderBy: c.QueryParam("order_by"),
	}

	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
		}
		input.CategoryID = &categoryID
	}

	if raw := c.QueryParam("price"); raw != "" {
		if _, err := decimal.NewFromString(raw); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid price")
		}
		input.Price = &raw
	}

	products, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Update handles the product update request. Merchant only; the image part is
// optional and the existing image is kept when it is absent.
func (h *ProductHandler) Update(c echo.Context) error {
	merchantID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid price")
	}

	categoryID, err := uuid.Parse(c.FormValue("category_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
	}

	input := &usecase.UpdateProductInput{
		MerchantID:  merchantID,
		ProductID:   productID,
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		CategoryID:  categoryID,
	}

	if image, err := readImageFile(c); err == nil {
		input.Image = image
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete handles the product deletion request. Merchant only.
func (h *ProductHandler) Delete(c echo.Context) error {
	merchantID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), merchantID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": productID.String()}, "Product deleted successfully")
}

// readImageFile reads the multipart "image" part into memory.
func readImageFile(c echo.Context) (*usecase.ProductImageInput, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, errors.Wrap(err, "missing image part")
	}
	if fileHeader.Size > maxProductImageSize {
		return nil, errors.New("image too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image part")
	}
	defer func(file multipart.File) {
		_ = file.Close()
	}(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image part")
	}

	return &usecase.ProductImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
