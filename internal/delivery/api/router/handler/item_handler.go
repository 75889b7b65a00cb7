package handler

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const thumbnailCacheControl = "public, max-age=86400"

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// ItemHandler serves listing creation, browsing and item binaries.
type ItemHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewItemHandler is the constructor for ItemHandler.
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{catalogUC: params.CatalogUC}
}

// CreateItem decodes the multipart listing form into the tagged union and
// validates it before the use case sees it. The owner is the caller.
func (h *ItemHandler) CreateItem(c echo.Context) error {
	decision, err := requireSubject(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := decodeCreateItem(c, decision.SubjectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if err := c.Validate(input); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.CreateItem(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toItemResponse(item, item.Book != nil && item.Book.FileKey != ""))
}

func decodeCreateItem(c echo.Context, ownerID int64) (*usecase.CreateItemInput, error) {
	input := &usecase.CreateItemInput{
		OwnerID:     ownerID,
		Category:    strings.TrimSpace(c.FormValue("typeOfItem")),
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: c.FormValue("description"),
		IsFeatured:  formBool(c.FormValue("isFeatured")),
	}

	if raw := strings.TrimSpace(c.FormValue("price")); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("price must be a number"))
		}
		input.Price = price
	}

	count, err := optionalInt("count", c.FormValue("count"))
	if err != nil {
		return nil, err
	}
	if count != nil {
		input.Count = *count
	}

	if input.Thumbnail, err = formFile(c, "thumbnail"); err != nil {
		return nil, err
	}

	switch entity.Category(input.Category) {
	case entity.CategoryBook:
		file, err := formFile(c, "fileData")
		if err != nil {
			return nil, err
		}
		input.Book = &usecase.BookInput{File: file}
	case entity.CategoryStationery:
		images, err := formFiles(c, "additionalImgs")
		if err != nil {
			return nil, err
		}
		input.Stationery = &usecase.StationeryInput{AdditionalImages: images}
	case entity.CategoryUniform:
		condition := strings.TrimSpace(c.FormValue("condition"))
		if condition == "" {
			condition = string(entity.ConditionNew)
		}
		input.Uniform = &usecase.UniformInput{
			Size:      strings.TrimSpace(c.FormValue("size")),
			Condition: condition,
		}
	}

	return input, nil
}

// ListItems returns every unsold item grouped by category.
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.catalogUC.ListAvailable(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// GetItem returns one item with its category specific fields.
func (h *ItemHandler) GetItem(c echo.Context) error {
	category, id, err := itemPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.catalogUC.GetItem(c.Request().Context(), category, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(detail.Item, detail.HasFile))
}

// GetBookFile downloads the file attached to a book. Only books carry files.
func (h *ItemHandler) GetBookFile(c echo.Context) error {
	if _, err := requireSubject(c); err != nil {
		return response.HandleAppError(c, err)
	}

	category, id, err := itemPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if category != entity.CategoryBook {
		return response.HandleAppError(c, errors.WithStack(domainerrors.ErrFileNotFound))
	}

	file, err := h.catalogUC.GetBookFile(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	name := file.Name
	if name == "" {
		name = "book-" + strconv.FormatInt(id, 10)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": name}))

	return response.Blob(c, file.ContentType, "", file.Data)
}

// GetImage streams an item thumbnail: /api/image/:id?type=<category>.
func (h *ItemHandler) GetImage(c echo.Context) error {
	id, err := positiveID("id", c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	category, err := categoryParam(c.QueryParam("type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := h.catalogUC.GetThumbnail(c.Request().Context(), category, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Blob(c, image.ContentType, thumbnailCacheControl, image.Data)
}

// GetQRCode renders a PNG QR code linking to the item page.
func (h *ItemHandler) GetQRCode(c echo.Context) error {
	category, id, err := itemPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.catalogUC.GetListingQR(c.Request().Context(), category, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Blob(c, "image/png", "", png)
}

func itemPath(c echo.Context) (entity.Category, int64, error) {
	category, err := categoryParam(c.Param("category"))
	if err != nil {
		return "", 0, err
	}
	id, err := positiveID("id", c.Param("id"))
	if err != nil {
		return "", 0, err
	}

	return category, id, nil
}
