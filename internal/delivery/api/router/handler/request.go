package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// requireSubject returns the gate decision of an authenticated request.
func requireSubject(c echo.Context) (*entity.AuthDecision, error) {
	decision := deliverycontext.GetAuthDecision(c)
	if !decision.Authenticated {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return decision, nil
}

func isFormRequest(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)

	return strings.HasPrefix(ct, echo.MIMEMultipartForm) || strings.HasPrefix(ct, echo.MIMEApplicationForm)
}

// formFile reads an optional upload; a missing field yields nil.
func formFile(c echo.Context, field string) (*usecase.UploadedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(field + " could not be read"))
	}

	return readUpload(header)
}

// formFiles reads every upload sent under a repeated field.
func formFiles(c echo.Context, field string) ([]*usecase.UploadedFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("multipart form could not be parsed"))
	}

	headers := form.File[field]
	files := make([]*usecase.UploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := readUpload(header)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func readUpload(header *multipart.FileHeader) (*usecase.UploadedFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open upload %s", header.Filename)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrapf(err, "read upload %s", header.Filename)
	}
	if len(data) == 0 {
		return nil, nil
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &usecase.UploadedFile{Name: header.Filename, ContentType: contentType, Data: data}, nil
}

// formBool accepts the checkbox value "on" as well as "true".
func formBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}

// optionalInt parses an optional numeric field; blank means unset.
func optionalInt(field, value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(field + " must be a whole number"))
	}

	return &n, nil
}

// positiveID parses a path or query id that must be a positive integer.
func positiveID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(field + " must be a positive integer"))
	}

	return id, nil
}

func categoryParam(value string) (entity.Category, error) {
	category, ok := entity.ParseCategory(value)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrInvalidCategory)
	}

	return category, nil
}
