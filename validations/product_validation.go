package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	domainProduct "github.com/mirtechlab/mt-analytics/domains/product"
	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
)

func ValidateCreateProduct(ctx context.Context, request domainProduct.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required),
		validation.Field(&request.Category, validation.Required),
		validation.Field(&request.Price, validation.Min(0.0)),
		validation.Field(&request.Stock, validation.Min(0)),
		validation.Field(&request.Rating, validation.Min(0.0), validation.Max(5.0)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateUpdateProduct(ctx context.Context, request domainProduct.UpdateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.NilOrNotEmpty),
		validation.Field(&request.Category, validation.NilOrNotEmpty),
		validation.Field(&request.Price, validation.Min(0.0)),
		validation.Field(&request.Stock, validation.Min(0)),
		validation.Field(&request.Rating, validation.Min(0.0), validation.Max(5.0)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
