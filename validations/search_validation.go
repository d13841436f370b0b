package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	domainSales "github.com/mirtechlab/mt-analytics/domains/sales"
	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
)

func ValidateProductSearch(ctx context.Context, request domainSales.SearchFilter) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Query, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
