package application

import (
	"context"

	"github.com/ordersaga/choreography/product-validation-service/domain"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
)

var _ saga.Participant = (*ValidateProducts)(nil)

var validationMessages = saga.Messages{
	Success:               "Products are validated successfully!",
	FailurePrefix:         "Fail to validate products: ",
	Duplicate:             "There's another transactionId for this validation.",
	Rollback:              "Rollback executed on product validation!",
	RollbackFailurePrefix: "Fail to rollback product validation: ",
}

// ValidateProducts is the product validation step of the saga
type ValidateProducts struct {
	productRepository    domain.ProductRepository
	validationRepository domain.ValidationRepository
}

// NewValidateProducts creates a new ValidateProducts participant
func NewValidateProducts(
	productRepository domain.ProductRepository,
	validationRepository domain.ValidationRepository,
) *ValidateProducts {
	return &ValidateProducts{
		productRepository:    productRepository,
		validationRepository: validationRepository,
	}
}

func (uc *ValidateProducts) Source() string {
	return events.ProductValidationSource
}

func (uc *ValidateProducts) Messages() saga.Messages {
	return validationMessages
}

// Apply checks every product against the catalog and records a successful validation
func (uc *ValidateProducts) Apply(ctx context.Context, event *events.Event) error {
	for _, item := range event.Payload.Products {
		if item.Product.Code == "" {
			return saga.DomainRuleViolation("Product must be informed!")
		}

		exists, err := uc.productRepository.ExistsByCode(ctx, item.Product.Code)
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}
		if !exists {
			return saga.DomainRuleViolation("Product does not exists in database!")
		}
	}

	validation := domain.NewValidation(event.OrderID, event.TransactionID, true)
	if err := uc.validationRepository.Save(ctx, validation); err != nil {
		return errors.Wrap(err, "failed to save validation")
	}
	return nil
}

// Compensate flips the stored validation to failed, recording a failed one when none exists
func (uc *ValidateProducts) Compensate(ctx context.Context, event *events.Event) error {
	validation, err := uc.validationRepository.FindByOrderIDAndTransactionID(ctx, event.OrderID, event.TransactionID)
	switch {
	case errors.Is(err, domain.ErrValidationNotFound):
		validation = domain.NewValidation(event.OrderID, event.TransactionID, false)
	case err != nil:
		return errors.Wrap(err, "failed to find validation")
	default:
		validation.Fail()
	}

	if err := uc.validationRepository.Save(ctx, validation); err != nil {
		return errors.Wrap(err, "failed to save validation")
	}
	return nil
}
