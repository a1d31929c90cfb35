package core

import "fmt"

// ValidateProduct validates a Product according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Category must be a member of the closed category set
//
// NOT validated:
//   - Price (opaque display string; "0 DA" is the safe default for bad input)
//   - Image (optional)
//   - SearchText (derived; recomputed from the other fields)
func ValidateProduct(product *Product) error {
	if product == nil {
		return fmt.Errorf("%w: product is nil", ErrInvalidProduct)
	}

	if product.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyProductName)
	}

	if err := ValidateCategory(product.Category); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}

	return nil
}

// ValidateCategory checks membership in the closed category set.
func ValidateCategory(category Category) error {
	for _, c := range Categories() {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
}

// ValidateTrainingExample validates a TrainingExample according to domain rules.
//
// Validation rules:
//   - ProductId must be set
//   - Query must not be empty
//   - Label must be 0 or 1
func ValidateTrainingExample(example *TrainingExample) error {
	if example == nil {
		return fmt.Errorf("%w: example is nil", ErrInvalidExample)
	}

	if example.ProductId == 0 {
		return fmt.Errorf("%w: product id is zero", ErrInvalidExample)
	}

	if example.Query == "" {
		return fmt.Errorf("%w: %w", ErrInvalidExample, ErrEmptyQuery)
	}

	if example.Label != 0 && example.Label != 1 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidExample, ErrInvalidLabel, example.Label)
	}

	return nil
}
