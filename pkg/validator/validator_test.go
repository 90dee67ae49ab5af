package validator_test

import (
	"context"
	"errors"
	"testing"

	"paradereg/pkg/validator"
)

type form struct {
	Name string `validate:"nonblank"`
	Age  int    `validate:"gte=0"`
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	if err := validator.Validate(ctx, form{Name: "Ana", Age: 0}); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	err := validator.Validate(ctx, form{Name: "  ", Age: 3})
	var fe *validator.FieldError
	if !errors.As(err, &fe) || fe.Field != "Name" || fe.Msg != validator.ErrFieldRequired {
		t.Fatalf("blank name: %v", err)
	}

	err = validator.Validate(ctx, form{Name: "Ana", Age: -2})
	if !errors.As(err, &fe) || fe.Field != "Age" || fe.Msg != validator.ErrFieldBelowMinVal {
		t.Fatalf("negative age: %v", err)
	}
}
