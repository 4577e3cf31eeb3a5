package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minhle/workdesk/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidKind    = errors.New("invalid work item kind")
	ErrInvalidItem    = errors.New("invalid work item")
	ErrNegativeAmount = errors.New("payment amount cannot be negative")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateKind(kind model.Kind) error {
	switch kind {
	case model.KindLead, model.KindProject, model.KindTask:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
}

func validateWorkItem(item *model.WorkItem) error {
	if item == nil {
		return fmt.Errorf("%w: nil", ErrInvalidItem)
	}
	if err := validateKind(item.Kind); err != nil {
		return err
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	return validatePayments(item.Payments)
}

func validatePayments(payments []model.Payment) error {
	for i, p := range payments {
		if p.Amount < 0 {
			return fmt.Errorf("%w: payment at index %d", ErrNegativeAmount, i)
		}
	}
	return nil
}
