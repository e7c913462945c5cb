package reportconfig

import (
	"fmt"
	"strings"
)

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that every label is set
func Validate(cfg *Profile) error {
	if strings.TrimSpace(cfg.Title) == "" {
		return ValidationError{"title", "required"}
	}
	if strings.TrimSpace(cfg.Columns.Position) == "" {
		return ValidationError{"columns.position", "required"}
	}
	if strings.TrimSpace(cfg.Columns.Name) == "" {
		return ValidationError{"columns.name", "required"}
	}
	if strings.TrimSpace(cfg.Columns.Mean) == "" {
		return ValidationError{"columns.mean", "required"}
	}
	return nil
}
