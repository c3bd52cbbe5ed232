package takeoff

import (
	apperrors "estimating-portal-backend/internal/errors"
)

// ValidateConfig structurally checks a decoded configuration document before
// it is persisted or generated from. It operates on the raw decoded shape so
// that type mismatches (a string where an array belongs) are reported as
// validation errors instead of decode failures. Checks run fail-fast: the
// first violation is returned and nothing later is inspected.
func ValidateConfig(raw map[string]interface{}) *apperrors.ValidationError {
	if raw == nil {
		return &apperrors.ValidationError{Field: "config", Message: "config is required"}
	}

	if cols, present := raw["columns"]; present && cols != nil {
		list, ok := cols.([]interface{})
		if !ok {
			return &apperrors.ValidationError{Field: "columns", Message: "columns must be an array"}
		}
		for _, entry := range list {
			col, ok := entry.(map[string]interface{})
			if !ok {
				return &apperrors.ValidationError{Field: "columns", Message: "each column must be an object"}
			}
			if !hasNonEmptyString(col, "id") || !hasNonEmptyString(col, "name") {
				return &apperrors.ValidationError{Field: "columns", Message: "each column must have id and name"}
			}
			if mappings, ok := col["mappings"]; ok && mappings != nil {
				if _, ok := mappings.([]interface{}); !ok {
					return &apperrors.ValidationError{Field: "columns", Message: "column mappings must be an array"}
				}
			}
		}
	}

	if items, present := raw["selectedItems"]; present && items != nil {
		list, ok := items.([]interface{})
		if !ok {
			return &apperrors.ValidationError{Field: "selectedItems", Message: "selectedItems must be an array"}
		}
		for _, entry := range list {
			item, ok := entry.(map[string]interface{})
			if !ok {
				return &apperrors.ValidationError{Field: "selectedItems", Message: "each selectedItem must be an object"}
			}
			if !hasNonEmptyString(item, "scope_code") {
				return &apperrors.ValidationError{Field: "selectedItems", Message: "each selectedItem must have scope_code"}
			}
			if variants, ok := item["variants"]; ok && variants != nil {
				if _, ok := variants.([]interface{}); !ok {
					return &apperrors.ValidationError{Field: "selectedItems", Message: "item variants must be an array"}
				}
			}
		}
	}

	if overrides, present := raw["rateOverrides"]; present && overrides != nil {
		dict, ok := overrides.(map[string]interface{})
		if !ok {
			return &apperrors.ValidationError{Field: "rateOverrides", Message: "rateOverrides must be an object"}
		}
		for key, value := range dict {
			if _, ok := value.(float64); !ok {
				return &apperrors.ValidationError{Field: "rateOverrides", Message: "rate override for " + key + " must be a number"}
			}
		}
	}

	return nil
}

func hasNonEmptyString(obj map[string]interface{}, key string) bool {
	value, ok := obj[key].(string)
	return ok && value != ""
}
