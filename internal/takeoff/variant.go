package takeoff

import "strings"

// keyDelimiter separates the parts of a composite rate-override key. Variant
// attribute values never contain it, so the key parses unambiguously.
const keyDelimiter = "|"

// variantParts returns the present attribute values in canonical order:
// r-value, then size, then material type. Absent attributes are omitted
// entirely rather than left as empty slots.
func (v Variant) parts() []string {
	parts := make([]string, 0, 3)
	if v.RValue != "" {
		parts = append(parts, v.RValue)
	}
	if v.Size != "" {
		parts = append(parts, v.Size)
	}
	if v.MaterialType != "" {
		parts = append(parts, v.MaterialType)
	}
	return parts
}

// IsZero reports whether the variant carries no attributes at all.
func (v Variant) IsZero() bool {
	return v.RValue == "" && v.Size == "" && v.MaterialType == ""
}

// CompositeKey builds the rate-override lookup key for an item/variant pair.
// The key is a pure function of its inputs: the scope code followed by the
// present variant attributes in canonical order, pipe-delimited. A variant
// with no attributes yields the bare scope code.
func CompositeKey(scopeCode string, v Variant) string {
	parts := append([]string{scopeCode}, v.parts()...)
	return strings.Join(parts, keyDelimiter)
}

// DisplayLabel builds the human-readable row label for an item/variant pair:
// the catalog display name followed by the present variant attributes in the
// same canonical order, space-separated.
func DisplayLabel(scopeName string, v Variant) string {
	parts := append([]string{scopeName}, v.parts()...)
	return strings.Join(parts, " ")
}

// ResolveRate returns the override rate for the item/variant pair when the
// composite key is present in overrides, and the catalog default otherwise.
// An explicit override of 0 is honored.
func ResolveRate(item CatalogItem, v Variant, overrides map[string]float64) float64 {
	if overrides != nil {
		if rate, ok := overrides[CompositeKey(item.ScopeCode, v)]; ok {
			return rate
		}
	}
	return item.DefaultRate
}
