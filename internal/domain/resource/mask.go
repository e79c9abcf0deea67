package resource

import "strings"

// Placeholder is the literal that replaces sensitive values on the read
// path. Stored values are never masked; this is display-only redaction.
const Placeholder = "******"

func maskRecord(rec Record, fields []SensitiveField) Record {
	out := rec.Clone()
	for _, field := range fields {
		raw, ok := out[field.Name]
		if !ok {
			continue
		}
		masked := Placeholder
		if field.Mask != nil {
			if v := field.Mask(raw, rec); v != "" {
				masked = v
			}
		}
		out[field.Name] = masked
	}
	return out
}

// CardNumberMask keeps the last four digits of a card number, left-padded
// with '*' when fewer than four are present: "**** 4242". A value without
// any digits falls back to the placeholder.
func CardNumberMask(value any, _ Record) string {
	var digits strings.Builder
	for _, r := range stringify(value) {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	last := digits.String()
	if len(last) > 4 {
		last = last[len(last)-4:]
	}
	for len(last) < 4 {
		last = "*" + last
	}
	return "**** " + last
}
