package core

// validate.go checks a loosely typed submission against a record kind's field
// specs all at once: a submission with three bad fields reports three errors,
// keyed by the exact submitted field names. Amount-like fields coerce from
// string input; every other type mismatch is rejected outright.

import "time"

// Validate checks fields against specs and returns the typed values on
// success or the per-field error map on failure. Exactly one of the two
// return values is non-nil.
//
// Typed values by spec type: FieldText and FieldEnum yield string, FieldDate
// a YYYY-MM-DD string, FieldNumeric float64, FieldInt int.
func Validate(fields Fields, specs []FieldSpec) (Fields, FieldErrors) {
	out := make(Fields, len(specs))
	errs := make(FieldErrors)

	for _, spec := range specs {
		v, present := fields[spec.Name]
		if !present || v == nil {
			errs[spec.Name] = append(errs[spec.Name], spec.Message)
			continue
		}

		switch spec.Type {
		case FieldText:
			s, ok := v.(string)
			if !ok {
				errs[spec.Name] = append(errs[spec.Name], spec.Message)
				continue
			}
			out[spec.Name] = s

		case FieldEnum:
			s, ok := v.(string)
			if !ok || !containsValue(spec.EnumValues, s) {
				errs[spec.Name] = append(errs[spec.Name], spec.Message)
				continue
			}
			out[spec.Name] = s

		case FieldDate:
			s, ok := v.(string)
			if !ok {
				errs[spec.Name] = append(errs[spec.Name], spec.Message)
				continue
			}
			if _, err := time.Parse(dateLayout, s); err != nil {
				errs[spec.Name] = append(errs[spec.Name], spec.Message)
				continue
			}
			out[spec.Name] = s

		case FieldNumeric:
			f, ok := ParseNumber(v)
			if !ok {
				errs[spec.Name] = append(errs[spec.Name], spec.Message)
				continue
			}
			if spec.GreaterThan != nil && f <= *spec.GreaterThan {
				errs[spec.Name] = append(errs[spec.Name], spec.Message)
				continue
			}
			out[spec.Name] = f

		case FieldInt:
			i, ok := ParseInt(v)
			if !ok {
				errs[spec.Name] = append(errs[spec.Name], spec.Message)
				continue
			}
			out[spec.Name] = i
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func containsValue(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// Typed accessors for validated field maps. Validate guarantees the stored
// type, so the zero value on a miss only matters for untyped callers.

func (f Fields) str(name string) string {
	s, _ := f[name].(string)
	return s
}

func (f Fields) num(name string) float64 {
	n, _ := f[name].(float64)
	return n
}

func (f Fields) intval(name string) int {
	i, _ := f[name].(int)
	return i
}
