// Package forms holds the pieces every admin form handler shares: flattening
// validator errors into per-field message lists, and parsing the bounded
// indexed groups the content forms submit ("partners.0.name", "events.1.title").
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens binding errors into a field → messages map. Field names
// are the lower-camel form names the admin UI posted.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}

	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		out[field] = append(out[field], message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Feltet er påkrævet."
	case "email":
		return "Ugyldig email-adresse."
	case "url":
		return "Ugyldig URL."
	case "min":
		return fmt.Sprintf("Skal være mindst %s tegn.", fe.Param())
	case "max":
		return fmt.Sprintf("Må højst være %s tegn.", fe.Param())
	default:
		return "Ugyldig værdi."
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ParseIndexedGroup collects up to maxItems entries submitted as
// "<list>.<index>.<key>" fields, scanning indices 0..maxItems-1. An entry is
// kept only when its primary key field is non-empty; other populated fields at
// a skipped index are ignored. get is typically gin's Context.PostForm.
func ParseIndexedGroup(get func(string) string, listName string, itemKeys []string, primaryKey string, maxItems int) []map[string]string {
	items := make([]map[string]string, 0, maxItems)

	for i := 0; i < maxItems; i++ {
		item := map[string]string{}
		hasValue := false
		for _, key := range itemKeys {
			value := get(fmt.Sprintf("%s.%d.%s", listName, i, key))
			if value != "" {
				item[key] = value
				hasValue = true
			}
		}
		if hasValue && item[primaryKey] != "" {
			items = append(items, item)
		}
	}
	return items
}
