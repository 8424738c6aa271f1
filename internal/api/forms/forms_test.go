package forms

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors_MapsTagsToDanishMessages(t *testing.T) {
	type form struct {
		Name    string `validate:"required,min=2"`
		Email   string `validate:"required,email"`
		Website string `validate:"omitempty,url"`
	}

	v := validator.New()
	err := v.Struct(form{Name: "", Email: "not-an-email", Website: "not a url"})
	require.Error(t, err)

	fields := FieldErrors(err)

	require.Contains(t, fields, "name")
	assert.Equal(t, []string{"Feltet er påkrævet."}, fields["name"])
	assert.Equal(t, []string{"Ugyldig email-adresse."}, fields["email"])
	assert.Equal(t, []string{"Ugyldig URL."}, fields["website"])
}

func TestFieldErrors_MinIncludesTheLimit(t *testing.T) {
	type form struct {
		Message string `validate:"min=10"`
	}

	v := validator.New()
	err := v.Struct(form{Message: "kort"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, []string{"Skal være mindst 10 tegn."}, fields["message"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	fields := FieldErrors(errors.New("unexpected EOF"))
	assert.NotNil(t, fields)
	assert.Empty(t, fields)
}

func TestParseIndexedGroup(t *testing.T) {
	posted := map[string]string{
		"events.0.title":     "Fernisering",
		"events.0.startDate": "2025-09-01",
		"events.1.title":     "",
		"events.1.startDate": "2025-10-01",
		"events.2.title":     "Julemarked",
	}
	get := func(key string) string { return posted[key] }

	items := ParseIndexedGroup(get, "events", []string{"title", "startDate"}, "title", 10)

	require.Len(t, items, 2)
	assert.Equal(t, "Fernisering", items[0]["title"])
	assert.Equal(t, "2025-09-01", items[0]["startDate"])
	// Index 1 has data but an empty primary key, so it is dropped.
	assert.Equal(t, "Julemarked", items[1]["title"])
	_, hasStart := items[1]["startDate"]
	assert.False(t, hasStart)
}

func TestParseIndexedGroup_MaxItemsBoundsTheScan(t *testing.T) {
	posted := map[string]string{
		"slides.0.title": "A",
		"slides.1.title": "B",
		"slides.2.title": "C",
	}
	get := func(key string) string { return posted[key] }

	items := ParseIndexedGroup(get, "slides", []string{"title"}, "title", 2)

	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0]["title"])
	assert.Equal(t, "B", items[1]["title"])
}

func TestParseIndexedGroup_NothingPosted(t *testing.T) {
	get := func(string) string { return "" }
	items := ParseIndexedGroup(get, "partners", []string{"name", "url"}, "name", 4)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
