package domain

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)

	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidate_TestimonialRatingOutOfRange(t *testing.T) {
	err := Validate(TestimonialInput{
		CustomerName: "Ana",
		Comment:      "Muy bonito",
		Rating:       6,
	})

	require.ErrorIs(t, err, e.ErrValidation)
	assert.Equal(t, []string{"rating"}, fieldNames(t, err))
	assert.Contains(t, err.Error(), "rating: must be at most 5")
}

func TestValidate_TestimonialRatingZero(t *testing.T) {
	err := Validate(TestimonialInput{CustomerName: "Ana", Comment: "ok", Rating: 0})
	assert.Equal(t, []string{"rating"}, fieldNames(t, err))
}

func TestValidate_ValidInputs(t *testing.T) {
	inputs := []any{
		CategoryInput{Name: "Pulseras", Slug: "pulseras"},
		CategoryInput{Name: "Aretes largos", Slug: "aretes-largos", ImageURL: Ptr("/images/aretes.svg")},
		ProductInput{Name: "Anillo Dorado", Price: Ptr(220.0), CategoryID: 1},
		ProductInput{Name: "Collar", Price: Ptr(0.0), CategoryID: 2, Description: Ptr("hecho a mano")},
		ProductInput{Name: "Pulsera", Price: Ptr(19.99), CategoryID: 1},
		TestimonialInput{CustomerName: "Laura", Comment: "Excelente", Rating: 5},
		ContactMessageInput{Name: "Ana", Email: "ana@example.com", Subject: "Pedido", Message: "Quiero hacer un pedido"},
		UserInput{Username: "admin", Password: "secret-pass"},
		CategoryPatch{},
		ProductPatch{Rating: Ptr(4.5)},
	}

	for _, in := range inputs {
		assert.NoError(t, Validate(in), "%T %+v", in, in)
	}
}

func TestValidate_Product(t *testing.T) {
	tests := []struct {
		name   string
		in     ProductInput
		fields []string
	}{
		{name: "blank name", in: ProductInput{Name: "   ", Price: Ptr(10.0), CategoryID: 1}, fields: []string{"name"}},
		{name: "negative price", in: ProductInput{Name: "x", Price: Ptr(-1.0), CategoryID: 1}, fields: []string{"price"}},
		{name: "price precision", in: ProductInput{Name: "x", Price: Ptr(10.999), CategoryID: 1}, fields: []string{"price"}},
		{name: "missing category", in: ProductInput{Name: "x", Price: Ptr(1.0)}, fields: []string{"categoryId"}},
		{name: "missing price", in: ProductInput{Name: "Sin precio", CategoryID: 1}, fields: []string{"price"}},
		{name: "nul in description", in: ProductInput{Name: "x", Price: Ptr(1.0), CategoryID: 1, Description: Ptr("a\x00b")}, fields: []string{"description"}},
		{name: "everything wrong", in: ProductInput{Price: Ptr(-5.0), CategoryID: -1}, fields: []string{"name", "price", "categoryId"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			require.ErrorIs(t, err, e.ErrValidation)
			assert.Equal(t, tt.fields, fieldNames(t, err))
		})
	}
}

func TestValidate_ProductPatch(t *testing.T) {
	err := Validate(ProductPatch{Rating: Ptr(5.5), ReviewCount: Ptr(-1)})
	assert.Equal(t, []string{"rating", "reviewCount"}, fieldNames(t, err))

	err = Validate(ProductPatch{Name: Ptr("")})
	assert.Equal(t, []string{"name"}, fieldNames(t, err))
}

// review_count в PostgreSQL имеет тип INTEGER.
func TestValidate_ProductPatchReviewCountFitsInt32(t *testing.T) {
	require.NoError(t, Validate(ProductPatch{ReviewCount: Ptr(math.MaxInt32)}))

	err := Validate(ProductPatch{ReviewCount: Ptr(3_000_000_000)})
	assert.Equal(t, []string{"reviewCount"}, fieldNames(t, err))
}

func TestValidate_MissingPriceMessage(t *testing.T) {
	err := Validate(ProductInput{Name: "Sin precio", CategoryID: 1})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "price", Message: "is required"}}, verr.Fields)
}

func TestValidate_TextRejectsNULAndInvalidUTF8(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		fields []string
	}{
		{name: "category name", in: CategoryInput{Name: "a\x00b", Slug: "ab"}, fields: []string{"name"}},
		{name: "category patch image", in: CategoryPatch{ImageURL: Ptr("/x\x00.png")}, fields: []string{"imageUrl"}},
		{name: "product patch name", in: ProductPatch{Name: Ptr("\xff\xfe")}, fields: []string{"name"}},
		{name: "testimonial comment", in: TestimonialInput{CustomerName: "Ana", Comment: "ok\x00", Rating: 5}, fields: []string{"comment"}},
		{name: "contact subject", in: ContactMessageInput{
			Name: "Ana", Email: "ana@example.com", Subject: "Ho\x00la", Message: "Quiero un pedido grande",
		}, fields: []string{"subject"}},
		{name: "username", in: UserInput{Username: "ad\x00min", Password: "secret-pass"}, fields: []string{"username"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			require.ErrorIs(t, err, e.ErrValidation)
			assert.Equal(t, tt.fields, fieldNames(t, err))
		})
	}
}

func TestValidate_TextAcceptsMultibyteUpToMax(t *testing.T) {
	// max считает руны, а не байты.
	name := strings.Repeat("ñ", 120)
	require.NoError(t, Validate(CategoryInput{Name: name, Slug: "n"}))

	err := Validate(CategoryInput{Name: name + "ñ", Slug: "n"})
	assert.Equal(t, []string{"name"}, fieldNames(t, err))
}

func TestValidate_Category(t *testing.T) {
	err := Validate(CategoryInput{Name: "Pulseras", Slug: "Pulseras Bonitas"})
	assert.Equal(t, []string{"slug"}, fieldNames(t, err))

	err = Validate(CategoryInput{})
	assert.Equal(t, []string{"name", "slug"}, fieldNames(t, err))

	err = Validate(CategoryPatch{Slug: Ptr("bad--slug")})
	assert.Equal(t, []string{"slug"}, fieldNames(t, err))
}

func TestValidate_ContactMessage(t *testing.T) {
	err := Validate(ContactMessageInput{
		Name:    "Ana",
		Email:   "not-an-email",
		Subject: "Hola",
		Message: "corto",
	})

	assert.Equal(t, []string{"email", "message"}, fieldNames(t, err))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a valid email address", verr.Fields[0].Message)
	assert.True(t, strings.HasPrefix(verr.Fields[1].Message, "must be at least 10"))
}

func TestValidate_User(t *testing.T) {
	err := Validate(UserInput{Username: "ab", Password: "short"})
	assert.Equal(t, []string{"username", "password"}, fieldNames(t, err))
}
