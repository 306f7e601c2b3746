package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/models"
)

func TestApplyCategory(t *testing.T) {
	var c models.ServiceCategory

	err := ApplyCategory(CategoryInput{Name: "   "}, &c)
	assert.True(t, httperr.IsBusiness(err, "category_name_required"))

	require.NoError(t, ApplyCategory(CategoryInput{Name: " Konsultacje ", Description: "  "}, &c))
	assert.Equal(t, "Konsultacje", c.Name)
	assert.Nil(t, c.Description)
}

func TestApplyService(t *testing.T) {
	valid := ServiceInput{
		Name:            "Pękające pięty",
		Price:           "150.499",
		DurationMinutes: 50,
		IsActive:        true,
		CategoryID:      1,
	}

	tests := []struct {
		name   string
		mutate func(in *ServiceInput)
		code   string
	}{
		{name: "missing name", mutate: func(in *ServiceInput) { in.Name = "" }, code: "service_fields_required"},
		{name: "missing category", mutate: func(in *ServiceInput) { in.CategoryID = 0 }, code: "service_fields_required"},
		{name: "zero duration", mutate: func(in *ServiceInput) { in.DurationMinutes = 0 }, code: "invalid_duration"},
		{name: "negative price", mutate: func(in *ServiceInput) { in.Price = "-1" }, code: "invalid_price"},
		{name: "garbage price", mutate: func(in *ServiceInput) { in.Price = "sto" }, code: "invalid_price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := ApplyService(in, &models.Service{})
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}

	var s models.Service
	require.NoError(t, ApplyService(valid, &s))
	assert.Equal(t, 150.5, s.Price)
	assert.Equal(t, 50, s.DurationMinutes)
	assert.True(t, s.IsActive)
	assert.Nil(t, s.Description)
}

func TestParsePrice_BlankIsZero(t *testing.T) {
	p, err := ParsePrice("")
	require.NoError(t, err)
	assert.True(t, p.IsZero())
}
