package showcase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podoclinic/booking/internal/dto"
)

func svc(id uint, name string, price float64, category uint) dto.Service {
	return dto.Service{ID: id, Name: name, Price: price, CategoryID: category, IsActive: true}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "CENA INDYW.", FormatPrice(0))
	assert.Equal(t, "170 zł", FormatPrice(170))
	assert.Equal(t, "99 zł", FormatPrice(99.99))
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "Orteza (cena indywidualna)", OptionLabel(svc(1, "Orteza", 0, 1)))
	assert.Equal(t, "Konsultacja podologiczna - 100 zł", OptionLabel(svc(2, "Konsultacja podologiczna", 100, 1)))
}

func TestGroupByCategory(t *testing.T) {
	categories := []dto.Category{{ID: 1, Name: "Podstawowe"}, {ID: 2, Name: "Dodatkowe"}, {ID: 3, Name: "Puste"}}
	services := []dto.Service{
		svc(1, "A", 100, 1),
		svc(2, "B", 50, 2),
		svc(3, "C", 70, 1),
		svc(4, "Orphan", 10, 9),
	}

	groups := GroupByCategory(categories, services)
	require.Len(t, groups, 3)

	assert.Equal(t, "Podstawowe", groups[0].Category.Name)
	assert.Equal(t, []uint{1, 3}, ids(groups[0].Services))
	assert.Equal(t, []uint{2}, ids(groups[1].Services))
	assert.NotNil(t, groups[2].Services)
	assert.Empty(t, groups[2].Services)
}

func TestSortByPrice(t *testing.T) {
	in := []dto.Service{svc(1, "A", 150, 1), svc(2, "B", 0, 1), svc(3, "C", 100, 1), svc(4, "D", 100, 1)}

	out := SortByPrice(in)
	assert.Equal(t, []uint{2, 3, 4, 1}, ids(out))
	assert.Equal(t, uint(1), in[0].ID)
}

func TestActive(t *testing.T) {
	off := svc(2, "B", 10, 1)
	off.IsActive = false

	assert.Equal(t, []uint{1}, ids(Active([]dto.Service{svc(1, "A", 10, 1), off})))
}

func TestCarousel_RoundTrip(t *testing.T) {
	groups := GroupByCategory(
		[]dto.Category{{ID: 1}, {ID: 2}, {ID: 3}},
		nil,
	)
	c := NewCarousel(groups)

	for i := 0; i < len(groups); i++ {
		c.Advance()
	}
	assert.Equal(t, 0, c.Index())

	c.Advance()
	assert.Equal(t, 1, c.Index())

	c.Select(5)
	assert.Equal(t, 2, c.Index())

	c.Select(-1)
	assert.Equal(t, 2, c.Index())
}

func TestCarousel_Visible(t *testing.T) {
	var services []dto.Service
	for i := uint(1); i <= 6; i++ {
		services = append(services, svc(i, "S", float64(i), 1))
	}
	c := NewCarousel(GroupByCategory([]dto.Category{{ID: 1}}, services))

	assert.Equal(t, []uint{1, 2, 3, 4}, ids(c.Visible()))
}

func TestCarousel_Empty(t *testing.T) {
	c := NewCarousel(nil)
	c.Advance()
	c.Select(3)

	assert.Equal(t, 0, c.Index())
	assert.Nil(t, c.Visible())
}

func TestCarousel_Run(t *testing.T) {
	c := NewCarousel(GroupByCategory([]dto.Category{{ID: 1}, {ID: 2}}, nil))
	c.SetInterval(10 * time.Millisecond)

	changed := make(chan int, 8)
	c.OnChange(func(i int) {
		select {
		case changed <- i:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	select {
	case i := <-changed:
		assert.Equal(t, 1, i)
	case <-time.After(time.Second):
		t.Fatal("carousel did not advance")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("carousel did not stop")
	}
}

func TestCarousel_SelectRestartsInterval(t *testing.T) {
	c := NewCarousel(GroupByCategory([]dto.Category{{ID: 1}, {ID: 2}, {ID: 3}}, nil))
	c.SetInterval(200 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	time.Sleep(150 * time.Millisecond)
	c.Select(2)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, c.Index(), "tick due at 200ms must be pushed back by the selection")

	assert.Eventually(t, func() bool { return c.Index() == 0 },
		300*time.Millisecond, 10*time.Millisecond)
}

func ids(services []dto.Service) []uint {
	out := make([]uint, 0, len(services))
	for _, s := range services {
		out = append(out, s.ID)
	}
	return out
}
