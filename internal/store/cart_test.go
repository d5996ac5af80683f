package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/models"
)

func testEvent(id int64, title string) models.Event {
	return models.Event{ID: id, Title: title, Genre: "Rock"}
}

func TestCartAddMergesSameEvent(t *testing.T) {
	c := NewCart()
	rock := testEvent(1, "Rock Night")

	assert.NoError(t, c.Add(rock, 2, 0))
	assert.NoError(t, c.Add(rock, 1, 3))

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].NormalTickets)
	assert.Equal(t, 3, items[0].VIPTickets)
	assert.Equal(t, 6, c.TotalItems())
}

func TestCartAddSnapshotsTitleAndPrices(t *testing.T) {
	c := NewCart()

	assert.NoError(t, c.Add(testEvent(1, "Original Title"), 1, 1))

	items := c.Items()
	assert.Equal(t, "Original Title", items[0].EventTitle)
	assert.Equal(t, models.NormalTicketPrice, items[0].NormalPrice)
	assert.Equal(t, models.VIPTicketPrice, items[0].VIPPrice)
}

func TestCartAddValidation(t *testing.T) {
	c := NewCart()
	event := testEvent(1, "Rock Night")

	var ve *apperrors.ValidationError
	assert.ErrorAs(t, c.Add(event, 0, 0), &ve)
	assert.ErrorAs(t, c.Add(event, -1, 2), &ve)
	assert.Equal(t, 0, c.Len())
}

func TestCartTotalPrice(t *testing.T) {
	c := NewCart()

	assert.NoError(t, c.Add(testEvent(1, "A"), 2, 1))
	assert.NoError(t, c.Add(testEvent(2, "B"), 0, 2))

	// 2*50 + 1*100 and 2*100.
	assert.Equal(t, 400, c.TotalPrice())
	assert.Equal(t, 5, c.TotalItems())

	sum := 0
	for _, li := range c.Items() {
		sum += li.LineTotal()
	}
	assert.Equal(t, c.TotalPrice(), sum)
}

func TestCartTotalsIndependentOfAddOrder(t *testing.T) {
	a := NewCart()
	assert.NoError(t, a.Add(testEvent(1, "A"), 2, 0))
	assert.NoError(t, a.Add(testEvent(2, "B"), 0, 1))
	assert.NoError(t, a.Add(testEvent(1, "A"), 1, 1))

	b := NewCart()
	assert.NoError(t, b.Add(testEvent(2, "B"), 0, 1))
	assert.NoError(t, b.Add(testEvent(1, "A"), 1, 1))
	assert.NoError(t, b.Add(testEvent(1, "A"), 2, 0))

	assert.Equal(t, a.TotalItems(), b.TotalItems())
	assert.Equal(t, a.TotalPrice(), b.TotalPrice())
}

func TestCartRemove(t *testing.T) {
	c := NewCart()
	assert.NoError(t, c.Add(testEvent(1, "A"), 1, 0))
	assert.NoError(t, c.Add(testEvent(2, "B"), 1, 0))

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].EventID)
}

func TestCartClear(t *testing.T) {
	c := NewCart()
	assert.NoError(t, c.Add(testEvent(1, "A"), 3, 2))

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0, c.TotalPrice())
}
