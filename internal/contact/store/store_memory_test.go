package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenda/internal/contact"
)

func TestMemoryInsertAssignsID(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	rec, err := s.Insert(ctx, contact.Record{Name: "Ana", Telefono: "+12065550100"})
	require.NoError(t, err)
	assert.False(t, rec.ID.IsZero(), "expected an assigned id")

	found, err := s.FindByID(ctx, rec.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, rec, found)
}

func TestMemoryFindByTelefono(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, err := s.FindByTelefono(ctx, "+12065550100")
	assert.ErrorIs(t, err, ErrNotFound)

	inserted, err := s.Insert(ctx, contact.Record{Name: "Ana", Telefono: "+12065550100"})
	require.NoError(t, err)

	found, err := s.FindByTelefono(ctx, "+12065550100")
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, found.ID)
}

func TestMemoryFindAllKeepsInsertionOrder(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	for _, tel := range []string{"+1", "+2", "+3"} {
		_, err := s.Insert(ctx, contact.Record{Name: "c" + tel, Telefono: tel})
		require.NoError(t, err)
	}

	recs, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "+1", recs[0].Telefono)
	assert.Equal(t, "+2", recs[1].Telefono)
	assert.Equal(t, "+3", recs[2].Telefono)
}

func TestMemoryUpdateReplacesFieldsAndKeepsID(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	rec, err := s.Insert(ctx, contact.Record{
		Name: "Ana", Telefono: "+12065550100", Country: "US",
		Timezone: []string{"America/Los_Angeles"},
	})
	require.NoError(t, err)

	err = s.Update(ctx, rec.ID.Hex(), contact.Record{
		Name: "Bob", Telefono: "+442071838750", Country: "GB",
		Timezone: []string{"Europe/London"},
	})
	require.NoError(t, err)

	found, err := s.FindByID(ctx, rec.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, rec.ID, found.ID)
	assert.Equal(t, "Bob", found.Name)
	assert.Equal(t, "+442071838750", found.Telefono)
	assert.Equal(t, "GB", found.Country)
	assert.Equal(t, []string{"Europe/London"}, found.Timezone)
}

func TestMemoryUpdateMissing(t *testing.T) {
	s := NewMemory()
	err := s.Update(context.Background(), "ffffffffffffffffffffffff", contact.Record{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	rec, err := s.Insert(ctx, contact.Record{Name: "Ana", Telefono: "+12065550100"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, rec.ID.Hex()))

	_, err = s.FindByID(ctx, rec.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, rec.ID.Hex()), ErrNotFound)

	recs, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
