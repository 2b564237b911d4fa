package usecase

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/petspeak/internal/domain"
)

func TestAddAnimal_Appends(t *testing.T) {
	roster := domain.DefaultAnimals(nil)

	out, a, err := NewAddAnimal(nil).Execute(roster, " Rex ", "Dog", "Bark")
	require.NoError(t, err)
	require.Len(t, out, 4)
	require.Len(t, roster, 3)
	require.Equal(t, "Rex", a.Name())
	require.True(t, out[3].Same(a))
}

func TestAddAnimal_DoesNotAliasInput(t *testing.T) {
	roster := make([]domain.Animal, 0, 10)
	roster = append(roster, domain.DefaultAnimals(nil)...)

	first, _, err := NewAddAnimal(nil).Execute(roster, "Rex", "Dog", "Bark")
	require.NoError(t, err)
	second, _, err := NewAddAnimal(nil).Execute(roster, "Nemo", "Fish", "Blub")
	require.NoError(t, err)

	require.Equal(t, "Rex", first[3].Name())
	require.Equal(t, "Nemo", second[3].Name())
}

func TestAddAnimal_RejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	roster := domain.DefaultAnimals(nil)

	out, a, err := NewAddAnimal(slog.New(slog.NewJSONHandler(&buf, nil))).Execute(roster, "Rex", "  ", "Bark")
	require.Error(t, err)
	require.True(t, domain.IsKind(err, domain.KindInvalidInput))
	require.Contains(t, err.Error(), "Animal species is required and must be a non-empty string")
	require.False(t, a.IsValid())
	require.Len(t, out, 3)
	require.Contains(t, buf.String(), "roster.add.rejected")
}
