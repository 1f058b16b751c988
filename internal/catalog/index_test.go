package catalog

import (
	"fmt"
	"math/rand"
	"testing"

	"cat-encyclopedia/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breeds(names ...string) []models.Breed {
	out := make([]models.Breed, len(names))
	for i, n := range names {
		out[i] = models.Breed{Name: n, Description: fmt.Sprintf("record %d", i)}
	}
	return out
}

func TestBuildSeedCatalog(t *testing.T) {
	idx, err := Build(models.SeedBreeds())
	require.NoError(t, err)

	assert.Equal(t, []string{"С", "Б", "Р", "М"}, idx.Keys())
	assert.Equal(t, []string{"Сибирская кошка", "Сфинкс"}, idx.Names("С"))
	assert.Equal(t, []string{"Британская короткошёрстная"}, idx.Names("Б"))
	assert.Equal(t, 5, idx.Len())
}

func TestBuildUppercasesFirstLetter(t *testing.T) {
	idx, err := Build(breeds("сфинкс", "Сибирская", "abyssinian", "Ägyptische Mau", "ägäis"))
	require.NoError(t, err)

	assert.Equal(t, []string{"С", "A", "Ä"}, idx.Keys())
	assert.Equal(t, []string{"сфинкс", "Сибирская"}, idx.Names("С"))
	assert.Equal(t, []string{"Ägyptische Mau", "ägäis"}, idx.Names("Ä"))
}

func TestBuildEmptyNameIsRejected(t *testing.T) {
	_, err := Build(breeds("Сфинкс", ""))
	require.ErrorIs(t, err, ErrEmptyName)
	assert.Contains(t, err.Error(), "record 1")
}

func TestBuildEmptyInput(t *testing.T) {
	idx, err := Build(nil)
	require.NoError(t, err)
	assert.Empty(t, idx.Keys())
	assert.Zero(t, idx.Len())
}

func TestBuildPartitionsInputPreservingOrder(t *testing.T) {
	alphabet := []rune("абвгдСМБРabcXYZ")
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(40)
		input := make([]models.Breed, n)
		for i := range input {
			first := alphabet[rng.Intn(len(alphabet))]
			input[i] = models.Breed{Name: fmt.Sprintf("%c-%d", first, i)}
		}

		idx, err := Build(input)
		require.NoError(t, err)

		seen := make(map[string]int)
		total := 0
		for _, key := range idx.Keys() {
			group := idx.Group(key)
			require.NotEmpty(t, group, "groups are never empty")

			last := -1
			for _, rec := range group {
				k, err := KeyFor(rec.Name)
				require.NoError(t, err)
				assert.Equal(t, key, k)

				pos := positionOf(input, rec.Name)
				assert.Greater(t, pos, last, "group order follows input order")
				last = pos

				seen[rec.Name]++
				total++
			}
		}

		assert.Equal(t, n, total)
		for _, rec := range input {
			assert.Equal(t, 1, seen[rec.Name], "record %q appears in exactly one group", rec.Name)
		}
	}
}

func positionOf(records []models.Breed, name string) int {
	for i, r := range records {
		if r.Name == name {
			return i
		}
	}
	return -1
}

func TestMemberIsPositional(t *testing.T) {
	input := breeds("Сфинкс", "Сфинкс", "Сибирская кошка")
	idx, err := Build(input)
	require.NoError(t, err)

	first, err := idx.Member("С", 0)
	require.NoError(t, err)
	second, err := idx.Member("С", 1)
	require.NoError(t, err)

	assert.Equal(t, "record 0", first.Description)
	assert.Equal(t, "record 1", second.Description)
}

func TestMemberErrors(t *testing.T) {
	idx, err := Build(breeds("Сфинкс"))
	require.NoError(t, err)

	_, err = idx.Member("Z", 0)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = idx.Member("С", 1)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)

	_, err = idx.Member("С", -1)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
}

func TestGroupReturnsCopy(t *testing.T) {
	idx, err := Build(breeds("Сфинкс"))
	require.NoError(t, err)

	g := idx.Group("С")
	g[0].Name = "changed"
	assert.Equal(t, []string{"Сфинкс"}, idx.Names("С"))
}
