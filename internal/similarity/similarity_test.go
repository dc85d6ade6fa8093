package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden values computed with Python's difflib.SequenceMatcher(None, b, a).ratio().
func TestRatio_Golden(t *testing.T) {
	tests := []struct {
		query, candidate string
		want             float64
	}{
		{"manzana", "Manzano (Malus domestica)", 0.375},
		{"lechuga", "Lechuga (Lactuca sativa)", 0.3870967741935484},
		{"compost", "compostaje", 0.8235294117647058},
		{"tomate", "tomato", 0.8333333333333334},
		{"abc", "xyz", 0},
		{"", "", 1},
		{"ab", "ab", 1},
		{"abcd", "abxy", 0.5},
		{"biofitro", "biofiltro", 0.9411764705882353},
		{"nandu", "ñandú", 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.candidate, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.candidate, tt.query), 1e-12)
		})
	}
}

func TestCloseMatches_ThresholdInclusive(t *testing.T) {
	got := CloseMatches("abcd", []string{"axyz", "abxy", "abzz"}, 5, DefaultCutoff)
	assert.Equal(t, []string{"abzz", "abxy"}, Candidates(got))
	for _, m := range got {
		assert.InDelta(t, 0.5, m.Score, 1e-12)
	}
}

func TestCloseMatches_CapAndTieOrder(t *testing.T) {
	candidates := []string{"abce", "abcf", "abcg", "abch", "abci", "abcj", "axyz", "abxy"}
	got := CloseMatches("abcd", candidates, 5, DefaultCutoff)
	require.Len(t, got, 5)
	assert.Equal(t, []string{"abcj", "abci", "abch", "abcg", "abcf"}, Candidates(got))
}

func TestCloseMatches_BestFirst(t *testing.T) {
	got := CloseMatches("lechuja", []string{"Lechuga (Lactuca sativa)", "Lechuga", "Acelga", "Lechuza"}, 5, DefaultCutoff)
	assert.Equal(t, []string{"Lechuza", "Lechuga"}, Candidates(got))
}

func TestCloseMatches_DuplicatesConsideredOnce(t *testing.T) {
	got := CloseMatches("tomate", []string{"tomato", "tomato"}, 5, DefaultCutoff)
	assert.Equal(t, []string{"tomato"}, Candidates(got))
}

func TestCloseMatches_NoneQualify(t *testing.T) {
	assert.Empty(t, CloseMatches("abc", []string{"xyz", "qrs"}, 5, DefaultCutoff))
	assert.Empty(t, CloseMatches("abc", []string{"abc"}, 0, DefaultCutoff))
	assert.Empty(t, CloseMatches("abc", nil, 5, DefaultCutoff))
}

func TestBest(t *testing.T) {
	m, ok := Best("biofitro", []string{"compost", "biofiltro"}, DefaultCutoff)
	require.True(t, ok)
	assert.Equal(t, "biofiltro", m.Candidate)

	_, ok = Best("zzz", []string{"compost"}, DefaultCutoff)
	assert.False(t, ok)
}
