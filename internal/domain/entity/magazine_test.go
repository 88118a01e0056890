package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewMagazine(t *testing.T) {
	tests := []struct {
		name     string
		magName  string
		category string
		wantErr  bool
	}{
		{name: "valid", magName: "ByteWeekly", category: "Tech"},
		{name: "shortest name", magName: "GQ", category: "Fashion"},
		{name: "longest name", magName: strings.Repeat("x", 16), category: "Misc"},
		{name: "name too short", magName: "X", category: "Tech", wantErr: true},
		{name: "name too long", magName: strings.Repeat("x", 17), category: "Tech", wantErr: true},
		{name: "empty category", magName: "ByteWeekly", category: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()

			m, err := reg.NewMagazine(tt.magName, tt.category)

			if tt.wantErr {
				assert.Nil(t, m)
				assert.ErrorIs(t, err, ErrValidationFailed)
				assert.Empty(t, reg.Magazines())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.magName, m.Name())
			assert.Equal(t, tt.category, m.Category())
			assert.Equal(t, []*Magazine{m}, reg.Magazines())
		})
	}
}

func TestMagazine_SetName(t *testing.T) {
	reg := NewRegistry()
	m := mustMagazine(t, reg, "ByteWeekly", "Tech")

	require.NoError(t, m.SetName("ByteDaily"))
	assert.Equal(t, "ByteDaily", m.Name())

	require.NoError(t, m.SetName("ByteHourly"))
	assert.Equal(t, "ByteHourly", m.Name())

	err := m.SetName("B")
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "ByteHourly", m.Name())
}

func TestMagazine_SetCategory(t *testing.T) {
	reg := NewRegistry()
	m := mustMagazine(t, reg, "ByteWeekly", "Tech")

	require.NoError(t, m.SetCategory("Science"))
	assert.Equal(t, "Science", m.Category())

	err := m.SetCategory("")
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "Science", m.Category())
}

func TestMagazine_Setters_Property(t *testing.T) {
	reg := NewRegistry()
	m := mustMagazine(t, reg, "ByteWeekly", "Tech")

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringN(0, 24, -1).Draw(t, "name")
		category := rapid.StringN(0, 4, -1).Draw(t, "category")
		prevName, prevCategory := m.Name(), m.Category()

		if err := m.SetName(name); err != nil && m.Name() != prevName {
			t.Fatalf("failed SetName(%q) changed name to %q", name, m.Name())
		}
		if err := m.SetCategory(category); err != nil && m.Category() != prevCategory {
			t.Fatalf("failed SetCategory(%q) changed category to %q", category, m.Category())
		}
		if n := len([]rune(m.Name())); n < 2 || n > 16 {
			t.Fatalf("name %q out of range", m.Name())
		}
		if m.Category() == "" {
			t.Fatalf("category is empty")
		}
	})
}

func TestMagazine_ArticlesAndContributors(t *testing.T) {
	reg := NewRegistry()
	ada := mustAuthor(t, reg, "Ada")
	grace := mustAuthor(t, reg, "Grace")
	bw := mustMagazine(t, reg, "ByteWeekly", "Tech")
	other := mustMagazine(t, reg, "Canvas", "Art")

	a1 := mustArticle(t, reg, grace, bw, "Compilers for All")
	mustArticle(t, reg, ada, other, "Color Theory Basics")
	a3 := mustArticle(t, reg, ada, bw, "Intro to Pointers")
	a4 := mustArticle(t, reg, grace, bw, "Linkers Explained")

	assert.Equal(t, []*Article{a1, a3, a4}, bw.Articles())
	assert.Equal(t, []*Author{grace, ada}, bw.Contributors())
	assert.Empty(t, mustMagazine(t, reg, "Empty", "None").Contributors())
}

func TestMagazine_ArticleTitles(t *testing.T) {
	reg := NewRegistry()
	ada := mustAuthor(t, reg, "Ada")
	bw := mustMagazine(t, reg, "ByteWeekly", "Tech")

	titles, ok := bw.ArticleTitles()
	assert.False(t, ok)
	assert.Nil(t, titles)

	mustArticle(t, reg, ada, bw, "Intro to Pointers")
	mustArticle(t, reg, ada, bw, "Pointers, Part Two")

	titles, ok = bw.ArticleTitles()
	assert.True(t, ok)
	assert.Equal(t, []string{"Intro to Pointers", "Pointers, Part Two"}, titles)
}

func TestMagazine_ContributingAuthors(t *testing.T) {
	reg := NewRegistry()
	ada := mustAuthor(t, reg, "Ada")
	grace := mustAuthor(t, reg, "Grace")
	bw := mustMagazine(t, reg, "ByteWeekly", "Tech")

	authors, ok := bw.ContributingAuthors()
	assert.False(t, ok, "no articles")
	assert.Nil(t, authors)

	for _, title := range []string{"Part One", "Part Two"} {
		mustArticle(t, reg, ada, bw, title)
		mustArticle(t, reg, grace, bw, "Grace "+title)
	}
	authors, ok = bw.ContributingAuthors()
	assert.False(t, ok, "exactly two articles does not qualify")
	assert.Nil(t, authors)

	mustArticle(t, reg, grace, bw, "Grace Part Three")
	authors, ok = bw.ContributingAuthors()
	assert.True(t, ok)
	assert.Equal(t, []*Author{grace}, authors)

	mustArticle(t, reg, ada, bw, "Part Three")
	authors, ok = bw.ContributingAuthors()
	assert.True(t, ok)
	assert.Equal(t, []*Author{ada, grace}, authors)
}
