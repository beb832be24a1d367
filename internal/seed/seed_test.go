package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/testutil"
)

func reposFor(db *gorm.DB) Repos {
	return Repos{
		Books:      repository.NewGormBookRepository(db),
		Authors:    repository.NewAuthorRepository(db),
		Publishers: repository.NewPublisherRepository(db),
		Genres:     repository.NewGenreRepository(db),
		Subgenres:  repository.NewSubgenreRepository(db),
	}
}

func loadSample(t *testing.T) *Fixture {
	t.Helper()

	f, err := os.Open(filepath.Join("..", "..", "testdata", "catalog.yaml"))
	require.NoError(t, err)
	defer f.Close()

	fixture, err := Load(f)
	require.NoError(t, err)
	return fixture
}

func TestLoad_SampleFixture(t *testing.T) {
	fixture := loadSample(t)

	assert.Len(t, fixture.Authors, 3)
	assert.Len(t, fixture.Publishers, 3)
	require.Len(t, fixture.Genres, 2)
	assert.Equal(t, []string{"High Fantasy", "Magical Realism"}, fixture.Genres[0].Subgenres)
	require.Len(t, fixture.Books, 4)
	assert.Equal(t, "1968-11-01", fixture.Books[0].PublicationDate.Format("2006-01-02"))
	assert.Equal(t, "Le Guin", fixture.Books[0].Author.LastName)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("authors:\n  - first_name: A\n    nickname: B\n"))
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	fixture, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fixture.Books)
}

func TestApply_SampleFixtureIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repos := reposFor(db)
	ctx := context.Background()
	fixture := loadSample(t)

	stats, err := Apply(ctx, repos, fixture)
	require.NoError(t, err)
	assert.Equal(t, Stats{Authors: 3, Publishers: 3, Genres: 2, Subgenres: 4, Books: 4}, stats)

	stats, err = Apply(ctx, repos, fixture)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	book, err := repos.Books.FindByISBN(ctx, "978-84-376-0494-7")
	require.NoError(t, err)
	assert.Equal(t, model.LanguageSpanish, book.Language)
	assert.Equal(t, model.FormatPhysical, book.FormatType)
	assert.Equal(t, "Magical Realism", book.Subgenre.Name)

	ebooks, err := repos.Books.Find(ctx, repository.BookFilter{Format: model.FormatEBook})
	require.NoError(t, err)
	assert.Len(t, ebooks, 2)
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fixture Fixture
		want    string
	}{
		{
			name: "unknown language",
			fixture: Fixture{Books: []Book{{Title: "X", ISBN: "1-1", Language: "klingon", Format: "PHY"}}},
			want: `unknown language "klingon"`,
		},
		{
			name: "unknown format",
			fixture: Fixture{Books: []Book{{Title: "X", ISBN: "1-1", Language: "ENG", Format: "scroll"}}},
			want: `unknown format "scroll"`,
		},
		{
			name: "missing author",
			fixture: Fixture{Books: []Book{{
				Title: "X", ISBN: "1-1", Language: "ENG", Format: "PHY",
				Author: AuthorRef{FirstName: "No", LastName: "Body"},
			}}},
			want: "author No Body",
		},
		{
			name: "subgenre under two genres",
			fixture: Fixture{Genres: []Genre{
				{Name: "Fantasy", Subgenres: []string{"Weird"}},
				{Name: "Horror", Subgenres: []string{"Weird"}},
			}},
			want: `subgenre "Weird" already belongs to genre "Fantasy"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.NewTestDB(t)

			_, err := Apply(context.Background(), reposFor(db), &tt.fixture)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStats_String(t *testing.T) {
	s := Stats{Authors: 1, Books: 2}
	assert.Equal(t, "authors=1 publishers=0 genres=0 subgenres=0 books=2", s.String())
}
