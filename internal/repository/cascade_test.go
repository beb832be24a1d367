package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/testutil"
)

func countBooks(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&model.Book{}).Count(&n).Error)
	return n
}

func TestGormGenreRepository_Delete_CascadesToSubgenresAndBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	refs := testutil.SeedRefs(t, db)
	ctx := context.Background()

	second := testutil.SeedSubgenre(t, db, refs.Genre, "Sword and Sorcery")
	testutil.SeedBook(t, db, refs, "Under High Fantasy", "978-0-10")
	testutil.SeedBook(t, db, refs, "Under Sword and Sorcery", "978-0-11", func(b *model.Book) {
		b.SubgenreID = second.ID
	})

	scifi := testutil.SeedGenre(t, db, "Science Fiction")
	space := testutil.SeedSubgenre(t, db, scifi, "Space Opera")
	survivor := testutil.SeedBook(t, db, testutil.Refs{
		Author:    refs.Author,
		Publisher: refs.Publisher,
		Genre:     scifi,
		Subgenre:  space,
	}, "The Dispossessed", "978-0-12")

	require.NoError(t, NewGenreRepository(db).Delete(ctx, refs.Genre.ID))

	var subgenres int64
	require.NoError(t, db.Model(&model.Subgenre{}).Where("genre_id = ?", refs.Genre.ID).Count(&subgenres).Error)
	assert.Zero(t, subgenres)

	assert.Equal(t, int64(1), countBooks(t, db))
	_, err := NewGormBookRepository(db).FindByID(ctx, survivor.ID)
	assert.NoError(t, err)

	_, err = NewGenreRepository(db).FindByID(ctx, refs.Genre.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGormAuthorRepository_Delete_CascadesToBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	refs := testutil.SeedRefs(t, db)
	ctx := context.Background()

	testutil.SeedBook(t, db, refs, "One", "978-0-20")
	testutil.SeedBook(t, db, refs, "Two", "978-0-21")

	require.NoError(t, NewAuthorRepository(db).Delete(ctx, refs.Author.ID))
	assert.Zero(t, countBooks(t, db))

	assert.ErrorIs(t, NewAuthorRepository(db).Delete(ctx, refs.Author.ID), gorm.ErrRecordNotFound)
}

func TestGormPublisherRepository_Delete_CascadesToBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	refs := testutil.SeedRefs(t, db)

	testutil.SeedBook(t, db, refs, "Published", "978-0-30")

	require.NoError(t, NewPublisherRepository(db).Delete(context.Background(), refs.Publisher.ID))
	assert.Zero(t, countBooks(t, db))
}

func TestGormSubgenreRepository_Delete_CascadesToBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	refs := testutil.SeedRefs(t, db)

	testutil.SeedBook(t, db, refs, "Filed", "978-0-40")

	require.NoError(t, NewSubgenreRepository(db).Delete(context.Background(), refs.Subgenre.ID))
	assert.Zero(t, countBooks(t, db))

	_, err := NewGenreRepository(db).FindByID(context.Background(), refs.Genre.ID)
	assert.NoError(t, err, "parent genre must survive")
}

func TestGormSubgenreRepository_Update_MovesBooksToNewGenre(t *testing.T) {
	db := testutil.NewTestDB(t)
	refs := testutil.SeedRefs(t, db)
	ctx := context.Background()

	book := testutil.SeedBook(t, db, refs, "Moved", "978-0-50")
	scifi := testutil.SeedGenre(t, db, "Science Fiction")

	repo := NewSubgenreRepository(db)
	sub, err := repo.FindByID(ctx, refs.Subgenre.ID)
	require.NoError(t, err)

	sub.GenreID = scifi.ID
	require.NoError(t, repo.Update(ctx, sub))

	moved, err := NewGormBookRepository(db).FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, scifi.ID, moved.GenreID)
	assert.Equal(t, "Science Fiction", moved.Genre.Name)
}

func TestNaturalKeyLookups_IgnoreCase(t *testing.T) {
	db := testutil.NewTestDB(t)
	refs := testutil.SeedRefs(t, db)
	ctx := context.Background()

	genre, err := NewGenreRepository(db).FindByName(ctx, "fANTASY")
	require.NoError(t, err)
	assert.Equal(t, refs.Genre.ID, genre.ID)

	sub, err := NewSubgenreRepository(db).FindByName(ctx, "high fantasy")
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", sub.Genre.Name)

	pub, err := NewPublisherRepository(db).FindByName(ctx, "ACE BOOKS")
	require.NoError(t, err)
	assert.Equal(t, refs.Publisher.ID, pub.ID)

	author, err := NewAuthorRepository(db).FindByName(ctx, "ursula", "le guin")
	require.NoError(t, err)
	assert.Equal(t, refs.Author.ID, author.ID)

	_, err = NewAuthorRepository(db).FindByName(ctx, "ursula", "le")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGormPublisherRepository_Create_DuplicateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPublisherRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Publisher{Name: "Tor"}))
	assert.ErrorIs(t, repo.Create(ctx, &model.Publisher{Name: "Tor"}), ErrDuplicate)
}

func TestGormSubgenreRepository_Create_UnknownGenre(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSubgenreRepository(db)

	err := repo.Create(context.Background(), &model.Subgenre{Name: "Lost", GenreID: testutil.SeedRefs(t, db).Author.ID})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}
