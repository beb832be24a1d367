// Package seed loads a YAML catalog fixture and stores it through the
// repositories. Records are matched by natural key, so applying the same
// fixture twice creates nothing the second time.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/snnyvrz/shelfshare/catalog-api/internal/catalog"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type Fixture struct {
	Authors    []Author    `yaml:"authors"`
	Publishers []Publisher `yaml:"publishers"`
	Genres     []Genre     `yaml:"genres"`
	Books      []Book      `yaml:"books"`
}

type Author struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Country   string `yaml:"country"`
	Biography string `yaml:"biography"`
}

type Publisher struct {
	Name        string `yaml:"name"`
	Country     string `yaml:"country"`
	Description string `yaml:"description"`
}

type Genre struct {
	Name      string   `yaml:"name"`
	Subgenres []string `yaml:"subgenres"`
}

type AuthorRef struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

// Book references its author, publisher, genre and subgenre by name.
// Language and format accept either the stored code or the human word.
type Book struct {
	Title           string     `yaml:"title"`
	Synopsis        string     `yaml:"synopsis"`
	Pages           int        `yaml:"pages"`
	Language        string     `yaml:"language"`
	Cover           string     `yaml:"cover"`
	ISBN            string     `yaml:"isbn"`
	Format          string     `yaml:"format"`
	PublicationDate model.Date `yaml:"publication_date"`
	Author          AuthorRef  `yaml:"author"`
	Publisher       string     `yaml:"publisher"`
	Genre           string     `yaml:"genre"`
	Subgenre        string     `yaml:"subgenre"`
}

// Repos is the storage a fixture is applied to.
type Repos struct {
	Books      repository.BookRepository
	Authors    repository.AuthorRepository
	Publishers repository.PublisherRepository
	Genres     repository.GenreRepository
	Subgenres  repository.SubgenreRepository
}

// Stats counts the records a run created.
type Stats struct {
	Authors    int
	Publishers int
	Genres     int
	Subgenres  int
	Books      int
}

func (s Stats) String() string {
	return fmt.Sprintf("authors=%d publishers=%d genres=%d subgenres=%d books=%d",
		s.Authors, s.Publishers, s.Genres, s.Subgenres, s.Books)
}

// Load decodes a fixture, rejecting unknown keys.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

func Apply(ctx context.Context, repos Repos, f *Fixture) (Stats, error) {
	var stats Stats

	for _, a := range f.Authors {
		created, err := ensureAuthor(ctx, repos.Authors, a)
		if err != nil {
			return stats, err
		}
		if created {
			stats.Authors++
		}
	}

	for _, p := range f.Publishers {
		_, err := repos.Publishers.FindByName(ctx, p.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return stats, fmt.Errorf("publisher %q: %w", p.Name, err)
		}
		if err := repos.Publishers.Create(ctx, &model.Publisher{
			Name:        p.Name,
			Country:     p.Country,
			Description: p.Description,
		}); err != nil {
			return stats, fmt.Errorf("create publisher %q: %w", p.Name, err)
		}
		stats.Publishers++
	}

	for _, g := range f.Genres {
		genre, created, err := ensureGenre(ctx, repos.Genres, g.Name)
		if err != nil {
			return stats, err
		}
		if created {
			stats.Genres++
		}

		for _, name := range g.Subgenres {
			created, err := ensureSubgenre(ctx, repos.Subgenres, genre, name)
			if err != nil {
				return stats, err
			}
			if created {
				stats.Subgenres++
			}
		}
	}

	for _, b := range f.Books {
		created, err := ensureBook(ctx, repos, b)
		if err != nil {
			return stats, fmt.Errorf("book %q: %w", b.Title, err)
		}
		if created {
			stats.Books++
		}
	}

	return stats, nil
}

func ensureAuthor(ctx context.Context, repo repository.AuthorRepository, a Author) (bool, error) {
	_, err := repo.FindByName(ctx, a.FirstName, a.LastName)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("author %s %s: %w", a.FirstName, a.LastName, err)
	}

	if err := repo.Create(ctx, &model.Author{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Country:   a.Country,
		Biography: a.Biography,
	}); err != nil {
		return false, fmt.Errorf("create author %s %s: %w", a.FirstName, a.LastName, err)
	}
	return true, nil
}

func ensureGenre(ctx context.Context, repo repository.GenreRepository, name string) (*model.Genre, bool, error) {
	genre, err := repo.FindByName(ctx, name)
	if err == nil {
		return genre, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("genre %q: %w", name, err)
	}

	genre = &model.Genre{Name: name}
	if err := repo.Create(ctx, genre); err != nil {
		return nil, false, fmt.Errorf("create genre %q: %w", name, err)
	}
	return genre, true, nil
}

func ensureSubgenre(ctx context.Context, repo repository.SubgenreRepository, genre *model.Genre, name string) (bool, error) {
	existing, err := repo.FindByName(ctx, name)
	if err == nil {
		if existing.GenreID != genre.ID {
			return false, fmt.Errorf("subgenre %q already belongs to genre %q", name, existing.Genre.Name)
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("subgenre %q: %w", name, err)
	}

	if err := repo.Create(ctx, &model.Subgenre{Name: name, GenreID: genre.ID}); err != nil {
		return false, fmt.Errorf("create subgenre %q: %w", name, err)
	}
	return true, nil
}

func ensureBook(ctx context.Context, repos Repos, b Book) (bool, error) {
	_, err := repos.Books.FindByISBN(ctx, b.ISBN)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	language, err := languageOf(b.Language)
	if err != nil {
		return false, err
	}
	format, err := formatOf(b.Format)
	if err != nil {
		return false, err
	}

	author, err := repos.Authors.FindByName(ctx, b.Author.FirstName, b.Author.LastName)
	if err != nil {
		return false, fmt.Errorf("author %s %s: %w", b.Author.FirstName, b.Author.LastName, err)
	}
	publisher, err := repos.Publishers.FindByName(ctx, b.Publisher)
	if err != nil {
		return false, fmt.Errorf("publisher %q: %w", b.Publisher, err)
	}
	genre, err := repos.Genres.FindByName(ctx, b.Genre)
	if err != nil {
		return false, fmt.Errorf("genre %q: %w", b.Genre, err)
	}
	subgenre, err := repos.Subgenres.FindByName(ctx, b.Subgenre)
	if err != nil {
		return false, fmt.Errorf("subgenre %q: %w", b.Subgenre, err)
	}

	if err := repos.Books.Create(ctx, &model.Book{
		Title:           b.Title,
		Synopsis:        b.Synopsis,
		Pages:           b.Pages,
		Language:        language,
		Cover:           b.Cover,
		ISBN:            b.ISBN,
		FormatType:      format,
		PublicationDate: b.PublicationDate.Time,
		AuthorID:        author.ID,
		PublisherID:     publisher.ID,
		GenreID:         genre.ID,
		SubgenreID:      subgenre.ID,
	}); err != nil {
		return false, err
	}
	return true, nil
}

func languageOf(v string) (model.Language, error) {
	if code := model.Language(strings.ToUpper(strings.TrimSpace(v))); code.Valid() {
		return code, nil
	}
	if code, ok := catalog.LanguageCode(v); ok {
		return code, nil
	}
	return "", fmt.Errorf("unknown language %q", v)
}

func formatOf(v string) (model.Format, error) {
	if code := model.Format(strings.ToUpper(strings.TrimSpace(v))); code.Valid() {
		return code, nil
	}
	if code, ok := catalog.FormatCode(v); ok {
		return code, nil
	}
	return "", fmt.Errorf("unknown format %q", v)
}
