package database

import (
	"database/sql"
	"fmt"
	"time"
)

var _ ArticleRepository = (*ArticleRepositoryImpl)(nil)

// ArticleRepositoryImpl handles database operations for ingested articles.
type ArticleRepositoryImpl struct {
	db *DB
}

func NewArticleRepository(db *DB) *ArticleRepositoryImpl {
	return &ArticleRepositoryImpl{db: db}
}

// Exists is the pre-fetch short-circuit: a URL already in the store is not
// fetched again.
func (r *ArticleRepositoryImpl) Exists(url string) (bool, error) {
	var one int
	err := r.db.QueryRow("SELECT 1 FROM articles WHERE url = ? LIMIT 1", url).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}
	return true, nil
}

func (r *ArticleRepositoryImpl) GetByURL(url string) (*Article, error) {
	var a Article
	err := r.db.QueryRow(`
		SELECT url, final_url, title, source, published, domain, fetched_at,
		       extracted_chars, content_hash, text
		FROM articles
		WHERE url = ?
	`, url).Scan(
		&a.URL, &a.FinalURL, &a.Title, &a.Source, &a.Published, &a.Domain,
		&a.FetchedAt, &a.ExtractedChars, &a.ContentHash, &a.Text,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article by URL: %w", err)
	}

	return &a, nil
}

// Upsert inserts or updates an article keyed by URL.
//
// Change detection compares only (content_hash, extracted_chars): an
// article whose content is unchanged is not rewritten even if its title or
// published date drifted upstream.
func (r *ArticleRepositoryImpl) Upsert(a Article) (UpsertResult, error) {
	existing, err := r.GetByURL(a.URL)
	if err != nil {
		return "", fmt.Errorf("failed to check existing article: %w", err)
	}

	if existing == nil {
		_, err := r.db.Exec(`
			INSERT INTO articles (url, final_url, title, source, published, domain, fetched_at,
			                      extracted_chars, content_hash, text)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, a.URL, a.FinalURL, a.Title, a.Source, a.Published, a.Domain, a.FetchedAt,
			a.ExtractedChars, a.ContentHash, a.Text)
		if err != nil {
			return "", fmt.Errorf("failed to insert article: %w", err)
		}
		return UpsertNew, nil
	}

	if existing.ContentHash == a.ContentHash && existing.ExtractedChars == a.ExtractedChars {
		return UpsertUnchanged, nil
	}

	_, err = r.db.Exec(`
		UPDATE articles
		SET final_url = ?, title = ?, source = ?, published = ?, domain = ?, fetched_at = ?,
		    extracted_chars = ?, content_hash = ?, text = ?
		WHERE url = ?
	`, a.FinalURL, a.Title, a.Source, a.Published, a.Domain, a.FetchedAt,
		a.ExtractedChars, a.ContentHash, a.Text, a.URL)
	if err != nil {
		return "", fmt.Errorf("failed to update article: %w", err)
	}

	return UpsertUpdated, nil
}

// ListRecent returns articles fetched inside the day window, newest first,
// capped at limit.
func (r *ArticleRepositoryImpl) ListRecent(days, limit int) ([]Article, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Truncate(time.Second).Format(time.RFC3339)

	rows, err := r.db.Query(`
		SELECT url, final_url, title, source, published, domain, fetched_at,
		       extracted_chars, content_hash, text
		FROM articles
		WHERE fetched_at >= ?
		ORDER BY fetched_at DESC
		LIMIT ?
	`, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		err := rows.Scan(
			&a.URL, &a.FinalURL, &a.Title, &a.Source, &a.Published, &a.Domain,
			&a.FetchedAt, &a.ExtractedChars, &a.ContentHash, &a.Text,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return articles, nil
}

func (r *ArticleRepositoryImpl) GetArticleCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get article count: %w", err)
	}
	return count, nil
}
