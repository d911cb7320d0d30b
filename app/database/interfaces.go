package database

// UpsertResult classifies what an upsert did to the store.
type UpsertResult string

const (
	UpsertNew       UpsertResult = "new"
	UpsertUpdated   UpsertResult = "updated"
	UpsertUnchanged UpsertResult = "unchanged"
)

type ArticleRepository interface {
	Exists(url string) (bool, error)
	GetByURL(url string) (*Article, error)
	Upsert(article Article) (UpsertResult, error)
	ListRecent(days, limit int) ([]Article, error)
	GetArticleCount() (int, error)
}

type RunRepository interface {
	RecordRun(run Run) error
	ListRuns(limit int) ([]Run, error)
}
