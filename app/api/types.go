package api

import (
	"github.com/dgavara/fightwire/app/database"
	"github.com/dgavara/fightwire/app/scheduler"
)

type Handler struct {
	articleRepo database.ArticleRepository
	runRepo     database.RunRepository
	scheduler   scheduler.SchedulerInterface
	siteDir     string
	version     string
}
