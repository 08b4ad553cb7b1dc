package service

import (
	"ArcadeFlow/internal/repository"

	"github.com/sirupsen/logrus"
)

// Services 组装好的全部业务服务
type Services struct {
	Games    *GameService
	Ratings  *RatingService
	Comments *CommentService
	Contents *ContentService
	Ads      *AdService
	Settings *SettingService
	Catalog  *CatalogService
	Sweeper  *OrphanSweeper
}

func NewServices(repos *repository.Repositories, logger *logrus.Logger) *Services {
	games := NewGameService(repos.Games, logger)
	ratings := NewRatingService(repos.Ratings, logger)
	comments := NewCommentService(repos.Comments, logger)
	return &Services{
		Games:    games,
		Ratings:  ratings,
		Comments: comments,
		Contents: NewContentService(repos.Contents, logger),
		Ads:      NewAdService(repos.Ads, logger),
		Settings: NewSettingService(repos.Settings, logger),
		Catalog:  NewCatalogService(games, ratings, comments, logger),
		Sweeper:  NewOrphanSweeper(repos, logger),
	}
}
