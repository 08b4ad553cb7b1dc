package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ArcadeFlow/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// AllCategories 分类筛选中代表“不过滤”的取值
const AllCategories = "all"

// CatalogService 面向前台的聚合服务：列表+均分、分类统计、详情页、级联删除
type CatalogService struct {
	games    *GameService
	ratings  *RatingService
	comments *CommentService
	logger   *logrus.Logger
}

func NewCatalogService(games *GameService, ratings *RatingService, comments *CommentService, logger *logrus.Logger) *CatalogService {
	return &CatalogService{games: games, ratings: ratings, comments: comments, logger: logger}
}

// GameCard 列表页中的一张游戏卡片
type GameCard struct {
	*model.Game
	AverageRating float64 `json:"average_rating"`
}

// CategoryFacet 分类及其游戏数量
type CategoryFacet struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CatalogView 首页数据
type CatalogView struct {
	Games      []GameCard      `json:"games"`
	Categories []CategoryFacet `json:"categories"`
	Total      int             `json:"total"`
}

// GameDetail 详情页数据；UserRating 仅在传入 user_id 且该用户评过分时非空
type GameDetail struct {
	Game       *model.Game      `json:"game"`
	Rating     RatingSummary    `json:"rating"`
	Comments   []*model.Comment `json:"comments"`
	UserRating *model.Rating    `json:"user_rating,omitempty"`
}

// Catalog 按关键字与分类过滤，分类统计始终基于全部游戏
func (s *CatalogService) Catalog(ctx context.Context, search, category string) (*CatalogView, error) {
	var (
		games    []*model.Game
		averages map[uint64]float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		games, err = s.games.ListGames(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		averages, err = s.ratings.AverageRatingsForAllGames(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := FilterGames(games, search, category)
	cards := make([]GameCard, 0, len(filtered))
	for _, game := range filtered {
		cards = append(cards, GameCard{Game: game, AverageRating: averages[game.ID]})
	}
	return &CatalogView{
		Games:      cards,
		Categories: BuildCategoryFacets(games),
		Total:      len(cards),
	}, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]CategoryFacet, error) {
	games, err := s.games.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCategoryFacets(games), nil
}

// GameDetail 并发读取游戏、评分概览、评论和当前用户评分
func (s *CatalogService) GameDetail(ctx context.Context, id uint64, userID string) (*GameDetail, error) {
	detail := &GameDetail{}
	userID = strings.TrimSpace(userID)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		game, err := s.games.GetGame(gctx, id)
		detail.Game = game
		return err
	})
	g.Go(func() error {
		summary, err := s.ratings.Summary(gctx, id)
		detail.Rating = summary
		return err
	})
	g.Go(func() error {
		comments, err := s.comments.ListCommentsForGame(gctx, id)
		detail.Comments = comments
		return err
	})
	if userID != "" {
		g.Go(func() error {
			mine, err := s.ratings.GetUserRating(gctx, id, userID)
			if errors.Is(err, model.ErrNotFound) {
				return nil
			}
			detail.UserRating = mine
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if detail.Comments == nil {
		detail.Comments = []*model.Comment{}
	}
	return detail, nil
}

// RateGame 仅允许给存在的游戏评分
func (s *CatalogService) RateGame(ctx context.Context, gameID uint64, userID string, rating int, timestamp int64) (*RatingResult, error) {
	if _, err := s.games.GetGame(ctx, gameID); err != nil {
		return nil, err
	}
	return s.ratings.UpsertRating(ctx, gameID, userID, rating, timestamp)
}

// CommentOnGame 仅允许评论存在的游戏
func (s *CatalogService) CommentOnGame(ctx context.Context, gameID uint64, userID, username, text string, timestamp int64) (*model.Comment, error) {
	if _, err := s.games.GetGame(ctx, gameID); err != nil {
		return nil, err
	}
	return s.comments.AppendComment(ctx, gameID, userID, username, text, timestamp)
}

// DeleteGame 依次删除游戏、评论、评分。三步不在同一事务内，
// 中途失败留下的孤儿数据由 OrphanSweeper 清理。
func (s *CatalogService) DeleteGame(ctx context.Context, id uint64) error {
	log := s.logger.WithField("game_id", id)
	if err := s.games.DeleteGame(ctx, id); err != nil {
		return err
	}
	if err := s.comments.DeleteCommentsForGame(ctx, id); err != nil {
		log.WithError(err).Warn("游戏已删除，但评论删除失败")
		return fmt.Errorf("cascade delete comments: %w", err)
	}
	if err := s.ratings.DeleteRatingsForGame(ctx, id); err != nil {
		log.WithError(err).Warn("游戏已删除，但评分删除失败")
		return fmt.Errorf("cascade delete ratings: %w", err)
	}
	log.Info("game deleted with comments and ratings")
	return nil
}

// FilterGames 关键字对标题/描述/分类做大小写不敏感的子串匹配；
// category 为空或 "all" 时不过滤分类，否则精确匹配（区分大小写）
func FilterGames(games []*model.Game, search, category string) []*model.Game {
	search = strings.ToLower(strings.TrimSpace(search))
	category = strings.TrimSpace(category)
	out := make([]*model.Game, 0, len(games))
	for _, g := range games {
		if category != "" && !strings.EqualFold(category, AllCategories) && g.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(g.Title), search) &&
			!strings.Contains(strings.ToLower(g.Description), search) &&
			!strings.Contains(strings.ToLower(g.Category), search) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// BuildCategoryFacets 按首次出现的顺序返回去重后的分类
func BuildCategoryFacets(games []*model.Game) []CategoryFacet {
	index := make(map[string]int)
	facets := make([]CategoryFacet, 0)
	for _, g := range games {
		if g.Category == "" {
			continue
		}
		if i, ok := index[g.Category]; ok {
			facets[i].Count++
			continue
		}
		index[g.Category] = len(facets)
		facets = append(facets, CategoryFacet{Name: g.Category, Count: 1})
	}
	return facets
}
