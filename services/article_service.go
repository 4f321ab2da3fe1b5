package services

import (
	"github.com/maharit108/Coffee-Talk-API/models"
	"github.com/maharit108/Coffee-Talk-API/repositories"
)

type ArticleService interface {
	ListAll() ([]models.Article, error)
	ListByAuthor(identity models.Identity, authorID uint) ([]models.Article, error)
	Create(identity models.Identity, fields models.ArticleFields) (*models.Article, error)
	Edit(identity models.Identity, id uint, fields models.ArticleUpdateFields) error
	Vote(identity models.Identity, id uint, ballot models.VoteFields) error
	Delete(identity models.Identity, id uint) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

// RequireOwnership is the authorization primitive shared by every mutating
// operation: nil iff the article's author is the acting identity. It must
// run after a successful fetch; a missing article fails earlier with
// ErrorNotFound so an ownership decision never leaks for absent records.
func RequireOwnership(identity models.Identity, article *models.Article) error {
	if article.AuthorID != identity.ID {
		return models.ErrorUnauthorized{Message: "Not Allowed"}
	}

	return nil
}

func (s *articleService) ListAll() ([]models.Article, error) {
	return s.articleRepo.GetAll()
}

// ListByAuthor is fail-closed and all-or-nothing: an empty result set, or
// any single article in the set not owned by the caller, aborts the whole
// request. In practice it only ever serves the caller's own articles.
func (s *articleService) ListByAuthor(identity models.Identity, authorID uint) ([]models.Article, error) {
	articles, err := s.articleRepo.GetByAuthor(authorID)
	if err != nil {
		return nil, err
	}

	if len(articles) == 0 {
		return nil, models.ErrorUnauthorized{Message: "Not Allowed"}
	}

	for i := range articles {
		if err := RequireOwnership(identity, &articles[i]); err != nil {
			return nil, err
		}
	}

	return articles, nil
}

func (s *articleService) Create(identity models.Identity, fields models.ArticleFields) (*models.Article, error) {
	article := &models.Article{
		AuthorID:   identity.ID,
		Title:      fields.Title,
		Body:       fields.Body,
		Upvote:     0,
		Downvote:   0,
		VoterNames: []string{},
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	// Reload so the author profile is resolved on the response.
	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) Edit(identity models.Identity, id uint, fields models.ArticleUpdateFields) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := RequireOwnership(identity, article); err != nil {
		return err
	}

	updates := removeBlankFields(fields)
	if len(updates) == 0 {
		return nil
	}

	return s.articleRepo.UpdateFields(article.ID, updates)
}

// removeBlankFields drops empty values from the update payload so a blank
// field never erases a stored one.
func removeBlankFields(fields models.ArticleUpdateFields) map[string]interface{} {
	updates := make(map[string]interface{})
	if fields.Title != "" {
		updates["title"] = fields.Title
	}
	if fields.Body != "" {
		updates["body"] = fields.Body
	}

	return updates
}

// Vote sets the counters to the submitted totals and appends the voter name
// to the article's log. Any authenticated user may vote, the owner included;
// there is no ownership check. The overwrite is deliberate: concurrent votes
// on the same article are last-write-wins.
func (s *articleService) Vote(identity models.Identity, id uint, ballot models.VoteFields) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return err
	}

	article.Upvote = ballot.Upvote
	article.Downvote = ballot.Downvote

	voter := ballot.VoterName
	if voter == "" {
		voter = identity.Email
	}
	article.VoterNames = append(article.VoterNames, voter)

	return s.articleRepo.Save(article)
}

func (s *articleService) Delete(identity models.Identity, id uint) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := RequireOwnership(identity, article); err != nil {
		return err
	}

	return s.articleRepo.Delete(article.ID)
}
