package repositories

import (
	"errors"

	"github.com/maharit108/Coffee-Talk-API/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetAll() ([]models.Article, error)
	GetByAuthor(authorID uint) ([]models.Article, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Save(article *models.Article) error
	Delete(id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

func (r *articleRepository) GetAll() ([]models.Article, error) {
	articles := []models.Article{}
	err := r.db.Preload("Author").Order("id").Find(&articles).Error

	return articles, err
}

func (r *articleRepository) GetByAuthor(authorID uint) ([]models.Article, error) {
	articles := []models.Article{}
	err := r.db.Preload("Author").Where("author_id = ?", authorID).Order("id").Find(&articles).Error

	return articles, err
}

// UpdateFields applies a sparse column set. The caller decides which fields
// survive the blank filter; this layer writes exactly what it is given.
func (r *articleRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).Updates(fields).Error
}

func (r *articleRepository) Save(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}
