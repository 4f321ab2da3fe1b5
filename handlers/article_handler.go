package handlers

import (
	"net/http"
	"strconv"

	"github.com/maharit108/Coffee-Talk-API/helper"
	"github.com/maharit108/Coffee-Talk-API/middleware"
	"github.com/maharit108/Coffee-Talk-API/models"
	"github.com/maharit108/Coffee-Talk-API/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		Helper:         helper.NewHTTPHelper(),
	}
}

// ListArticles is the one public read: every article, with author profiles
// resolved.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.articleService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": articles})
}

// ListArticlesByAuthor returns the articles of the author in the path. The
// service fails closed unless every returned article belongs to the caller.
func (h *ArticleHandler) ListArticlesByAuthor(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Not Allowed")
		return
	}

	authorID, err := strconv.ParseUint(c.Param("authorId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author ID"})
		return
	}

	articles, err := h.articleService.ListByAuthor(identity, uint(authorID))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": articles})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Not Allowed")
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Create(identity, req.Article)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"content": article})
}

func (h *ArticleHandler) EditArticle(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Not Allowed")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.articleService.Edit(identity, uint(id), req.Article); err != nil {
		h.renderError(c, err)
		return
	}

	c.String(http.StatusCreated, "Edit Complete")
}

func (h *ArticleHandler) VoteArticle(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Not Allowed")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.articleService.Vote(identity, uint(id), req.Article); err != nil {
		h.renderError(c, err)
		return
	}

	c.String(http.StatusCreated, "Vote Listed")
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Not Allowed")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	if err := h.articleService.Delete(identity, uint(id)); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) renderError(c *gin.Context, err error) {
	status := h.Helper.GetStatusCode(err)
	switch status {
	case http.StatusUnauthorized:
		c.String(status, "Not Allowed")
	case http.StatusNotFound:
		c.String(status, "Not Found")
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}
