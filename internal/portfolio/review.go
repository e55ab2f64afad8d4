package portfolio

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/photofolio/internal/store"
	"github.com/nao1215/photofolio/pkg/middleware"
)

// replaceReviewRequest はレビュー置換リクエストのJSON構造。
// 置換対象はこの7フィールドに固定され、識別子は変更されない。
type replaceReviewRequest struct {
	// Name は投稿者の表示名。
	Name string `json:"name"`
	// Email は投稿者のメールアドレス（所有者キー）。
	Email string `json:"email"`
	// Service は対象サービスの表示名。
	Service string `json:"service"`
	// Feedback はレビュー本文。
	Feedback string `json:"feedback"`
	// PhotoURL は投稿者の写真URL。
	PhotoURL string `json:"photoURL"`
	// Time は投稿日時の文字列表現。
	Time string `json:"time"`
	// ServiceID は対象サービスの識別子。
	ServiceID string `json:"serviceId"`
}

// handleCreateReview はレビュー投稿を処理するハンドラを返す。
// 投稿に認可は不要で、受け取ったドキュメントをそのまま保存する。
func (s *Server) handleCreateReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		var review store.Document
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		id, err := s.reviews.Insert(c.Request.Context(), review)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "レビューの登録に失敗しました"})
			log.Printf("レビュー登録エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"inserted_id": id})
	}
}

// handleListReviewsByEmail はログインユーザー自身のレビュー一覧を返すハンドラを返す。
// トークンのemailクレームとクエリパラメータのemailが一致しない場合は、
// ストアへアクセスする前に403で拒否する。
func (s *Server) handleListReviewsByEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if middleware.GetEmail(c) != email {
			c.JSON(http.StatusForbidden, gin.H{"error": "アクセスが許可されていません"})
			return
		}

		reviews, err := s.reviews.List(c.Request.Context(), store.Document{"email": email}, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "レビュー一覧の取得に失敗しました"})
			log.Printf("レビュー一覧取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}

// handleListReviewsByService はサービス単位のレビュー一覧を返すハンドラを返す。
// serviceIdフィールドがパスパラメータと一致するレビューを挿入の新しい順で返す。
func (s *Server) handleListReviewsByService() gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := s.reviews.List(c.Request.Context(), store.Document{"serviceId": c.Param("id")}, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "レビュー一覧の取得に失敗しました"})
			log.Printf("サービス別レビュー取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}

// handleGetReview は編集用のレビュー取得を処理するハンドラを返す。
// 該当IDのドキュメントが存在しない場合は200でnullを返す。
func (s *Server) handleGetReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		review, err := s.reviews.FindByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "レビューの取得に失敗しました"})
			log.Printf("レビュー取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, review)
	}
}

// handleReplaceReview はレビューの置換を処理するハンドラを返す。
// 固定7フィールドを$set相当で上書きし、該当IDが存在しない場合は
// upsertにより新規作成する。識別子は変更されない。
func (s *Server) handleReplaceReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req replaceReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		result, err := s.reviews.SetFields(c.Request.Context(), c.Param("id"), store.Document{
			"name":      req.Name,
			"email":     req.Email,
			"service":   req.Service,
			"feedback":  req.Feedback,
			"photoURL":  req.PhotoURL,
			"time":      req.Time,
			"serviceId": req.ServiceID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "レビューの更新に失敗しました"})
			log.Printf("レビュー更新エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// handleDeleteReview はレビュー削除を処理するハンドラを返す。
func (s *Server) handleDeleteReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := s.reviews.DeleteByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "レビューの削除に失敗しました"})
			log.Printf("レビュー削除エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"deleted_count": deleted})
	}
}
