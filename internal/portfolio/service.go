package portfolio

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/photofolio/internal/store"
)

// handleListRecentServices はトップページ向けの直近サービス一覧を返すハンドラを返す。
// 挿入の新しい順に最大3件を返す。
func (s *Server) handleListRecentServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		works, err := s.services.List(c.Request.Context(), nil, recentWorksLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "サービス一覧の取得に失敗しました"})
			log.Printf("直近サービス取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, works)
	}
}

// handleListServices は全サービス一覧を挿入の新しい順で返すハンドラを返す。
func (s *Server) handleListServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		services, err := s.services.List(c.Request.Context(), nil, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "サービス一覧の取得に失敗しました"})
			log.Printf("サービス一覧取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, services)
	}
}

// handleGetService はサービス詳細取得を処理するハンドラを返す。
// 該当IDのドキュメントが存在しない場合は200でnullを返す。
// クライアントは空レスポンスを許容する前提の仕様である。
func (s *Server) handleGetService() gin.HandlerFunc {
	return func(c *gin.Context) {
		service, err := s.services.FindByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "サービスの取得に失敗しました"})
			log.Printf("サービス取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, service)
	}
}

// handleCreateService はサービス登録を処理するハンドラを返す。
// スキーマ検証は行わず、受け取ったドキュメントをそのまま保存する。
func (s *Server) handleCreateService() gin.HandlerFunc {
	return func(c *gin.Context) {
		var service store.Document
		if err := c.ShouldBindJSON(&service); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		id, err := s.services.Insert(c.Request.Context(), service)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "サービスの登録に失敗しました"})
			log.Printf("サービス登録エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"inserted_id": id})
	}
}
