// Package http configures the inbound HTTP server.
package http

import (
	"net/http"
	"time"
)

// NewServer returns an http.Server for handler with explicit timeouts.
//
// 設定:
//   - ReadHeaderTimeout: ヘッダー受信の上限（Slowloris対策）
//   - ReadTimeout / WriteTimeout: リクエスト全体の読み書きの上限
//   - IdleTimeout: keep-alive接続の維持期間
//
// 注意:
//   - http.ListenAndServe / gin.Engine.Run にはタイムアウトがないため使用しないこと
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
