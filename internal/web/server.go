// Package web отдает страницу интервью через gin.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DriesFaems/interview-generator-students/internal/config"
	"github.com/DriesFaems/interview-generator-students/internal/interviewer"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter регистрирует маршруты страницы и служебные эндпоинты
func NewRouter(svc *interviewer.Service, llm config.LLMConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")))

	h := &Handler{Service: svc, ModelInfo: llm.GetModelInfo()}
	r.GET("/", h.Index)
	r.POST("/interview", h.StartInterview)
	r.GET("/healthz", h.Health)
	r.GET("/metrics", h.Metrics)

	return r
}

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func NewServer(svc *interviewer.Service, cfg config.ServerConfig, llm config.LLMConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      NewRouter(svc, llm),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run слушает порт до отмены ctx, затем завершает активные запросы
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP сервер слушает %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	log.Println("Останавливаю HTTP сервер...")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}
	return nil
}
