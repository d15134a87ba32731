package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elprincipe/noticias/internal/server"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func main() {
	app := server.Setup()

	router := mux.NewRouter().StrictSlash(true)

	router.Use(app.SessionMiddleware)

	fs := http.FileServer(http.Dir("./static"))
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))

	images := http.FileServer(http.Dir(app.Config.ImageDir))
	router.PathPrefix("/images/").Handler(http.StripPrefix("/images/", images))

	router.HandleFunc("/", app.HomeHandler).Methods("GET")
	router.HandleFunc("/category/{category}", app.CategoryHandler).Methods("GET")
	router.HandleFunc("/news/{id}", app.ArticleHandler).Methods("GET")

	router.HandleFunc("/login", app.LoginHandler).Methods("GET")
	router.HandleFunc("/login", app.LoginPostHandler).Methods("POST")
	router.HandleFunc("/logout", app.LogoutPostHandler).Methods("POST")

	router.HandleFunc("/admin", app.AdminHandler).Methods("GET")
	router.HandleFunc("/admin/news", app.AdminCreateHandler).Methods("POST")
	router.HandleFunc("/admin/news/{id}", app.AdminUpdateHandler).Methods("POST")
	router.HandleFunc("/admin/news/{id}/delete", app.AdminDeleteHandler).Methods("POST")

	router.HandleFunc("/api/news", app.APIListHandler).Methods("GET")
	router.HandleFunc("/api/news", app.APICreateHandler).Methods("POST")
	router.HandleFunc("/api/news/{id}", app.APIDeleteHandler).Methods("DELETE")
	router.HandleFunc("/api/weather", app.WeatherHandler).Methods("GET")

	handler := handlers.RecoveryHandler()(server.SlogLoggingMiddleware(router))

	srv := &http.Server{
		Addr:    app.Config.Host,
		Handler: handler,
	}

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("server starting", "url", "http://"+app.Config.Host)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}
