package app

import (
	"log/slog"
	"net/http"
	"os"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/linemk/shop-orders/internal/app/handlers"
	"github.com/linemk/shop-orders/internal/config"
	"github.com/linemk/shop-orders/internal/lib/api/response"
	"github.com/linemk/shop-orders/internal/lib/logger/handlers/urllog"
	"github.com/linemk/shop-orders/internal/lib/metrics"
	"github.com/linemk/shop-orders/internal/service"
)

// Services - зависимости http-слоя
type Services struct {
	Shops    service.ShopService
	Products service.ProductService
	Orders   service.OrderService
	DB       handlers.Pinger
}

// NewRouter собирает маршруты и middleware
func NewRouter(log *slog.Logger, cfg *config.Config, svc Services) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)
	if cfg.Metrics.Enabled {
		router.Use(metrics.InstrumentHandler)
		router.Handle(cfg.Metrics.Path, metrics.Handler())
	}

	router.Get("/healthz", handlers.HealthHandler(log, svc.DB))

	router.Route("/shops", func(r chi.Router) {
		r.Get("/", handlers.ListShopsHandler(log, svc.Shops))
		r.Post("/", handlers.CreateShopHandler(log, svc.Shops))
	})

	router.Route("/products", func(r chi.Router) {
		r.Get("/", handlers.ListProductsHandler(log, svc.Products))
		r.Post("/", handlers.CreateProductHandler(log, svc.Products))
	})

	router.Route("/orders", func(r chi.Router) {
		r.Get("/", handlers.ListOrdersHandler(log, svc.Orders))
		r.Post("/", handlers.CreateOrderHandler(log, svc.Orders))
		r.Get("/{id}", handlers.GetOrderHandler(log, svc.Orders))
		r.Put("/{id}", handlers.ReplaceOrderHandler(log, svc.Orders))
		r.Patch("/{id}/status", handlers.ChangeOrderStatusHandler(log, svc.Orders))
		r.Delete("/{id}", handlers.DeleteOrderHandler(log, svc.Orders))
	})

	notFound := func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, log, http.StatusNotFound, "not found")
	}
	router.NotFound(notFound)
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, log, http.StatusMethodNotAllowed, "method not allowed")
	})

	// фронтенд отдаётся с корня, api-маршруты выше имеют приоритет
	if dir := cfg.Static.Dir; dir != "" {
		if _, err := os.Stat(dir); err != nil {
			log.Warn("static dir is not available, skipping", slog.String("dir", dir), slog.Any("error", err))
		} else {
			router.Handle("/*", staticHandler(http.Dir(dir), notFound))
		}
	}

	return router
}

// staticHandler отдаёт файлы фронтенда; отсутствующий файл получает json-ответ 404
func staticHandler(root http.FileSystem, notFound http.HandlerFunc) http.Handler {
	files := http.FileServer(root)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, err := root.Open(path.Clean("/" + r.URL.Path))
		if err != nil {
			notFound(w, r)
			return
		}
		f.Close()
		files.ServeHTTP(w, r)
	})
}
