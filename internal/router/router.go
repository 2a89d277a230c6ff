package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "petstore-server/docs"
	mem "petstore-server/internal/adapters/storage/memory"
	"petstore-server/internal/domain/orders"
	"petstore-server/internal/domain/pets"
	"petstore-server/internal/domain/users"
	"petstore-server/internal/middleware"
	"petstore-server/internal/platform/logger"
)

type Options struct {
	// Log puede venir nil; en ese caso se arma desde env.
	Log logger.Logger
}

// NewRouter construye el router completo con los cinco repositorios
// in-memory y los servicios de cada módulo. Todo el estado vive acá
// adentro: dos routers distintos no comparten nada.
func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Un repositorio por tipo de entidad, cada uno con su propio arbitraje
	// de acceso. Tags y categorías solo los escribe la cascada de pets.
	petRepo := mem.NewPetRepo()
	tagRepo := mem.NewTagRepo()
	categoryRepo := mem.NewCategoryRepo()
	orderRepo := mem.NewOrderRepo()
	userRepo := mem.NewUserRepo()

	petsSvc := pets.NewService(petRepo, tagRepo, categoryRepo)
	ordersSvc := orders.NewService(orderRepo, petRepo)
	usersSvc := users.NewService(userRepo)

	pets.RegisterRoutes(r, petsSvc)
	orders.RegisterRoutes(r, ordersSvc)
	users.RegisterRoutes(r, usersSvc)

	return r
}
