package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "petmate/docs"
	"petmate/internal/adapters/auth/token"
	"petmate/internal/adapters/photos/local"
	jf "petmate/internal/adapters/storage/jsonfile"
	mem "petmate/internal/adapters/storage/memory"
	pg "petmate/internal/adapters/storage/postgres"
	"petmate/internal/domain/carelog"
	"petmate/internal/domain/dashboard"
	"petmate/internal/domain/hospital"
	"petmate/internal/domain/medications"
	"petmate/internal/domain/pets"
	"petmate/internal/domain/unsafeitems"
	"petmate/internal/domain/users"
	"petmate/internal/middleware"
	"petmate/internal/platform/clock"
	"petmate/internal/platform/logger"
	"petmate/internal/ports/auth"
	"petmate/internal/ports/photos"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.Verifier // puede ser nil (modo dev)
	Issuer       auth.Issuer   // nil => manager efímero

	// Opcional: si viene DB (o un DSN) usa Postgres; si no, DataDir
	// => archivo JSON; si no, in-memory.
	DB      *sql.DB
	DSN     string
	DataDir string

	PhotoDir string

	Clock *clock.Clock
	Log   logger.Logger
}

func NewRouter(opts Options) http.Handler {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New(clock.DefaultTimezone)
	}
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)

	r.Use(middleware.RequestLog(log))
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		userRepo   users.Repository
		petRepo    pets.Repository
		logRepo    carelog.Repository
		medRepo    medications.Repository
		hospRepo   hospital.Repository
		unsafeRepo unsafeitems.Repository
	)

	// Si no te pasan DB explícita, intenta por DSN o env (dev/handoff)
	db := opts.DB
	if db == nil {
		dsn := opts.DSN
		if dsn == "" {
			dsn = os.Getenv("DB_DSN")
		}
		if dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("postgres unavailable, falling back", map[string]any{"error": err.Error()})
			} else {
				db = opened
			}
		}
	}

	if db != nil {
		if err := pg.Migrate(db); err != nil {
			log.Error("migrations failed, falling back to memory store", map[string]any{"error": err.Error()})
			db = nil
		}
	}

	switch {
	case db != nil:
		userRepo = pg.NewUsersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		logRepo = pg.NewCarelogRepo(db)
		medRepo = pg.NewMedicationsRepo(db)
		hospRepo = pg.NewHospitalRepo(db)
		unsafeRepo = pg.NewUnsafeItemsRepo(db)
		log.Info("storage: postgres", nil)

	case dataDir(opts) != "":
		store, err := jf.Open(dataDir(opts))
		if err != nil {
			log.Error("json store unavailable, falling back to memory", map[string]any{"error": err.Error()})
			break
		}
		userRepo = jf.NewUserRepo(store)
		petRepo = jf.NewPetRepo(store)
		logRepo = jf.NewCarelogRepo(store)
		medRepo = jf.NewMedicationRepo(store)
		hospRepo = jf.NewHospitalRepo(store)
		unsafeRepo = jf.NewUnsafeItemRepo(store)
		log.Info("storage: json file", map[string]any{"path": store.Path()})
	}

	if userRepo == nil {
		userRepo = mem.NewUserRepo()
		petRepo = mem.NewPetRepo()
		logRepo = mem.NewCarelogRepo()
		medRepo = mem.NewMedicationRepo()
		hospRepo = mem.NewHospitalRepo()
		unsafeRepo = mem.NewUnsafeItemRepo()
		log.Info("storage: in-memory", nil)
	}

	var photoStore photos.Store
	if dir := photoDir(opts); dir != "" {
		ps, err := local.New(dir)
		if err != nil {
			log.Warn("photo store unavailable, photo endpoints disabled", map[string]any{"error": err.Error()})
		} else {
			photoStore = ps
		}
	}

	issuer := opts.Issuer
	if issuer == nil {
		issuer = token.NewManager("", 0)
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	logsSvc := carelog.NewService(logRepo, petsSvc, clk)
	medsSvc := medications.NewService(medRepo, clk)
	hospSvc := hospital.NewService(hospRepo, clk)
	unsafeSvc := unsafeitems.NewService(unsafeRepo)
	usersSvc := users.NewService(userRepo, issuer)
	dashSvc := dashboard.NewService(petsSvc, logsSvc, medsSvc, hospSvc, clk)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	pets.RegisterRoutes(r, petsSvc, photoStore)
	carelog.RegisterRoutes(r, logsSvc, petsSvc)
	medications.RegisterRoutes(r, medsSvc, petsSvc)
	hospital.RegisterRoutes(r, hospSvc, petsSvc)
	unsafeitems.RegisterRoutes(r, unsafeSvc)
	dashboard.RegisterRoutes(r, dashSvc, petsSvc)

	return r
}

func dataDir(opts Options) string {
	if opts.DataDir != "" {
		return opts.DataDir
	}
	return os.Getenv("DATA_DIR")
}

func photoDir(opts Options) string {
	if opts.PhotoDir != "" {
		return opts.PhotoDir
	}
	return os.Getenv("PHOTO_DIR")
}
