package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/allocator-app/allocator-backend/pkg/communication"
	"github.com/allocator-app/allocator-backend/pkg/environment"
	"github.com/allocator-app/allocator-backend/pkg/locking"
	"github.com/allocator-app/allocator-backend/pkg/logger"
	"github.com/allocator-app/allocator-backend/pkg/scheduling"
	"github.com/allocator-app/allocator-backend/pkg/users"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	var logging logger.Interface = logger.Logger{}
	fmt.Println("Server is starting up...")

	environment.Initialize()

	client, err := mongo.NewClient(options.Client().ApplyURI(environment.Global.DatabaseUrl))
	if err != nil {
		log.Fatal(err)
	}

	var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		log.Panic(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Panic(err)
	}

	defer func() {
		err := client.Disconnect(ctx)
		if err != nil {
			logging.Fatal(err)
		}
	}()

	fmt.Println("Database connected")

	db := client.Database(environment.Global.Database)

	userCollection := db.Collection("Users")
	workItemCollection := db.Collection("WorkItems")
	commitmentCollection := db.Collection("Commitments")
	scheduleCollection := db.Collection("Schedules")
	blockCollection := db.Collection("ScheduledBlocks")

	var locker locking.LockerInterface
	var planCache scheduling.PlanCacheInterface

	if environment.Global.Redis != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     environment.Global.Redis,
			Password: environment.Global.RedisPassword,
		})

		locker = locking.NewLockerRedis(redisClient)
		planCache = scheduling.NewPlanCacheRedis(redisClient)
	} else {
		locker = locking.NewLockerMemory()

		memoryCache, err := scheduling.NewPlanCacheMemory(100)
		if err != nil {
			logging.Fatal(err)
		}
		planCache = memoryCache
	}

	responseManager := communication.ResponseManager{Logger: logging}

	var userRepository users.UserRepositoryInterface = users.UserRepository{DB: userCollection, Logger: logging}
	userHandler := users.Handler{UserRepository: userRepository, Logger: logging, ResponseManager: &responseManager}

	workItemRepository := &scheduling.MongoDBWorkItemRepository{DB: workItemCollection, Logger: logging}
	commitmentRepository := &scheduling.MongoDBCommitmentRepository{DB: commitmentCollection, Logger: logging}
	scheduleRepository := &scheduling.MongoDBScheduleRepository{DB: scheduleCollection, BlocksDB: blockCollection, Logger: logging}

	planningService := scheduling.NewPlanningService(
		userRepository, workItemRepository, commitmentRepository, scheduleRepository,
		planCache, locker, logging)

	workItemHandler := scheduling.WorkItemHandler{WorkItemRepository: workItemRepository, Logger: logging, ResponseManager: &responseManager}
	commitmentHandler := scheduling.CommitmentHandler{CommitmentRepository: commitmentRepository, Logger: logging, ResponseManager: &responseManager}
	scheduleHandler := scheduling.ScheduleHandler{PlanningService: planningService, Logger: logging, ResponseManager: &responseManager}
	analyticsHandler := scheduling.AnalyticsHandler{WorkItemRepository: workItemRepository, Logger: logging, ResponseManager: &responseManager}

	r := mux.NewRouter()
	r.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)

		_, err := fmt.Fprint(writer, "Welcome to the API!")
		if err != nil {
			log.Printf("Error: %v\n", err)
		}
	})

	r.HandleFunc("/v1/user", userHandler.UserAdd).Methods(http.MethodPost)
	r.HandleFunc("/v1/user/{userID}", userHandler.UserGet).Methods(http.MethodGet)
	r.HandleFunc("/v1/user/{userID}/preferences", userHandler.PreferencesUpdate).Methods(http.MethodPut)

	r.HandleFunc("/v1/workitems", workItemHandler.WorkItemAdd).Methods(http.MethodPost)
	r.HandleFunc("/v1/workitems", workItemHandler.GetAllWorkItems).Methods(http.MethodGet)
	r.HandleFunc("/v1/workitems/{workItemID}", workItemHandler.WorkItemUpdate).Methods(http.MethodPut)
	r.HandleFunc("/v1/workitems/{workItemID}", workItemHandler.WorkItemDelete).Methods(http.MethodDelete)

	r.HandleFunc("/v1/commitments", commitmentHandler.CommitmentAdd).Methods(http.MethodPost)
	r.HandleFunc("/v1/commitments", commitmentHandler.GetAllCommitments).Methods(http.MethodGet)
	r.HandleFunc("/v1/commitments/{commitmentID}", commitmentHandler.CommitmentDelete).Methods(http.MethodDelete)

	r.HandleFunc("/v1/schedules/generate", scheduleHandler.ScheduleGenerate).Methods(http.MethodPost)
	r.HandleFunc("/v1/schedules/latest", scheduleHandler.ScheduleLatest).Methods(http.MethodGet)

	r.HandleFunc("/v1/analytics", analyticsHandler.GetAnalytics).Methods(http.MethodGet)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Content-Type", "application/json")
			if environment.Global.Cors != "" {
				w.Header().Add("Access-Control-Allow-Origin", environment.Global.Cors)
			}
			next.ServeHTTP(w, r)
		})
	})

	http.Handle("/", r)
	log.Panic(http.ListenAndServe(":"+environment.Global.Port, r))
}
