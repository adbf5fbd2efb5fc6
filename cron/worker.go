package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"venuehub/config"
	"venuehub/models"
	"venuehub/services/payment"
	"venuehub/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// AsynqScheduler implements payment.RecheckScheduler on top of the shared
// task queue.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler creates the enqueue-side client.
func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleRecheck enqueues the delayed re-apply for a booking.
func (s *AsynqScheduler) ScheduleRecheck(payload models.ReconcilePayload, delay time.Duration) error {
	task, err := tasks.NewReconcileTask(payload)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, asynq.ProcessIn(delay))
	return err
}

// InitReconcileWorker runs the async worker in background and starts the
// periodic paid-but-unconfirmed sweep.
func InitReconcileWorker(reconcile payment.ReconcileService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReconcile, handleReconcileTask(reconcile))
	mux.HandleFunc(tasks.TypeBookingSweep, handleSweepTask(reconcile))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go runSweepTicker()
}

func handleReconcileTask(reconcile payment.ReconcileService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReconcilePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReconcileHandler] invalid payload: %v", err)
			return err
		}
		return reconcile.Reapply(p)
	}
}

func handleSweepTask(reconcile payment.ReconcileService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		return reconcile.Sweep()
	}
}

// runSweepTicker enqueues a sweep task on a fixed interval. A queued task
// rather than an inline call keeps sweeps single-flight across replicas.
func runSweepTicker() {
	interval := time.Duration(config.AppConfig.ReconcileSweepMinutes) * time.Minute
	if interval <= 0 {
		return
	}

	client := asynq.NewClient(redisOpts())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if _, err := client.Enqueue(tasks.NewSweepTask()); err != nil {
			log.Printf("[ReconcileWorker] failed to enqueue sweep: %v", err)
		}
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReconcileWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
