package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"venuehub/config"
	bookingRepo "venuehub/database/repository/booking"
	paymentConfigRepo "venuehub/database/repository/paymentconfig"
	"venuehub/models"

	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// Delay before the best-effort re-apply of a webhook update.
const recheckDelay = 10 * time.Second

// TTL for processed-event dedup keys.
const eventDedupTTL = 24 * time.Hour

// DefaultReconcileService applies gateway webhook outcomes to bookings.
type DefaultReconcileService struct {
	Bookings  bookingRepo.BookingRepository
	Config    paymentConfigRepo.PaymentConfigRepository
	Cache     *redis.Client // optional; enables processed-event dedup
	Scheduler RecheckScheduler
	Logger    *zap.Logger
}

func (s *DefaultReconcileService) webhookSecret() string {
	if s.Config != nil {
		if cfg, err := s.Config.Get(); err == nil && cfg != nil && cfg.WebhookSecret != "" {
			return cfg.WebhookSecret
		}
	}
	return config.AppConfig.StripeWebhookSecret
}

// HandleEvent verifies the raw event against the shared webhook secret and
// applies the reported payment outcome. Verification failures return
// ErrBadSignature with no state mutation; unrecognized event types are
// accepted and ignored.
func (s *DefaultReconcileService) HandleEvent(payload []byte, sigHeader string) error {
	secret := s.webhookSecret()
	if secret == "" {
		return ErrBadSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return ErrBadSignature
	}

	if s.alreadyProcessed(event.ID) {
		s.Logger.Info("duplicate webhook event acknowledged", zap.String("eventID", event.ID))
		return nil
	}

	switch string(event.Type) {
	case "checkout.session.completed":
		err = s.handleCheckoutCompleted(event)
	case "payment_intent.payment_failed":
		err = s.handlePaymentFailed(event)
	default:
		// Forward compatibility over strictness.
		s.Logger.Debug("ignoring webhook event", zap.String("type", string(event.Type)))
		return nil
	}

	// The dedup mark must not outlive a failed apply: drop it so the
	// gateway's retry of this event is processed, not swallowed.
	if err != nil {
		s.forgetProcessed(event.ID)
	}
	return err
}

func (s *DefaultReconcileService) handleCheckoutCompleted(event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to parse checkout session event: %w", err)
	}

	bookingID := sess.Metadata["booking_id"]
	if bookingID == "" {
		s.Logger.Warn("checkout completed without booking metadata", zap.String("sessionID", sess.ID))
		return nil
	}

	outcome := bookingRepo.PaymentOutcome{
		PaymentStatus: models.PaymentPaid,
		Status:        models.BookingConfirmed,
		PaymentMethod: paymentMethodOf(&sess),
	}
	if sess.PaymentIntent != nil {
		outcome.PaymentRef = sess.PaymentIntent.ID
	}

	if err := s.Bookings.ApplyPaymentOutcome(bookingID, outcome); err != nil {
		return fmt.Errorf("failed to apply payment outcome for booking %s: %w", bookingID, err)
	}
	s.Logger.Info("booking confirmed by webhook",
		zap.String("bookingID", bookingID),
		zap.String("sessionID", sess.ID))

	// Best-effort delayed re-apply: re-read the record after a short delay
	// and re-apply if the write did not stick.
	if s.Scheduler != nil {
		p := models.ReconcilePayload{
			BookingID:     bookingID,
			PaymentStatus: outcome.PaymentStatus,
			Status:        outcome.Status,
			PaymentMethod: outcome.PaymentMethod,
			PaymentRef:    outcome.PaymentRef,
		}
		if err := s.Scheduler.ScheduleRecheck(p, recheckDelay); err != nil {
			s.Logger.Error("failed to schedule recheck", zap.String("bookingID", bookingID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultReconcileService) handlePaymentFailed(event stripe.Event) error {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return fmt.Errorf("failed to parse payment intent event: %w", err)
	}

	b, err := s.Bookings.GetByPaymentRef(intent.ID)
	if err != nil {
		return fmt.Errorf("failed to look up booking for payment %s: %w", intent.ID, err)
	}
	if b == nil {
		s.Logger.Warn("payment failed for unknown booking", zap.String("paymentRef", intent.ID))
		return nil
	}

	// Booking status stays pending so the client can retry payment.
	outcome := bookingRepo.PaymentOutcome{PaymentStatus: models.PaymentFailed}
	if err := s.Bookings.ApplyPaymentOutcome(b.ID, outcome); err != nil {
		return fmt.Errorf("failed to record failed payment for booking %s: %w", b.ID, err)
	}
	s.Logger.Info("payment failure recorded", zap.String("bookingID", b.ID))
	return nil
}

// Reapply re-reads a booking and re-applies the webhook outcome if the
// fields did not persist as expected. Runs from the background worker.
func (s *DefaultReconcileService) Reapply(p models.ReconcilePayload) error {
	b, err := s.Bookings.GetByID(p.BookingID)
	if err != nil {
		return fmt.Errorf("failed to re-read booking %s: %w", p.BookingID, err)
	}
	if b == nil {
		return nil
	}
	if b.PaymentStatus == p.PaymentStatus && (p.Status == "" || b.Status == p.Status) {
		return nil
	}

	s.Logger.Warn("webhook update did not persist, re-applying",
		zap.String("bookingID", p.BookingID))
	outcome := bookingRepo.PaymentOutcome{
		PaymentStatus: p.PaymentStatus,
		Status:        p.Status,
		PaymentMethod: p.PaymentMethod,
		PaymentRef:    p.PaymentRef,
	}
	return s.Bookings.ApplyPaymentOutcome(p.BookingID, outcome)
}

// Sweep repairs bookings whose payment settled but whose status never
// reached confirmed. Replaces the client-side poll/subscription pair with a
// single periodic backfill.
func (s *DefaultReconcileService) Sweep() error {
	stale, err := s.Bookings.FindPaidUnconfirmed()
	if err != nil {
		return fmt.Errorf("reconciliation sweep query failed: %w", err)
	}
	for _, b := range stale {
		if err := s.Bookings.UpdateStatus(b.ID, models.BookingConfirmed); err != nil {
			s.Logger.Error("sweep failed to confirm booking", zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		s.Logger.Info("sweep confirmed paid booking", zap.String("bookingID", b.ID))
	}
	return nil
}

const eventKeyPrefix = "stripe:event:"

// alreadyProcessed records the event id and reports whether it was seen
// before. Without a cache client every event looks new.
func (s *DefaultReconcileService) alreadyProcessed(eventID string) bool {
	if s.Cache == nil || eventID == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	fresh, err := s.Cache.SetNX(ctx, eventKeyPrefix+eventID, 1, eventDedupTTL).Result()
	if err != nil {
		// Dedup is best-effort; on cache failure process the event.
		return false
	}
	return !fresh
}

// forgetProcessed clears the dedup mark for an event whose apply failed.
func (s *DefaultReconcileService) forgetProcessed(eventID string) {
	if s.Cache == nil || eventID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Del(ctx, eventKeyPrefix+eventID).Err(); err != nil {
		s.Logger.Warn("failed to clear event dedup key", zap.String("eventID", eventID), zap.Error(err))
	}
}

func paymentMethodOf(sess *stripe.CheckoutSession) string {
	if len(sess.PaymentMethodTypes) > 0 {
		return sess.PaymentMethodTypes[0]
	}
	return "card"
}
