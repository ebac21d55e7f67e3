package sms

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"foodbank/internal/entities"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxAttempts   = 3
	DefaultDispatchBatch = 50
	DefaultConcurrency   = 5

	// ResendCooldown защищает от повторных нажатий "отправить еще раз".
	ResendCooldown = 5 * time.Minute

	retryBaseDelay = 5 * time.Minute
	retryMaxDelay  = time.Hour

	balanceWindow = 24 * time.Hour

	// ClaimLease - сколько запись может оставаться в sending, прежде чем диспетчер вернет ее в очередь.
	ClaimLease = 10 * time.Minute

	outcomeWriteTimeout = 5 * time.Second
)

type Config struct {
	MaxAttempts   int
	DispatchBatch int
	Concurrency   int
}

type Sms struct {
	repository Repository
	parcels    ParcelRepository
	households HouseholdRepository
	locations  LocationRepository
	gateway    Gateway
	texts      TextRenderer
	scheduler  ScheduleCalculator
	clock      Clock
	txManager  TxManager
	config     Config
}

func New(
	repository Repository,
	parcels ParcelRepository,
	households HouseholdRepository,
	locations LocationRepository,
	gateway Gateway,
	texts TextRenderer,
	scheduler ScheduleCalculator,
	clock Clock,
	txManager TxManager,
	config Config,
) *Sms {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultMaxAttempts
	}
	if config.DispatchBatch <= 0 {
		config.DispatchBatch = DefaultDispatchBatch
	}
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConcurrency
	}

	return &Sms{
		repository: repository,
		parcels:    parcels,
		households: households,
		locations:  locations,
		gateway:    gateway,
		texts:      texts,
		scheduler:  scheduler,
		clock:      clock,
		txManager:  txManager,
		config:     config,
	}
}

func IdempotencyKey(intent entities.SmsIntent, parcelID string) string {
	return intent.String() + "|" + parcelID
}

func ManualIdempotencyKey(intent entities.SmsIntent, parcelID string) string {
	return IdempotencyKey(intent, parcelID) + "|manual|" + uuid.NewString()
}

func updatedIdempotencyKey(parcelID string, pickup time.Time) string {
	return IdempotencyKey(entities.SmsPickupUpdated, parcelID) + "|" + strconv.FormatInt(pickup.Unix(), 10)
}

func (s *Sms) QueueSms(ctx context.Context, request entities.SmsQueueRequest) (*entities.OutgoingSms, error) {
	if request.HouseholdID == "" || request.ToE164 == "" || request.Text == "" || request.IdempotencyKey == "" {
		return nil, ErrMissingRequiredFields
	}

	sms, err := s.repository.QueueSms(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("queue sms: %w", err)
	}
	SmsMessagesTotal.WithLabelValues(request.Intent.String(), "queued").Inc()
	return sms, nil
}

// OnParcelCreated ставит напоминание о новой выдаче. Вызывается в транзакции выдачи.
func (s *Sms) OnParcelCreated(ctx context.Context, parcel entities.Parcel) error {
	request, ok, err := s.buildRequest(ctx, entities.SmsPickupReminder, parcel)
	if err != nil || !ok {
		return err
	}
	request.IdempotencyKey = IdempotencyKey(entities.SmsPickupReminder, parcel.ID)
	request.NextAttemptAt = s.scheduler.CalculateSmsScheduleTime(parcel.PickupEarliestTime)

	_, err = s.QueueSms(ctx, request)
	return err
}

// OnParcelUpdated переносит еще не отправленное напоминание или,
// если напоминание уже ушло, ставит сообщение об изменении времени.
func (s *Sms) OnParcelUpdated(ctx context.Context, before, after entities.Parcel) error {
	if before.PickupLocationID == after.PickupLocationID &&
		before.PickupEarliestTime.Equal(after.PickupEarliestTime) &&
		before.PickupLatestTime.Equal(after.PickupLatestTime) {
		return nil
	}

	existing, err := s.repository.ListParcelSms(ctx, after.ID)
	if err != nil {
		return fmt.Errorf("list parcel sms: %w", err)
	}

	reminderKey := IdempotencyKey(entities.SmsPickupReminder, after.ID)
	reminder := findActive(existing, reminderKey)
	switch {
	case reminder == nil && hasCancelled(existing, reminderKey):
		// отмененное оператором напоминание не возвращается правкой выдачи
		return nil
	case reminder == nil || reminder.Status.IsPending():
		return s.OnParcelCreated(ctx, after)
	case reminder.Status == entities.SmsSent || reminder.Status == entities.SmsSending:
		request, ok, err := s.buildRequest(ctx, entities.SmsPickupUpdated, after)
		if err != nil || !ok {
			return err
		}
		request.IdempotencyKey = updatedIdempotencyKey(after.ID, after.PickupEarliestTime)
		request.NextAttemptAt = s.clock.Now()

		_, err = s.QueueSms(ctx, request)
		return err
	default:
		return nil
	}
}

// OnParcelCancelled отменяет ожидающие сообщения. Если напоминание уже ушло,
// домохозяйству отправляется сообщение об отмене.
func (s *Sms) OnParcelCancelled(ctx context.Context, parcel entities.Parcel) error {
	existing, err := s.repository.ListParcelSms(ctx, parcel.ID)
	if err != nil {
		return fmt.Errorf("list parcel sms: %w", err)
	}

	notified := false
	for _, sms := range existing {
		switch {
		case sms.Status.IsPending():
			if _, err := s.repository.UpdateSms(ctx, entities.SmsModify{
				ID:     pointer.To(sms.ID),
				Status: pointer.To(entities.SmsCancelled),
			}); err != nil {
				return fmt.Errorf("cancel sms %s: %w", sms.ID, err)
			}
			SmsMessagesTotal.WithLabelValues(sms.Intent.String(), "cancelled").Inc()
		case sms.Intent != entities.SmsPickupCancelled &&
			(sms.Status == entities.SmsSent || sms.Status == entities.SmsSending):
			notified = true
		}
	}
	if !notified {
		return nil
	}

	request, ok, err := s.buildRequest(ctx, entities.SmsPickupCancelled, parcel)
	if err != nil || !ok {
		return err
	}
	request.IdempotencyKey = IdempotencyKey(entities.SmsPickupCancelled, parcel.ID)
	request.NextAttemptAt = s.clock.Now()

	_, err = s.QueueSms(ctx, request)
	return err
}

// ResendReminder ставит новое напоминание в обход дедупликации.
func (s *Sms) ResendReminder(ctx context.Context, parcelID string) (*entities.OutgoingSms, error) {
	if strings.TrimSpace(parcelID) == "" {
		return nil, ErrMissingRequiredFields
	}

	var sms *entities.OutgoingSms
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.parcels.GetParcel(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if parcel.IsDeleted() {
			return ErrParcelCancelled
		}

		now := s.clock.Now()
		recent, err := s.repository.CountParcelSmsSince(ctx, parcelID, now.Add(-ResendCooldown))
		if err != nil {
			return fmt.Errorf("count recent sms: %w", err)
		}
		if recent > 0 {
			return ErrResendCooldown
		}

		request, ok, err := s.buildRequest(ctx, entities.SmsPickupReminder, *parcel)
		if err != nil {
			return err
		}
		if !ok {
			return ErrHouseholdNotReachable
		}
		request.IdempotencyKey = ManualIdempotencyKey(entities.SmsPickupReminder, parcelID)
		request.NextAttemptAt = now

		sms, err = s.QueueSms(ctx, request)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sms, nil
}

// CancelSms отменяет сообщение, которое еще не забрал диспетчер.
func (s *Sms) CancelSms(ctx context.Context, smsID string) (*entities.OutgoingSms, error) {
	return s.transition(ctx, smsID, func(sms *entities.OutgoingSms) (entities.SmsModify, error) {
		if !sms.Status.IsPending() {
			return entities.SmsModify{}, fmt.Errorf("%w: cancel %s", ErrInvalidStatusChange, sms.Status)
		}
		SmsMessagesTotal.WithLabelValues(sms.Intent.String(), "cancelled").Inc()
		return entities.SmsModify{Status: pointer.To(entities.SmsCancelled)}, nil
	})
}

// DismissSms скрывает отправленное или неудачное сообщение из списка оператора.
func (s *Sms) DismissSms(ctx context.Context, smsID, userID string) (*entities.OutgoingSms, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingRequiredFields
	}

	return s.transition(ctx, smsID, func(sms *entities.OutgoingSms) (entities.SmsModify, error) {
		if sms.Status != entities.SmsSent && sms.Status != entities.SmsFailed {
			return entities.SmsModify{}, fmt.Errorf("%w: dismiss %s", ErrInvalidStatusChange, sms.Status)
		}
		return entities.SmsModify{
			DismissedAt:       pointer.To(s.clock.Now()),
			DismissedByUserID: pointer.To(userID),
		}, nil
	})
}

func (s *Sms) transition(
	ctx context.Context,
	smsID string,
	change func(sms *entities.OutgoingSms) (entities.SmsModify, error),
) (*entities.OutgoingSms, error) {
	if strings.TrimSpace(smsID) == "" {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.OutgoingSms
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		sms, err := s.repository.GetSms(ctx, smsID)
		if err != nil {
			return fmt.Errorf("get sms: %w", err)
		}

		modify, err := change(sms)
		if err != nil {
			return err
		}
		modify.ID = pointer.To(smsID)

		updated, err = s.repository.UpdateSms(ctx, modify)
		if err != nil {
			return fmt.Errorf("update sms: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DispatchDue забирает готовые сообщения и отправляет их через шлюз.
// Ошибка отправки одного сообщения не влияет на остальные.
func (s *Sms) DispatchDue(ctx context.Context) (*entities.SmsDispatchResult, error) {
	now := s.clock.Now()

	released, err := s.repository.ReleaseStale(ctx, now.Add(-ClaimLease), now, s.config.MaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("release stale sms: %w", err)
	}

	claimed, err := s.repository.ClaimDue(ctx, now, s.config.DispatchBatch)
	if err != nil {
		return nil, fmt.Errorf("claim due sms: %w", err)
	}

	result := &entities.SmsDispatchResult{Released: int(released), Claimed: len(claimed)}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.config.Concurrency)
	for _, sms := range claimed {
		g.Go(func() error {
			outcome, err := s.dispatch(ctx, sms)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case entities.SmsSent:
				result.Sent++
			case entities.SmsRetrying:
				result.Retried++
			case entities.SmsFailed:
				result.Failed++
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("dispatch sms: %w", err)
	}
	return result, nil
}

func (s *Sms) dispatch(ctx context.Context, sms entities.OutgoingSms) (entities.SmsStatus, error) {
	sent, sendErr := s.gateway.Send(ctx, sms.ToE164, sms.Text)
	now := s.clock.Now()

	modify := entities.SmsModify{ID: pointer.To(sms.ID)}
	switch {
	case sendErr == nil:
		modify.Status = pointer.To(entities.SmsSent)
		modify.ProviderMessageID = pointer.To(sent.MessageID)
		modify.SentAt = pointer.To(now)
	case ctx.Err() != nil:
		// отправку прервала остановка диспетчера: запись сразу возвращается в очередь
		modify.Status = pointer.To(entities.SmsRetrying)
		modify.NextAttemptAt = pointer.To(now)
		modify.LastErrorMessage = pointer.To(entities.SmsDispatchInterrupted)
	default:
		modify.LastErrorMessage = pointer.To(RedactPII(sendErr.Error()))
		if sms.AttemptCount >= s.config.MaxAttempts {
			modify.Status = pointer.To(entities.SmsFailed)
		} else {
			modify.Status = pointer.To(entities.SmsRetrying)
			modify.NextAttemptAt = pointer.To(now.Add(RetryDelay(sms.AttemptCount)))
		}
	}

	// итог пишется и после отмены ctx, иначе запись остается в sending до истечения аренды
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), outcomeWriteTimeout)
	defer cancel()

	if _, err := s.repository.UpdateSms(writeCtx, modify); err != nil {
		return "", fmt.Errorf("update sms %s: %w", sms.ID, err)
	}

	SmsMessagesTotal.WithLabelValues(sms.Intent.String(), modify.Status.String()).Inc()
	return *modify.Status, nil
}

// RetryDelay - пауза после неудачной попытки attempt: 5m, 10m, 20m и т.д., не больше часа.
func RetryDelay(attempt int) time.Duration {
	delay := retryBaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= retryMaxDelay {
			return retryMaxDelay
		}
	}
	return delay
}

// ApplyProviderStatus записывает статус доставки от провайдера. Основной статус не меняется.
func (s *Sms) ApplyProviderStatus(ctx context.Context, report entities.SmsProviderReport) error {
	if strings.TrimSpace(report.APIMessageID) == "" {
		return ErrMissingRequiredFields
	}
	if !report.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidProviderStatus, report.Status)
	}

	found, err := s.repository.UpdateProviderStatus(ctx, report.APIMessageID, report.Status)
	if err != nil {
		SmsProviderReportsTotal.WithLabelValues(report.Status.String(), "error").Inc()
		return fmt.Errorf("update provider status: %w", err)
	}
	if !found {
		SmsProviderReportsTotal.WithLabelValues(report.Status.String(), "unknown").Inc()
		return ErrUnknownMessage
	}

	SmsProviderReportsTotal.WithLabelValues(report.Status.String(), "applied").Inc()
	return nil
}

// BalanceStatus объединяет недавние ошибки нехватки средств с живой проверкой баланса.
func (s *Sms) BalanceStatus(ctx context.Context) (*entities.SmsBalanceStatus, error) {
	failed, err := s.repository.ListFailedSince(ctx, s.clock.Now().Add(-balanceWindow))
	if err != nil {
		return nil, fmt.Errorf("list failed sms: %w", err)
	}

	status := &entities.SmsBalanceStatus{}
	for _, sms := range failed {
		if sms.LastErrorMessage == nil || !isBalanceError(*sms.LastErrorMessage) {
			continue
		}
		status.RecentBalanceErrors++
		if status.LastFailureMessage == nil {
			status.LastFailureMessage = pointer.To(RedactPII(*sms.LastErrorMessage))
		}
	}

	credits, err := s.gateway.CheckBalance(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		status.BalanceCheckError = pointer.To(RedactPII(err.Error()))
	} else {
		status.Credits = pointer.To(credits)
	}

	status.HasBalanceProblem = status.RecentBalanceErrors > 0 ||
		(status.Credits != nil && *status.Credits <= 0)
	return status, nil
}

// buildRequest собирает текст и адресата. ok=false, если домохозяйство
// анонимизировано или без телефона: такие сообщения не ставятся.
func (s *Sms) buildRequest(
	ctx context.Context,
	intent entities.SmsIntent,
	parcel entities.Parcel,
) (entities.SmsQueueRequest, bool, error) {
	household, err := s.households.GetHousehold(ctx, parcel.HouseholdID)
	if err != nil {
		return entities.SmsQueueRequest{}, false, fmt.Errorf("get household: %w", err)
	}
	if household.IsAnonymized() || household.PhoneNumber == "" {
		return entities.SmsQueueRequest{}, false, nil
	}

	location, err := s.locations.GetLocation(ctx, parcel.PickupLocationID)
	if err != nil {
		return entities.SmsQueueRequest{}, false, fmt.Errorf("get location: %w", err)
	}

	text, err := s.texts.Render(intent, entities.SmsTextData{
		ParcelID:       parcel.ID,
		Locale:         household.Locale,
		LocationName:   location.Name,
		PickupEarliest: parcel.PickupEarliestTime,
		PickupLatest:   parcel.PickupLatestTime,
	})
	if err != nil {
		return entities.SmsQueueRequest{}, false, fmt.Errorf("render sms text: %w", err)
	}

	return entities.SmsQueueRequest{
		Intent:      intent,
		ParcelID:    pointer.To(parcel.ID),
		HouseholdID: household.ID,
		ToE164:      household.PhoneNumber,
		Text:        text,
	}, true, nil
}

func hasCancelled(messages []entities.OutgoingSms, key string) bool {
	for _, message := range messages {
		if message.IdempotencyKey == key && message.Status == entities.SmsCancelled {
			return true
		}
	}
	return false
}

func findActive(messages []entities.OutgoingSms, key string) *entities.OutgoingSms {
	for i := range messages {
		if messages[i].IdempotencyKey == key && messages[i].Status != entities.SmsCancelled {
			return &messages[i]
		}
	}
	return nil
}
