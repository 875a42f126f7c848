package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/models"
)

// ErrAlreadyClaimedToday is returned when the user already holds a quote for
// the requested day, whether seen by the pre-check or lost to a concurrent
// claim on the uniqueness constraint.
var ErrAlreadyClaimedToday = errors.New("daily quote already claimed")

// QuoteHistoryReader defines read operations for claimed quotes.
type QuoteHistoryReader interface {
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, day time.Time) (*models.QuoteHistoryDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.QuoteHistoryDB, error)
}

// QuoteHistoryWriter defines write operations for claimed quotes.
// Save returns nil without error when the (user, day) slot is already taken.
type QuoteHistoryWriter interface {
	Save(ctx context.Context, userID uuid.UUID, quoteText, author string, day time.Time) (*models.QuoteHistoryDB, error)
}

// QuoteFetcher fetches one quote from the external provider.
type QuoteFetcher interface {
	GetQuote(ctx context.Context) (text string, author string, err error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// QuoteService implements the once-per-day quote claim and history replay.
type QuoteService struct {
	users       UserReader
	reader      QuoteHistoryReader
	writer      QuoteHistoryWriter
	provider    QuoteFetcher
	kafkaWriter KafkaWriter
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(
	users UserReader,
	reader QuoteHistoryReader,
	writer QuoteHistoryWriter,
	provider QuoteFetcher,
	kafkaWriter KafkaWriter,
) *QuoteService {
	return &QuoteService{
		users:       users,
		reader:      reader,
		writer:      writer,
		provider:    provider,
		kafkaWriter: kafkaWriter,
	}
}

// publishClaim publishes a claim event to Kafka. Event delivery is best
// effort and never fails the claim.
func (s *QuoteService) publishClaim(ctx context.Context, event models.ClaimEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "claim_id", event.ClaimID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal claim event", "claim_id", event.ClaimID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ClaimID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish claim event", "claim_id", event.ClaimID, "error", err)
	} else {
		logger.Log.Infow("claim event published", "claim_id", event.ClaimID, "username", event.Username)
	}
}

// TodaysQuote returns the quote the user claimed on the given day, or nil if
// none was claimed yet.
func (s *QuoteService) TodaysQuote(ctx context.Context, username string, day time.Time) (*models.QuoteHistoryDB, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	return s.reader.GetByUserAndDate(ctx, user.UserID, day)
}

// Claim fetches a quote from the provider and records it for the user and
// day. The entry already existing, before or during the insert, surfaces as
// ErrAlreadyClaimedToday; provider failures surface unwrapped so callers can
// match them, and no entry is created.
func (s *QuoteService) Claim(ctx context.Context, username string, day time.Time) (*models.QuoteHistoryDB, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	existing, err := s.reader.GetByUserAndDate(ctx, user.UserID, day)
	if err != nil {
		logger.Log.Errorw("failed to check todays quote", "username", username, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyClaimedToday
	}

	text, author, err := s.provider.GetQuote(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch quote from provider", "username", username, "error", err)
		return nil, err
	}

	entry, err := s.writer.Save(ctx, user.UserID, text, author, day)
	if err != nil {
		logger.Log.Errorw("failed to save claimed quote", "username", username, "error", err)
		return nil, err
	}
	if entry == nil {
		// Lost a concurrent claim for the same day.
		return nil, ErrAlreadyClaimedToday
	}

	s.publishClaim(ctx, models.ClaimEvent{
		ClaimID:     uuid.NewString(),
		UserID:      user.UserID.String(),
		Username:    username,
		Author:      author,
		RetrievedOn: day.Format("2006-01-02"),
		Timestamp:   time.Now().Unix(),
	})

	return entry, nil
}

// History returns all quotes the user has claimed, newest first.
func (s *QuoteService) History(ctx context.Context, username string) ([]models.QuoteHistoryDB, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	return s.reader.ListByUser(ctx, user.UserID)
}
