package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/daily-quote/internal/models"
	"github.com/sbilibin2017/daily-quote/internal/services"
)

func TestQuoteService_TodaysQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockReader := services.NewMockQuoteHistoryReader(ctrl)
	mockWriter := services.NewMockQuoteHistoryWriter(ctrl)
	mockProvider := services.NewMockQuoteFetcher(ctrl)

	svc := services.NewQuoteService(mockUsers, mockReader, mockWriter, mockProvider, nil)

	userID := uuid.New()
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	entry := &models.QuoteHistoryDB{QuoteID: uuid.New(), UserID: userID, QuoteText: "Be bold", Author: "Anon"}

	t.Run("existing entry", func(t *testing.T) {
		mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").
			Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)
		mockReader.EXPECT().GetByUserAndDate(gomock.Any(), userID, day).Return(entry, nil)

		got, err := svc.TodaysQuote(context.Background(), "alice", day)
		assert.NoError(t, err)
		assert.Equal(t, entry, got)
	})

	t.Run("no entry yet", func(t *testing.T) {
		mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").
			Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)
		mockReader.EXPECT().GetByUserAndDate(gomock.Any(), userID, day).Return(nil, nil)

		got, err := svc.TodaysQuote(context.Background(), "alice", day)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		got, err := svc.TodaysQuote(context.Background(), "ghost", day)
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
		assert.Nil(t, got)
	})
}

func TestQuoteService_Claim(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	user := &models.UserDB{UserID: userID, Username: "alice"}
	saved := &models.QuoteHistoryDB{
		QuoteID:     uuid.New(),
		UserID:      userID,
		QuoteText:   "Be bold",
		Author:      "Anon",
		RetrievedOn: day,
	}
	providerErr := errors.New("quote provider unavailable")

	tests := []struct {
		name      string
		setup     func(users *services.MockUserReader, reader *services.MockQuoteHistoryReader, writer *services.MockQuoteHistoryWriter, provider *services.MockQuoteFetcher)
		wantEntry *models.QuoteHistoryDB
		wantErr   error
	}{
		{
			name: "successful claim",
			setup: func(users *services.MockUserReader, reader *services.MockQuoteHistoryReader, writer *services.MockQuoteHistoryWriter, provider *services.MockQuoteFetcher) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				reader.EXPECT().GetByUserAndDate(gomock.Any(), userID, day).Return(nil, nil)
				provider.EXPECT().GetQuote(gomock.Any()).Return("Be bold", "Anon", nil)
				writer.EXPECT().Save(gomock.Any(), userID, "Be bold", "Anon", day).Return(saved, nil)
			},
			wantEntry: saved,
		},
		{
			name: "already claimed, seen by pre-check",
			setup: func(users *services.MockUserReader, reader *services.MockQuoteHistoryReader, writer *services.MockQuoteHistoryWriter, provider *services.MockQuoteFetcher) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				reader.EXPECT().GetByUserAndDate(gomock.Any(), userID, day).Return(saved, nil)
			},
			wantErr: services.ErrAlreadyClaimedToday,
		},
		{
			name: "already claimed, lost the race on insert",
			setup: func(users *services.MockUserReader, reader *services.MockQuoteHistoryReader, writer *services.MockQuoteHistoryWriter, provider *services.MockQuoteFetcher) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				reader.EXPECT().GetByUserAndDate(gomock.Any(), userID, day).Return(nil, nil)
				provider.EXPECT().GetQuote(gomock.Any()).Return("Be bold", "Anon", nil)
				writer.EXPECT().Save(gomock.Any(), userID, "Be bold", "Anon", day).Return(nil, nil)
			},
			wantErr: services.ErrAlreadyClaimedToday,
		},
		{
			name: "provider failure creates no entry",
			setup: func(users *services.MockUserReader, reader *services.MockQuoteHistoryReader, writer *services.MockQuoteHistoryWriter, provider *services.MockQuoteFetcher) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				reader.EXPECT().GetByUserAndDate(gomock.Any(), userID, day).Return(nil, nil)
				provider.EXPECT().GetQuote(gomock.Any()).Return("", "", providerErr)
			},
			wantErr: providerErr,
		},
		{
			name: "unknown user",
			setup: func(users *services.MockUserReader, reader *services.MockQuoteHistoryReader, writer *services.MockQuoteHistoryWriter, provider *services.MockQuoteFetcher) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := services.NewMockUserReader(ctrl)
			mockReader := services.NewMockQuoteHistoryReader(ctrl)
			mockWriter := services.NewMockQuoteHistoryWriter(ctrl)
			mockProvider := services.NewMockQuoteFetcher(ctrl)

			tt.setup(mockUsers, mockReader, mockWriter, mockProvider)

			svc := services.NewQuoteService(mockUsers, mockReader, mockWriter, mockProvider, nil)

			entry, err := svc.Claim(context.Background(), "alice", day)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantEntry, entry)
			}
		})
	}
}

func TestQuoteService_Claim_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockReader := services.NewMockQuoteHistoryReader(ctrl)
	mockWriter := services.NewMockQuoteHistoryWriter(ctrl)
	mockProvider := services.NewMockQuoteFetcher(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	userID := uuid.New()
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	user := &models.UserDB{UserID: userID, Username: "alice"}
	saved := &models.QuoteHistoryDB{QuoteID: uuid.New(), UserID: userID, QuoteText: "Be bold", Author: "Anon", RetrievedOn: day}

	mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
	mockReader.EXPECT().GetByUserAndDate(gomock.Any(), userID, day).Return(nil, nil)
	mockProvider.EXPECT().GetQuote(gomock.Any()).Return("Be bold", "Anon", nil)
	mockWriter.EXPECT().Save(gomock.Any(), userID, "Be bold", "Anon", day).Return(saved, nil)

	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			assert.Len(t, msgs, 1)

			var event models.ClaimEvent
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, "alice", event.Username)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, "Anon", event.Author)
			assert.Equal(t, "2026-08-31", event.RetrievedOn)
			return nil
		})

	svc := services.NewQuoteService(mockUsers, mockReader, mockWriter, mockProvider, mockKafka)

	entry, err := svc.Claim(context.Background(), "alice", day)
	assert.NoError(t, err)
	assert.Equal(t, saved, entry)
}

func TestQuoteService_Claim_KafkaErrorDoesNotFailClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockReader := services.NewMockQuoteHistoryReader(ctrl)
	mockWriter := services.NewMockQuoteHistoryWriter(ctrl)
	mockProvider := services.NewMockQuoteFetcher(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	userID := uuid.New()
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	saved := &models.QuoteHistoryDB{QuoteID: uuid.New(), UserID: userID}

	mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)
	mockReader.EXPECT().GetByUserAndDate(gomock.Any(), userID, day).Return(nil, nil)
	mockProvider.EXPECT().GetQuote(gomock.Any()).Return("Be bold", "Anon", nil)
	mockWriter.EXPECT().Save(gomock.Any(), userID, "Be bold", "Anon", day).Return(saved, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	svc := services.NewQuoteService(mockUsers, mockReader, mockWriter, mockProvider, mockKafka)

	entry, err := svc.Claim(context.Background(), "alice", day)
	assert.NoError(t, err)
	assert.Equal(t, saved, entry)
}

func TestQuoteService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockReader := services.NewMockQuoteHistoryReader(ctrl)
	mockWriter := services.NewMockQuoteHistoryWriter(ctrl)
	mockProvider := services.NewMockQuoteFetcher(ctrl)

	svc := services.NewQuoteService(mockUsers, mockReader, mockWriter, mockProvider, nil)

	userID := uuid.New()
	entries := []models.QuoteHistoryDB{
		{QuoteID: uuid.New(), UserID: userID, RetrievedOn: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		{QuoteID: uuid.New(), UserID: userID, RetrievedOn: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("returns entries", func(t *testing.T) {
		mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").
			Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)
		mockReader.EXPECT().ListByUser(gomock.Any(), userID).Return(entries, nil)

		got, err := svc.History(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		got, err := svc.History(context.Background(), "ghost")
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
		assert.Nil(t, got)
	})
}
