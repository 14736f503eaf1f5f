package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
)

const gameOverEventName = "GAME_OVER"

// GameOver describes a finished game.
type GameOver struct {
	Event    string    `json:"event"`
	GameID   uuid.UUID `json:"game_id"`
	Winner   string    `json:"winner"`
	Black    int       `json:"black"`
	White    int       `json:"white"`
	AIMoves  int       `json:"ai_moves"`
	Duration float64   `json:"duration_seconds"`
	EndedAt  time.Time `json:"ended_at"`
}

// NewGameOver creates the event for a game that ended on board.
func NewGameOver(gameID uuid.UUID, board models.Board, aiMoves int, duration time.Duration) GameOver {
	winner := board.Winner()

	winnerName := winner.String()
	if winner == models.TIE {
		winnerName = "tie"
	}

	return GameOver{
		Event:    gameOverEventName,
		GameID:   gameID,
		Winner:   winnerName,
		Black:    board.Count(models.BLACK),
		White:    board.Count(models.WHITE),
		AIMoves:  aiMoves,
		Duration: duration.Seconds(),
		EndedAt:  time.Now().UTC(),
	}
}

// Publisher sends game events.
type Publisher interface {
	GameOver(ctx context.Context, event GameOver) error
}

// NewPublisher returns a Kafka publisher if Kafka is configured and a log-only publisher otherwise.
func NewPublisher(services *services.Services) Publisher {
	if services.Kafka == nil {
		return LogPublisher{}
	}
	return NewKafkaPublisher(services.Kafka, config.GameOverTopic)
}

// KafkaPublisher sends events to a Kafka topic.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
	}
}

// GameOver sends a game over event keyed by game id.
func (p *KafkaPublisher) GameOver(_ context.Context, event GameOver) error {
	msg, err := p.buildMessage(event)
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("error sending game over event: %w", err)
	}

	slog.Debug("Game over event sent", "game_id", event.GameID, "partition", partition, "offset", offset)
	return nil
}

func (p *KafkaPublisher) buildMessage(event GameOver) (*sarama.ProducerMessage, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("error marshaling game over event: %w", err)
	}

	return &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.GameID.String()),
		Value: sarama.ByteEncoder(value),
	}, nil
}

// LogPublisher only logs events.
type LogPublisher struct{}

// GameOver logs the event.
func (LogPublisher) GameOver(_ context.Context, event GameOver) error {
	slog.Info("Game over",
		"game_id", event.GameID,
		"winner", event.Winner,
		"black", event.Black,
		"white", event.White,
		"duration_seconds", event.Duration,
	)
	return nil
}
