package statistics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	"github.com/SlavaShagalov/blog-platform/internal/statistics/repository"
)

type StatisticsError string

func (e StatisticsError) Error() string {
	return string(e)
}

const (
	ErrNoWriter StatisticsError = "statistics has no writer"
	ErrNoReader StatisticsError = "statistics has no reader"
)

// KafkaStatistics ships API request records through kafka. The gateway side
// holds a writer, the statistics service holds a reader and a repository.
type KafkaStatistics struct {
	reader *kafka.Reader
	writer *kafka.Writer
	logger *slog.Logger
	repo   *repository.SqlxRepository
}

func NewKafkaStatistics(reader *kafka.Reader, writer *kafka.Writer, logger *slog.Logger, repo *repository.SqlxRepository) *KafkaStatistics {
	return &KafkaStatistics{
		reader: reader,
		writer: writer,
		logger: logger,
		repo:   repo,
	}
}

type Request struct {
	Method  string
	URL     string
	Body    string
	Headers string
}

func (stat *KafkaStatistics) Push(ctx context.Context, req Request) error {
	if stat.writer == nil {
		return ErrNoWriter
	}

	payload, err := kafka.Marshal(req)
	if err != nil {
		return err
	}

	uid := uuid.New().String()
	msg := kafka.Message{
		Key:   []byte(uid),
		Value: payload,
	}
	stat.logger.Debug("write message to kafka...",
		slog.String("topic", stat.writer.Topic),
		slog.String("key", uid),
	)

	err = stat.writer.WriteMessages(ctx, msg)
	if errors.Is(err, kafka.UnknownTopicOrPartition) {
		time.Sleep(5 * time.Second) // Wait for auto creating topic
		err = stat.writer.WriteMessages(ctx, msg)
	}

	return err
}

// SaveRequest reads one record from kafka and persists it. On a save
// failure the reader offset is rewound so the record is retried.
func (stat *KafkaStatistics) SaveRequest(ctx context.Context) (err error) {
	if stat.reader == nil {
		return ErrNoReader
	}

	msg, err := stat.reader.ReadMessage(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			err = multierror.Append(err, stat.reader.SetOffset(msg.Offset))
		}
	}()

	stat.logger.Debug("read message from kafka",
		slog.String("topic", msg.Topic),
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
		slog.String("key", string(msg.Key)),
	)

	var rawRequest Request
	err = kafka.Unmarshal(msg.Value, &rawRequest)
	if err != nil {
		return err
	}

	repoReq := repository.Request{
		Method:  rawRequest.Method,
		URL:     rawRequest.URL,
		Body:    rawRequest.Body,
		Headers: rawRequest.Headers,
	}

	return stat.repo.SaveRequest(ctx, repoReq)
}
