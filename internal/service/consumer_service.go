package service

import (
	"context"
	"encoding/json"
	"log"

	"marketing-calendar-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService warms the suggestion cache in the background: whenever a
// user saves their niches we run the pipeline once so the first visit to the
// suggestions screen is served from cache.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	suggestionService ISuggestionService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	suggestionService ISuggestionService,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		suggestionService: suggestionService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PrefetchSuggestionsMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if len(payload.Niches) == 0 {
		msg.Ack()
		return
	}

	log.Printf("[INFO] Prefetching suggestions for niches: %v", payload.Niches)

	_, err := cs.suggestionService.Suggest(ctx, &dto.SuggestDatesRequest{Niches: payload.Niches})
	if err != nil {
		log.Printf("[ERROR] Failed to prefetch suggestions: %v", err)
		// Prefetching is best effort, a miss just means a slower first request.
		msg.Ack()
		return
	}

	msg.Ack()
}
