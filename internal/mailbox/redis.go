package mailbox

import (
	"context"
	"encoding/json"
	"fmt"

	applog "celebra/internal/log"
	"celebra/models"

	"github.com/redis/go-redis/v9"
)

const (
	redisKey     = "celebrations:current"
	redisChannel = "celebrations:events"
)

// Redis stores the slot at a well-known key and fans changes out through a
// pub/sub channel, so several server instances can share one mailbox. Local
// subscribers are fed from the channel, which also covers our own writes.
type Redis struct {
	client *redis.Client
	hub    *Memory
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRedis connects to the given redis URL, reloads the current slot, and
// starts the change listener.
func NewRedis(ctx context.Context, url string) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("mailbox: parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("mailbox: ping redis: %w", err)
	}

	store := &Redis{
		client: client,
		hub:    NewMemory(),
		done:   make(chan struct{}),
	}

	if state, err := store.load(ctx); err != nil {
		applog.Warn(ctx, "could not reload mailbox slot from redis", "error", err)
	} else if state != nil {
		store.hub.restore(state)
	}

	listenCtx, cancel := context.WithCancel(context.Background())
	store.cancel = cancel
	pubsub := client.Subscribe(listenCtx, redisChannel)
	go store.listen(listenCtx, pubsub)

	return store, nil
}

// Publish implements Store.
func (r *Redis) Publish(ctx context.Context, c models.Celebration) error {
	state := models.ActiveState(c)
	if err := r.write(ctx, state); err != nil {
		// Keep local displays current even when redis rejects the write.
		r.hub.broadcast(&state)
		return err
	}
	applog.Debug(ctx, "celebration published", "guest", c.GuestName, "occasion", c.Occasion, "theme", c.ThemeID)
	return nil
}

// Reset implements Store.
func (r *Redis) Reset(ctx context.Context) error {
	state := models.StandbyState()
	if err := r.write(ctx, state); err != nil {
		r.hub.broadcast(&state)
		return err
	}
	applog.Debug(ctx, "celebration reset to standby")
	return nil
}

// Subscribe implements Store.
func (r *Redis) Subscribe(fn func(*models.State)) UnsubscribeFunc {
	return r.hub.Subscribe(fn)
}

// Close implements Store.
func (r *Redis) Close() error {
	r.cancel()
	<-r.done
	if err := r.hub.Close(); err != nil {
		return err
	}
	return r.client.Close()
}

func (r *Redis) write(ctx context.Context, state models.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("mailbox: encode state: %w", err)
	}

	if err := r.client.Set(ctx, redisKey, payload, 0).Err(); err != nil {
		applog.Error(ctx, "failed to write mailbox slot to redis", "error", err)
		return fmt.Errorf("mailbox: write slot: %w", err)
	}
	if err := r.client.Publish(ctx, redisChannel, payload).Err(); err != nil {
		applog.Error(ctx, "failed to announce mailbox change", "error", err)
		return fmt.Errorf("mailbox: announce change: %w", err)
	}
	return nil
}

func (r *Redis) load(ctx context.Context) (*models.State, error) {
	payload, err := r.client.Get(ctx, redisKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mailbox: read slot: %w", err)
	}

	var state models.State
	if err := json.Unmarshal(payload, &state); err != nil {
		applog.Warn(ctx, "discarding unreadable mailbox slot", "error", err)
		return nil, nil
	}
	return &state, nil
}

// listen feeds channel messages into the local hub until the store closes.
func (r *Redis) listen(ctx context.Context, pubsub *redis.PubSub) {
	defer close(r.done)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var state models.State
			if err := json.Unmarshal([]byte(msg.Payload), &state); err != nil {
				applog.Warn(ctx, "ignoring malformed mailbox announcement", "error", err)
				continue
			}
			r.hub.broadcast(&state)
		}
	}
}
