package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const gameKeyPrefix = "game:"

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Modify(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error)
}

// dbGame keeps the current snapshot of each game. A finished game stays readable for finishedTTL so late
// turns are answered with ErrGameFinished, then expires. No history is kept.
type dbGame struct {
	client      *redis.Client
	ttl         time.Duration
	finishedTTL time.Duration
}

// NewGameRepository - ttl bounds how long a game in play is kept, finishedTTL how long a finished one is.
// 0 keeps the game without expiry.
func NewGameRepository(client *redis.Client, ttl, finishedTTL time.Duration) GameRepository {
	return &dbGame{
		client:      client,
		ttl:         ttl,
		finishedTTL: finishedTTL,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKeyPrefix+game.ID, gameJSON, that.expiration(game)).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return that.get(ctx, that.client, id)
}

// Modify - loads the game, applies apply and stores the result in one optimistic transaction.
// When the game changes in between, nothing is stored and ErrNotYourTurn is returned.
func (that *dbGame) Modify(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error) {
	key := gameKeyPrefix + id

	var modified *entity.Game

	err := that.client.Watch(ctx, func(tx *redis.Tx) error {
		game, err := that.get(ctx, tx, id)
		if err != nil {
			return err
		}

		if err = apply(game); err != nil {
			return err
		}

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		if _, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, that.expiration(game))
			return nil
		}); err != nil {
			return err
		}

		modified = game

		return nil
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return nil, fmt.Errorf("%w: game %s was changed by another turn", apperror.ErrNotYourTurn, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to modify game: %w", err)
	}

	return modified, nil
}

func (that *dbGame) get(ctx context.Context, client redis.Cmdable, id string) (*entity.Game, error) {
	response, err := client.Get(ctx, gameKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if _, err = entity.FromCells(existingGame.Board[:]); err != nil {
		return nil, fmt.Errorf("stored game %s has a broken board: %w", id, err)
	}

	return &existingGame, nil
}

func (that *dbGame) expiration(game *entity.Game) time.Duration {
	if game.IsFinished() {
		return that.finishedTTL
	}

	return that.ttl
}
