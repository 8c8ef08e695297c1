package decorator

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/device-registry/pkg/logger"
)

type (
	commandLoggingDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		logger logger.Logger
	}

	queryLoggingDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		logger logger.Logger
	}
)

func (d commandLoggingDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	actionName := generateActionName(cmd)
	log := d.logger.WithContext(ctx).With().
		Str("command", actionName).
		Str("command_body", fmt.Sprintf("%+v", cmd)).
		Logger()

	log.Debug().Msg("executing command")

	start := time.Now()

	defer func() {
		elapsed := time.Since(start)

		if err == nil {
			log.Info().Dur("duration", elapsed).Msg("command executed successfully")

			return
		}

		log.Error().Err(err).Dur("duration", elapsed).Msg("failed to execute command")
	}()

	return d.base.Handle(ctx, cmd)
}

func (d queryLoggingDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	actionName := generateActionName(query)
	log := d.logger.WithContext(ctx).With().
		Str("query", actionName).
		Str("query_body", fmt.Sprintf("%+v", query)).
		Logger()

	log.Debug().Msg("executing query")

	start := time.Now()

	defer func() {
		elapsed := time.Since(start)

		if err == nil {
			log.Debug().Dur("duration", elapsed).Msg("query executed successfully")

			return
		}

		log.Error().Err(err).Dur("duration", elapsed).Msg("failed to execute query")
	}()

	return d.base.Execute(ctx, query)
}
