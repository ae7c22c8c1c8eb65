package utils

import (
	"context"

	"github.com/sirupsen/logrus"
)

type logKey struct{}

func LogToCtx(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, logKey{}, logger)
}

// LogFromCtx returns the logger stored in ctx, or the standard logger when there is none.
func LogFromCtx(ctx context.Context) logrus.FieldLogger {
	if l, ok := ctx.Value(logKey{}).(logrus.FieldLogger); ok {
		return l
	}
	return logrus.StandardLogger()
}

func LogTagsToCtx(ctx context.Context, tags logrus.Fields) (context.Context, logrus.FieldLogger) {
	logger := LogFromCtx(ctx).WithFields(tags)

	return LogToCtx(ctx, logger), logger
}
