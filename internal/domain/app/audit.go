package app

import (
	"github.com/sirupsen/logrus"

	"github.com/quintans/simple-bank/shared/event"
)

func audit(logger logrus.FieldLogger, e event.Event) {
	entry := logger.WithField("event", e.GetType())
	if _, ok := e.(event.TransactionRejected); ok {
		entry.Warnf("%+v", e)
		return
	}
	entry.Infof("%+v", e)
}
