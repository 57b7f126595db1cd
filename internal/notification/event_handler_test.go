package notification

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	coreEvents "github.com/radityaputra/intranet-portal/internal/core/events"
)

var _ = ginkgo.Describe("NotificationEventHandler", func() {
	var (
		logBuf  *bytes.Buffer
		bus     *coreEvents.EventBus
		handler *EventHandler
	)

	ginkgo.BeforeEach(func() {
		logBuf = &bytes.Buffer{}
		log := slog.New(slog.NewTextHandler(logBuf, nil))
		bus = coreEvents.NewEventBus(log)
		handler = NewEventHandler(log)
		handler.RegisterEventHandlers(bus)
	})

	ginkgo.It("should write an audit line for a completed broadcast", func() {
		evt := coreEvents.NewAlertBroadcastEvent("Fire drill", 3, 2, 7)

		err := bus.PublishSync(context.Background(), evt)

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(logBuf.String()).To(gomega.ContainSubstring("critical alert broadcast completed"))
		gomega.Expect(logBuf.String()).To(gomega.ContainSubstring("notified=7"))
		gomega.Expect(logBuf.String()).To(gomega.ContainSubstring("target_level=3"))
	})

	ginkgo.It("should reject a payload of the wrong type", func() {
		evt := coreEvents.BaseEvent{
			ID:   "evt-1",
			Type: coreEvents.EventTypeAlertBroadcast,
		}

		err := bus.PublishSync(context.Background(), evt)

		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})
