package auth

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	coreEvents "github.com/radityaputra/intranet-portal/internal/core/events"
)

var _ = ginkgo.Describe("AuthEventHandler", func() {
	var (
		logBuf *bytes.Buffer
		bus    *coreEvents.EventBus
	)

	ginkgo.BeforeEach(func() {
		logBuf = &bytes.Buffer{}
		log := slog.New(slog.NewTextHandler(logBuf, nil))
		bus = coreEvents.NewEventBus(log)
		NewEventHandler(log).RegisterEventHandlers(bus)
	})

	ginkgo.It("should write an audit line for a session sweep", func() {
		err := bus.PublishSync(context.Background(), coreEvents.NewSessionPurgedEvent(12))

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(logBuf.String()).To(gomega.ContainSubstring("expired session sweep completed"))
		gomega.Expect(logBuf.String()).To(gomega.ContainSubstring("purged=12"))
	})

	ginkgo.It("should reject a payload of the wrong type", func() {
		evt := coreEvents.BaseEvent{ID: "evt-1", Type: coreEvents.EventTypeSessionPurged}

		err := bus.PublishSync(context.Background(), evt)

		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})
