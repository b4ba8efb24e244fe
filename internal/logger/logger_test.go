package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rmera/gomcnp/internal/logger"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logger Suite")
}

var _ = Describe("Logger", func() {
	Describe("New", func() {
		It("writes text records by default", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf))
			l.Info("surface parsed", "number", 12)

			Expect(buf.String()).To(ContainSubstring("surface parsed"))
			Expect(buf.String()).To(ContainSubstring("number=12"))
		})

		It("hides debug records unless asked", func() {
			var buf bytes.Buffer
			logger.New(logger.WithWriter(&buf)).Debug("hidden")
			Expect(buf.String()).To(BeEmpty())

			logger.New(logger.WithWriter(&buf), logger.WithDebug(true)).Debug("shown")
			Expect(buf.String()).To(ContainSubstring("shown"))
		})

		It("writes JSON records", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithJSON(true), logger.WithPretty(true))
			l.Warn("history skipped", "nps", 42)

			var parsed map[string]any
			Expect(json.Unmarshal(buf.Bytes(), &parsed)).To(Succeed())
			Expect(parsed["msg"]).To(Equal("history skipped"))
			Expect(parsed["nps"]).To(BeNumerically("==", 42))
		})

		It("writes pretty records", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithPretty(true))
			l.Info("pretty output", "file", "ptrac")

			Expect(buf.String()).To(ContainSubstring("pretty output"))
			Expect(buf.String()).To(ContainSubstring("ptrac"))
		})

		It("supports several writers", func() {
			var buf1, buf2 bytes.Buffer
			logger.New(logger.WithWriters(&buf1, &buf2)).Info("twice")

			Expect(buf1.String()).To(ContainSubstring("twice"))
			Expect(buf2.String()).To(ContainSubstring("twice"))
		})
	})

	Describe("Nop", func() {
		It("discards everything", func() {
			l := logger.Nop()
			Expect(l.Handler().Enabled(context.Background(), slog.LevelError)).To(BeFalse())
			Expect(func() {
				l.With("k", "v").WithGroup("g").Error("msg")
			}).NotTo(Panic())
		})
	})

	Describe("Multi", func() {
		It("dispatches to all loggers", func() {
			var text, js bytes.Buffer
			m := logger.Multi(logger.New(logger.WithWriter(&text)), logger.New(logger.WithWriter(&js), logger.WithJSON(true)))
			m.WithGroup("event").Info("decoded", "code", 5000)

			Expect(text.String()).To(ContainSubstring("event.code=5000"))
			var parsed map[string]any
			Expect(json.Unmarshal([]byte(strings.TrimSpace(js.String())), &parsed)).To(Succeed())
			group, ok := parsed["event"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(group["code"]).To(BeNumerically("==", 5000))
		})

		It("skips loggers whose level is too high", func() {
			var quiet, loud bytes.Buffer
			m := logger.Multi(logger.New(logger.WithWriter(&quiet)), logger.New(logger.WithWriter(&loud), logger.WithDebug(true)))
			m.Debug("detail")

			Expect(quiet.String()).To(BeEmpty())
			Expect(loud.String()).To(ContainSubstring("detail"))
		})
	})
})
