package log_test

import (
	"goalapp/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Logger", func() {
	Describe("ParseLevel", func() {
		It("should parse known levels", func() {
			Expect(log.ParseLevel("debug")).To(Equal(zapcore.DebugLevel))
			Expect(log.ParseLevel("WARN")).To(Equal(zapcore.WarnLevel))
			Expect(log.ParseLevel("error")).To(Equal(zapcore.ErrorLevel))
		})

		It("should fall back to info", func() {
			Expect(log.ParseLevel("")).To(Equal(zapcore.InfoLevel))
			Expect(log.ParseLevel("chatty")).To(Equal(zapcore.InfoLevel))
		})
	})

	Describe("NewZapLogger", func() {
		It("should honour the requested level", func() {
			logger := log.NewZapLogger("goalapp", zapcore.WarnLevel)
			Expect(logger).NotTo(BeNil())
			Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
			Expect(logger.Desugar().Core().Enabled(zapcore.ErrorLevel)).To(BeTrue())
		})
	})
})
