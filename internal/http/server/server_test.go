package server_test

import (
	"net/http"

	"goalapp/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("should report ErrServerClosed after a shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NewServeMux(), "0")

		errChan := srv.Run()
		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("should report a listen failure", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NewServeMux(), "not-a-port")

		Eventually(srv.Run()).Should(Receive(HaveOccurred()))
	})
})
