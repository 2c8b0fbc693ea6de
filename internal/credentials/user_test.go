package credentials_test

import (
	"encoding/json"
	"strings"

	"goalapp/internal/credentials"
	"goalapp/internal/credentials/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("User", func() {
	var manager *credentials.Manager

	BeforeEach(func() {
		var err error
		manager, err = credentials.NewManager(
			zap.NewNop().Sugar(),
			new(fake.UserRepository),
			new(fake.TokenGenerator),
			credentials.Config{HashCost: bcrypt.MinCost},
		)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("SetPassword and VerifyPassword", func() {
		DescribeTable("round trip",
			func(plaintext string) {
				user := manager.NewUser("Jack", plaintext)

				Expect(user.PasswordVerifier).NotTo(BeEmpty())
				Expect(user.PasswordVerifier).NotTo(Equal(plaintext))
				Expect(user.VerifyPassword(plaintext)).To(BeTrue())
				Expect(user.VerifyPassword(plaintext + "x")).To(BeFalse())
			},
			Entry("six characters", "abcdef"),
			Entry("the classic", "password"),
			Entry("with spaces", "correct horse battery staple"),
			Entry("unicode", "pässwörd-✓"),
			Entry("seventy two bytes", strings.Repeat("a", 72)),
		)

		It("should reject candidates that only share the first seventy two bytes", func() {
			plaintext := strings.Repeat("a", 72)
			user := manager.NewUser("Jack", plaintext)

			Expect(user.VerifyPassword(plaintext)).To(BeTrue())
			Expect(user.VerifyPassword(plaintext + "x")).To(BeFalse())
			Expect(user.VerifyPassword(plaintext + plaintext)).To(BeFalse())
			Expect(user.VerifyPassword(plaintext + strings.Repeat("b", 128))).To(BeFalse())
		})

		It("should salt every hash", func() {
			first := manager.NewUser("Jack", "password")
			second := manager.NewUser("Jill", "password")
			Expect(first.PasswordVerifier).NotTo(Equal(second.PasswordVerifier))
		})

		It("should hash with the configured cost", func() {
			user := manager.NewUser("Jack", "password")
			cost, err := bcrypt.Cost([]byte(user.PasswordVerifier))
			Expect(err).NotTo(HaveOccurred())
			Expect(cost).To(Equal(bcrypt.MinCost))
		})

		It("should fall back to the bcrypt default cost on a bare user", func() {
			user := &credentials.User{Username: "Jack"}
			user.SetPassword("password")
			cost, err := bcrypt.Cost([]byte(user.PasswordVerifier))
			Expect(err).NotTo(HaveOccurred())
			Expect(cost).To(Equal(bcrypt.DefaultCost))
		})

		It("should replace the verifier when the password changes", func() {
			user := manager.NewUser("Jack", "password")
			user.SetPassword("another-one")
			Expect(user.VerifyPassword("password")).To(BeFalse())
			Expect(user.VerifyPassword("another-one")).To(BeTrue())
		})

		When("the password is empty", func() {
			It("should leave the verifier unset without failing", func() {
				user := manager.NewUser("Jack", "")
				Expect(user.PasswordVerifier).To(BeEmpty())
				Expect(user.VerifyPassword("")).To(BeFalse())
			})
		})

		When("no verifier is stored", func() {
			It("should reject every candidate", func() {
				user := &credentials.User{Username: "Jack"}
				Expect(user.VerifyPassword("")).To(BeFalse())
				Expect(user.VerifyPassword("password")).To(BeFalse())
			})
		})

		When("the stored verifier is malformed", func() {
			It("should return false instead of failing", func() {
				user := &credentials.User{Username: "Jack", PasswordVerifier: "password"}
				Expect(user.VerifyPassword("password")).To(BeFalse())
			})
		})
	})

	Describe("Password", func() {
		It("should return the submitted plaintext", func() {
			user := manager.NewUser("Jack", "abcdef")
			Expect(user.Password()).To(Equal("abcdef"))
		})

		It("should be empty on a user that never had a password set", func() {
			user := &credentials.User{Username: "Jack", PasswordVerifier: "$2a$04$x"}
			Expect(user.Password()).To(BeEmpty())
		})

		It("should never be serialized", func() {
			user := manager.NewUser("Jack", "abcdef")
			user.SessionToken = "secret-token"

			out, err := json.Marshal(user)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).NotTo(ContainSubstring("abcdef"))
			Expect(string(out)).NotTo(ContainSubstring(user.PasswordVerifier))
			Expect(string(out)).NotTo(ContainSubstring("secret-token"))
			Expect(string(out)).To(ContainSubstring(`"username":"Jack"`))
		})
	})
})
