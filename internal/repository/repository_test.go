package repository_test

import (
	"context"
	"errors"

	"goalapp/internal/db"
	"goalapp/internal/repository"
	"goalapp/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewUserRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("CreateUser", func() {
		var (
			user    repository.User
			created repository.User
			err     error
		)

		BeforeEach(func() {
			user = repository.User{
				Username:         "Joyce Davis",
				PasswordVerifier: "$2a$04$verifier",
				SessionToken:     "token-1",
			}
		})

		JustBeforeEach(func() {
			created, err = repo.CreateUser(ctx, user)
		})

		When("the insert succeeds", func() {
			It("should assign an id and store the row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(created.ID)).To(Succeed())
				Expect(created.Username).To(Equal(user.Username))
				Expect(created.SessionToken).To(Equal(user.SessionToken))

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(record.(*repository.User).ID).To(Equal(created.ID))
			})
		})

		When("the username constraint is violated", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(&db.DuplicateKeyError{Constraint: "users_username_key"})
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
				Expect(errors.Is(err, db.ErrDuplicateKey)).To(BeTrue())
			})
		})

		When("the session token constraint is violated", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(&db.DuplicateKeyError{Constraint: "users_session_token_key"})
			})

			It("should return ErrSessionTokenTaken", func() {
				Expect(err).To(MatchError(repository.ErrSessionTokenTaken))
				Expect(errors.Is(err, repository.ErrUsernameTaken)).To(BeFalse())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError("create user: fake error"))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "Joyce Davis")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					u := dest.(*repository.User)
					*u = repository.User{ID: "id-1", Username: value.(string)}
					return nil
				}
			})

			It("should look the user up by username", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("id-1"))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("Joyce Davis"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(Equal(repository.ErrUserNotFound))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError("get user by username: fake error"))
			})
		})
	})

	Describe("GetUserBySessionToken", func() {
		It("should look the user up by the session token column", func() {
			_, err := repo.GetUserBySessionToken(ctx, "token-1")
			Expect(err).NotTo(HaveOccurred())

			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("session_token"))
			Expect(value).To(Equal("token-1"))
		})
	})

	Describe("UsernameExists", func() {
		When("storage reports a match", func() {
			BeforeEach(func() {
				fakeStorage.ExistsReturns(true, nil)
			})

			It("should return true and pass the exclusion through", func() {
				exists, err := repo.UsernameExists(ctx, "Joyce Davis", "id-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())

				_, model, column, value, excludeID := fakeStorage.ExistsArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("Joyce Davis"))
				Expect(excludeID).To(Equal("id-1"))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.ExistsReturns(false, fakeErr)
			})

			It("should return a wrapped error", func() {
				_, err := repo.UsernameExists(ctx, "Joyce Davis", "")
				Expect(err).To(MatchError("check username: fake error"))
			})
		})
	})

	Describe("SessionTokenExists", func() {
		It("should check the session token column, not the primary key", func() {
			_, err := repo.SessionTokenExists(ctx, "token-1", "")
			Expect(err).NotTo(HaveOccurred())

			_, _, column, value, _ := fakeStorage.ExistsArgsForCall(0)
			Expect(column).To(Equal("session_token"))
			Expect(value).To(Equal("token-1"))
		})
	})

	Describe("UpdateSessionToken", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.UpdateSessionToken(ctx, "id-1", "token-2")
		})

		When("the update succeeds", func() {
			It("should write the session token column of that user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.UpdateByIDCallCount()).To(Equal(1))
				_, _, id, values := fakeStorage.UpdateByIDArgsForCall(0)
				Expect(id).To(Equal("id-1"))
				Expect(values).To(Equal(map[string]any{"session_token": "token-2"}))
			})
		})

		When("the user is gone", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByIDReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(Equal(repository.ErrUserNotFound))
			})
		})

		When("another user got the token first", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByIDReturns(&db.DuplicateKeyError{Constraint: "users_session_token_key"})
			})

			It("should return ErrSessionTokenTaken", func() {
				Expect(err).To(MatchError(repository.ErrSessionTokenTaken))
			})
		})
	})
})
